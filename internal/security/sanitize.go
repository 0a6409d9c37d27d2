package security

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// Zone name constraints. IANA names such as "America/Argentina/Buenos_Aires"
// or "Etc/GMT+5" use only these characters.
const (
	maxZoneNameLength = 128
	zoneNamePattern   = `^[A-Za-z0-9_+\-./]+$`
)

var zoneNameRegex = regexp.MustCompile(zoneNamePattern)

// ValidateZoneName checks that a time zone name is safe to resolve as a path
// relative to a zoneinfo directory.
// Rejects:
// - Empty names and names over 128 bytes
// - Absolute paths
// - Null bytes and control characters
// - ".." components
// - Characters outside letters, digits and "_+-./"
func ValidateZoneName(name string) error {
	if name == "" {
		return errors.Adhoc("zone name cannot be empty")
	}

	if len(name) > maxZoneNameLength {
		return errors.Adhocf("zone name exceeds maximum length of %d characters", maxZoneNameLength)
	}

	if strings.Contains(name, "\x00") {
		return errors.Adhocf("zone name contains null byte: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.Adhocf("zone name contains control character: %q", name)
		}
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return errors.Adhocf("zone name must be relative, got absolute path: %q", name)
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return errors.Adhocf("zone name contains \"..\" component: %q", name)
		}
	}

	if !zoneNameRegex.MatchString(name) {
		return errors.Adhocf("zone name must contain only letters, digits and \"_+-./\": %q", name)
	}

	return nil
}
