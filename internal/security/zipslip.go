package security

import (
	"path/filepath"
	"strings"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// ValidatePath checks that entryPath, joined to base, stays within base.
//
// Security checks:
// - Rejects empty and absolute paths
// - Rejects paths with null bytes
// - Rejects paths with ".." sequences that escape base
// - Ensures cleaned path resolves within base directory
func ValidatePath(base, entryPath string) error {
	if entryPath == "" {
		return errors.Adhoc("entry path cannot be empty")
	}

	if strings.Contains(entryPath, "\x00") {
		return errors.Adhocf("entry path contains null byte: %q", entryPath)
	}

	if filepath.IsAbs(entryPath) {
		return errors.Adhocf("entry path must be relative, got absolute path: %q", entryPath)
	}

	cleanBase := filepath.Clean(base)
	cleanEntry := filepath.Clean(filepath.FromSlash(entryPath))

	// After cleaning, a leading ".." can only mean an escape.
	if cleanEntry == ".." || strings.HasPrefix(cleanEntry, ".."+string(filepath.Separator)) {
		return errors.Adhocf("path traversal detected: %q attempts to escape base directory", entryPath)
	}

	target := filepath.Join(cleanBase, cleanEntry)

	rel, err := filepath.Rel(cleanBase, target)
	if err != nil {
		return errors.Context(err, errors.Adhocf("path resolution failed for %q", entryPath))
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.Adhocf("path traversal detected: %q resolves outside base directory", entryPath)
	}

	return nil
}
