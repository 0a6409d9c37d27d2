//go:build !nofs

package core

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// fixedTZif returns a minimal version 1 TZif file describing a zone with a
// single offset and no transitions.
func fixedTZif(abbrev string, offset int32) []byte {
	var b bytes.Buffer
	b.WriteString("TZif")
	b.Write(make([]byte, 16))
	for _, n := range []uint32{0, 0, 0, 0, 1, uint32(len(abbrev) + 1)} {
		_ = binary.Write(&b, binary.BigEndian, n)
	}
	_ = binary.Write(&b, binary.BigEndian, offset)
	b.WriteByte(0)
	b.WriteByte(0)
	b.WriteString(abbrev)
	b.WriteByte(0)
	return b.Bytes()
}

// writeZoneDir lays out a zoneinfo tree under a new temporary directory.
func writeZoneDir(t *testing.T, files map[string][]byte) string {
	t.Helper()

	root := t.TempDir()
	for name, data := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("failed to write zone file: %v", err)
		}
	}
	return root
}

// clearEnv unsets the tzkit environment for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TZKIT_CONFIG_DIR",
		"TZKIT_TZDIR",
		"TZKIT_TZZIP",
		"TZKIT_DEFAULT_ZONE",
		"TZKIT_LOG_LEVEL",
		"TZKIT_MAX_ZONE_COUNT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
