package tz

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"testing"
)

// fixedTZif returns a minimal version 1 TZif file describing a zone with a
// single offset and no transitions.
func fixedTZif(abbrev string, offset int32) []byte {
	var b bytes.Buffer
	b.WriteString("TZif")
	b.Write(make([]byte, 16)) // version 1 and reserved bytes
	// isutcnt, isstdcnt, leapcnt, timecnt, typecnt, charcnt
	for _, n := range []uint32{0, 0, 0, 0, 1, uint32(len(abbrev) + 1)} {
		_ = binary.Write(&b, binary.BigEndian, n)
	}
	_ = binary.Write(&b, binary.BigEndian, offset)
	b.WriteByte(0) // isdst
	b.WriteByte(0) // abbreviation index
	b.WriteString(abbrev)
	b.WriteByte(0)
	return b.Bytes()
}

type zipEntry struct {
	name string
	data []byte
}

// buildZoneZip builds a zoneinfo.zip-style archive with stored entries.
func buildZoneZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Store})
		if err != nil {
			t.Fatalf("failed to create zip entry: %v", err)
		}
		if _, err := fw.Write(e.data); err != nil {
			t.Fatalf("failed to write zip entry: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}
