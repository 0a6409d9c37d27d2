package tz

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/security"
)

type zipSource struct {
	files    map[string]*zip.File
	maxBytes uint64
}

func (s *zipSource) names() []string {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	return names
}

func (s *zipSource) load(name string) (*time.Location, bool, error) {
	f, ok := s.files[name]
	if !ok {
		return nil, false, nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, false, errors.Context(err, fmt.Sprintf("opening zoneinfo entry %q", name))
	}
	defer rc.Close()

	// The header sizes were checked by CheckArchive, but they are not
	// trusted while reading.
	data, err := io.ReadAll(io.LimitReader(rc, int64(s.maxBytes)+1))
	if err != nil {
		return nil, false, errors.Context(err, fmt.Sprintf("reading zoneinfo entry %q", name))
	}
	if uint64(len(data)) > s.maxBytes {
		return nil, false, errors.Unsigned("size", uint64(len(data)), 0, int64(s.maxBytes)).
			Context(errors.Adhocf("zoneinfo entry %q", name))
	}

	loc, err := time.LoadLocationFromTZData(name, data)
	if err != nil {
		return nil, false, errors.Context(err, fmt.Sprintf("zoneinfo entry %q", name))
	}
	return loc, true, nil
}

// FromZipReader returns a database backed by a zoneinfo.zip archive, in the
// layout of $GOROOT/lib/time/zoneinfo.zip: one uncompressed TZif file per
// zone, named by its IANA name.
//
// The archive's central directory is checked against the configured limits
// before the database is returned.
func FromZipReader(r io.ReaderAt, size int64, opts ...Option) (*Database, error) {
	o := newOptions(opts)

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Context(err, "reading zoneinfo archive")
	}

	check := security.CheckArchive(zr, o.limits)
	if !check.IsSafe {
		return nil, errors.Adhoc(check.Reason).Context(errors.Adhoc("zoneinfo archive rejected"))
	}

	files := make(map[string]*zip.File, check.EntryCount)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// An entry that could not be asked for by name is never served.
		if security.ValidateZoneName(f.Name) != nil {
			continue
		}
		files[f.Name] = f
	}

	return newDatabase("zip", &zipSource{files: files, maxBytes: o.limits.MaxZoneBytes}), nil
}
