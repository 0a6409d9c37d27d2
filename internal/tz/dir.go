//go:build !nofs

package tz

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/security"
)

// tzifMagic starts every TZif file.
var tzifMagic = []byte("TZif")

// skipDirs hold duplicate zone sets in most distributions' zoneinfo trees.
var skipDirs = map[string]bool{
	"posix": true,
	"right": true,
}

type dirSource struct {
	dir      string
	zones    map[string]struct{}
	maxBytes uint64
}

func (s *dirSource) names() []string {
	out := make([]string, 0, len(s.zones))
	for name := range s.zones {
		out = append(out, name)
	}
	return out
}

// load only serves indexed names, so files that are not zones are never read.
func (s *dirSource) load(name string) (*time.Location, bool, error) {
	if _, ok := s.zones[name]; !ok {
		return nil, false, nil
	}
	if err := security.ValidatePath(s.dir, name); err != nil {
		return nil, false, err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(name))
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.FS(path, err)
	}
	if info.IsDir() {
		return nil, false, nil
	}
	if size := uint64(info.Size()); size > s.maxBytes {
		return nil, false, errors.Unsigned("size", size, 0, int64(s.maxBytes)).Path(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, errors.FS(path, err)
	}
	loc, err := time.LoadLocationFromTZData(name, data)
	if err != nil {
		return nil, false, errors.From(err).Path(path)
	}
	return loc, true, nil
}

// FromDir returns a database backed by a zoneinfo directory such as
// /usr/share/zoneinfo. The directory is indexed once: every regular file
// starting with the TZif magic is a zone, named by its path relative to dir.
func FromDir(dir string, opts ...Option) (*Database, error) {
	o := newOptions(opts)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.FS(dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Adhoc("not a directory").Path(dir)
	}

	zones := make(map[string]struct{})
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.FS(path, err)
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ok, err := isTZif(path)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return errors.FS(path, err)
		}
		name := filepath.ToSlash(rel)
		if security.ValidateZoneName(name) != nil {
			return nil
		}

		zones[name] = struct{}{}
		if len(zones) > o.limits.MaxZoneCount {
			return errors.Unsigned("zone count", uint64(len(zones)), 0, o.limits.MaxZoneCount).Path(dir)
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Context(walkErr, "indexing zoneinfo directory")
	}

	src := &dirSource{dir: dir, zones: zones, maxBytes: o.limits.MaxZoneBytes}
	return newDatabase("dir:"+dir, src), nil
}

func isTZif(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.FS(path, err)
	}
	defer f.Close()

	head := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, errors.FS(path, err)
	}
	return bytes.Equal(head, tzifMagic), nil
}
