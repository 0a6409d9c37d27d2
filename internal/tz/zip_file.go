//go:build !nofs

package tz

import (
	"bytes"
	"os"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// FromZip returns a database backed by the zoneinfo.zip archive at path.
// The archive is read into memory once, after its size is checked.
func FromZip(path string, opts ...Option) (*Database, error) {
	o := newOptions(opts)

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.FS(path, err)
	}
	if size := uint64(info.Size()); size > o.limits.MaxArchiveBytes {
		return nil, errors.Unsigned("size", size, 0, int64(o.limits.MaxArchiveBytes)).Path(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FS(path, err)
	}

	db, err := FromZipReader(bytes.NewReader(data), int64(len(data)), opts...)
	if err != nil {
		return nil, errors.From(err).Path(path)
	}
	db.origin = "zip:" + path
	return db, nil
}
