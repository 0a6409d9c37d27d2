//go:build !nofs

package core

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/security"
)

// UnpackResult contains the results of an unpack operation.
type UnpackResult struct {
	Output string `json:"output"`
	Zones  int    `json:"zones"`
	Bytes  uint64 `json:"bytes"`
}

// Unpack extracts a zoneinfo.zip into destDir, producing a directory that
// FromDir can read.
// Uses fail-closed validation: any single unsafe entry name aborts the
// extraction before anything is written.
func Unpack(zipPath, destDir string, limits security.Limits) (*UnpackResult, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, errors.FS(zipPath, err)
	}
	defer r.Close()

	check := security.CheckArchive(&r.Reader, limits)
	if !check.IsSafe {
		return nil, errors.Adhoc(check.Reason).Context(errors.Adhoc("zoneinfo archive rejected")).Path(zipPath)
	}

	for _, f := range r.File {
		if err := security.ValidatePath(destDir, f.Name); err != nil {
			return nil, errors.From(err).Context(errors.Adhoc("unsafe archive entry")).Path(zipPath)
		}
	}

	result := &UnpackResult{Output: destDir}
	for _, f := range r.File {
		n, err := unpackFile(f, destDir, limits.MaxZoneBytes)
		if err != nil {
			return result, err
		}
		if !f.FileInfo().IsDir() {
			result.Zones++
			result.Bytes += n
		}
	}

	return result, nil
}

// unpackFile extracts a single entry and returns the bytes written.
func unpackFile(f *zip.File, destDir string, maxBytes uint64) (uint64, error) {
	destPath := filepath.Join(destDir, filepath.FromSlash(f.Name))

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return 0, errors.FS(destPath, err)
		}
		return 0, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return 0, errors.FS(filepath.Dir(destPath), err)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, errors.Context(err, errors.Adhocf("zoneinfo entry %q", f.Name))
	}
	defer rc.Close()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, errors.FS(destPath, err)
	}
	defer out.Close()

	// Header sizes are not trusted while copying.
	written, err := io.Copy(out, io.LimitReader(rc, int64(maxBytes)+1))
	if err != nil {
		return 0, errors.FS(destPath, err)
	}
	if uint64(written) > maxBytes {
		return 0, errors.Unsigned("size", uint64(written), 0, int64(maxBytes)).
			Context(errors.Adhocf("zoneinfo entry %q", f.Name))
	}

	return uint64(written), nil
}
