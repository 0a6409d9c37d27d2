//go:build !nofs

package core

import (
	"archive/zip"
	"os"
	"path/filepath"

	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/security"
	"github.com/Fuabioo/tzkit/internal/tz"
)

// PackResult contains the results of a pack operation.
type PackResult struct {
	Output     string `json:"output"`
	BackupPath string `json:"backup_path,omitempty"`
	Zones      int    `json:"zones"`
	Bytes      uint64 `json:"bytes"`
}

// Pack builds a zoneinfo.zip at destPath from the zoneinfo directory
// srcDir, in the layout Go's time package reads: one stored TZif entry per
// zone, sorted by name. Every zone is loaded once before it is written, so
// a malformed zone aborts the pack.
//
// The archive is written to a temporary file and renamed into place. An
// existing archive at destPath is first moved aside with RotateBackups
// when backupDepth is positive, and overwritten otherwise.
func Pack(srcDir, destPath string, limits security.Limits, backupDepth int) (*PackResult, error) {
	db, err := tz.FromDir(srcDir, tz.WithLimits(limits))
	if err != nil {
		return nil, err
	}
	names := db.Names()
	if len(names) == 0 {
		return nil, errors.Adhoc("no time zones found").Path(srcDir)
	}

	lock, err := AcquireExclusive(destPath+".lock", lockTimeout)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	destDir := filepath.Dir(destPath)
	tmp, err := os.CreateTemp(destDir, ".tzkit-pack-*")
	if err != nil {
		return nil, errors.FS(destDir, err)
	}
	tmpPath := tmp.Name()
	// Removing fails harmlessly once the file has been renamed.
	defer os.Remove(tmpPath)

	total, err := writeZoneZip(tmp, db, srcDir, names, limits)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = errors.FS(tmpPath, closeErr)
	}
	if err != nil {
		return nil, errors.From(err).Context(errors.Adhoc("failed to write archive")).Path(destPath)
	}

	result := &PackResult{Output: destPath, Zones: len(names), Bytes: total}

	if _, err := os.Stat(destPath); err == nil && backupDepth > 0 {
		backup, err := RotateBackups(destPath, backupDepth)
		if err != nil {
			return nil, err
		}
		result.BackupPath = backup
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return nil, errors.FS(destPath, err)
	}

	return result, nil
}

// writeZoneZip writes each named zone of db to f and returns the number of
// zone bytes written.
func writeZoneZip(f *os.File, db *tz.Database, srcDir string, names []string, limits security.Limits) (uint64, error) {
	zw := zip.NewWriter(f)

	var total uint64
	for _, name := range names {
		// Loading validates the TZif data and the zone size limit.
		if _, err := db.Get(name); err != nil {
			return total, err
		}

		path := filepath.Join(srcDir, filepath.FromSlash(name))
		data, err := os.ReadFile(path)
		if err != nil {
			return total, errors.FS(path, err)
		}

		total += uint64(len(data))
		if total > limits.MaxArchiveBytes {
			return total, errors.Unsigned("size", total, 0, int64(limits.MaxArchiveBytes))
		}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		if err != nil {
			return total, errors.Context(err, errors.Adhocf("zoneinfo entry %q", name))
		}
		if _, err := w.Write(data); err != nil {
			return total, errors.FS(f.Name(), err)
		}
	}

	if err := zw.Close(); err != nil {
		return total, errors.FS(f.Name(), err)
	}
	return total, nil
}
