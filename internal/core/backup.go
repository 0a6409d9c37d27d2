//go:build !nofs

package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// RotateBackups moves the file at path aside before it is replaced:
// zoneinfo.zip becomes zoneinfo.bak.zip, an older zoneinfo.bak.zip becomes
// zoneinfo.bak.2.zip and so on, keeping at most maxDepth backups.
// Returns the path to the new backup file.
func RotateBackups(path string, maxDepth int) (string, error) {
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]

	for i := maxDepth; i >= 2; i-- {
		oldPath := fmt.Sprintf("%s.bak.%d%s", base, i-1, ext)
		newPath := fmt.Sprintf("%s.bak.%d%s", base, i, ext)

		os.Remove(newPath)

		if _, err := os.Stat(oldPath); err == nil {
			if err := os.Rename(oldPath, newPath); err != nil {
				return "", errors.FS(oldPath, err)
			}
		}
	}

	bakPath := fmt.Sprintf("%s.bak%s", base, ext)
	bak2Path := fmt.Sprintf("%s.bak.2%s", base, ext)

	if _, err := os.Stat(bakPath); err == nil {
		os.Remove(bak2Path)
		if maxDepth >= 2 {
			if err := os.Rename(bakPath, bak2Path); err != nil {
				return "", errors.FS(bakPath, err)
			}
		}
	}

	if err := os.Rename(path, bakPath); err != nil {
		return "", errors.FS(path, err).Context(errors.Adhoc("failed to create backup"))
	}

	return bakPath, nil
}
