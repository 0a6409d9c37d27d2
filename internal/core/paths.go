//go:build !nofs

package core

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// ConfigDir returns the configuration directory for tzkit.
// It follows the XDG Base Directory Specification:
// - $TZKIT_CONFIG_DIR (full override)
// - $XDG_CONFIG_HOME/tzkit
// - ~/.config/tzkit (fallback)
func ConfigDir() (string, error) {
	if dir := os.Getenv("TZKIT_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "tzkit"), nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Context(err, "failed to get user home directory")
	}

	return filepath.Join(home, ".config", "tzkit"), nil
}

// ConfigPath returns the path to config.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
