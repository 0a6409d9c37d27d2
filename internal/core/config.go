//go:build !nofs

package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/security"
)

const configFileName = "config.yaml"

// Config holds global configuration for tzkit.
type Config struct {
	TZ      TZConfig      `yaml:"tz" json:"tz"`
	Limits  LimitsConfig  `yaml:"limits" json:"limits"`
	Archive ArchiveConfig `yaml:"archive" json:"archive"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// TZConfig selects the time zone database. Zip wins over Dir; with neither
// set the system database is used.
type TZConfig struct {
	Dir     string `yaml:"dir" json:"dir"`
	Zip     string `yaml:"zip" json:"zip"`
	Default string `yaml:"default" json:"default"`
}

// LimitsConfig holds the limits applied to zoneinfo files and archives.
type LimitsConfig struct {
	MaxArchiveBytes     uint64  `yaml:"max_archive_bytes" json:"max_archive_bytes"`
	MaxZoneCount        int     `yaml:"max_zone_count" json:"max_zone_count"`
	MaxCompressionRatio float64 `yaml:"max_compression_ratio" json:"max_compression_ratio"`
	MaxZoneBytes        uint64  `yaml:"max_zone_bytes" json:"max_zone_bytes"`
}

// ArchiveConfig holds settings for building zoneinfo archives.
type ArchiveConfig struct {
	BackupRotationDepth int `yaml:"backup_rotation_depth" json:"backup_rotation_depth"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	limits := security.DefaultLimits()
	return &Config{
		TZ: TZConfig{
			Default: "UTC",
		},
		Limits: LimitsConfig{
			MaxArchiveBytes:     limits.MaxArchiveBytes,
			MaxZoneCount:        limits.MaxZoneCount,
			MaxCompressionRatio: limits.MaxCompressionRatio,
			MaxZoneBytes:        limits.MaxZoneBytes,
		},
		Archive: ArchiveConfig{
			BackupRotationDepth: 3,
		},
		Log: LogConfig{
			Level: "error",
		},
	}
}

// LoadConfig loads configuration from config.yaml in dir.
// Falls back to default configuration if config.yaml doesn't exist.
// Environment variables override both file and default values.
//
// YAML is a superset of JSON, so a JSON config file is accepted as well.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, configFileName)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.From(err).Path(path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.FS(path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	// Paths may start with "~".
	for _, p := range []*string{&cfg.TZ.Dir, &cfg.TZ.Zip} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, errors.Context(err, fmt.Sprintf("invalid path %q", *p))
		}
		*p = expanded
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv("TZKIT_TZDIR"); ok {
		cfg.TZ.Dir = val
	}

	if val, ok := os.LookupEnv("TZKIT_TZZIP"); ok {
		cfg.TZ.Zip = val
	}

	if val, ok := os.LookupEnv("TZKIT_DEFAULT_ZONE"); ok && val != "" {
		cfg.TZ.Default = val
	}

	if val, ok := os.LookupEnv("TZKIT_LOG_LEVEL"); ok && val != "" {
		cfg.Log.Level = val
	}

	if val, ok := os.LookupEnv("TZKIT_MAX_ZONE_COUNT"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return errors.Context(err, "invalid TZKIT_MAX_ZONE_COUNT")
		}
		cfg.Limits.MaxZoneCount = parsed
	}

	return nil
}

// ToSecurityLimits converts the config to security.Limits for use with security package.
func (c *Config) ToSecurityLimits() security.Limits {
	return security.Limits{
		MaxArchiveBytes:     c.Limits.MaxArchiveBytes,
		MaxZoneCount:        c.Limits.MaxZoneCount,
		MaxCompressionRatio: c.Limits.MaxCompressionRatio,
		MaxZoneBytes:        c.Limits.MaxZoneBytes,
	}
}
