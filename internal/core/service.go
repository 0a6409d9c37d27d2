//go:build !nofs

package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Fuabioo/tzkit/internal/chrono"
	"github.com/Fuabioo/tzkit/internal/convert"
	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/tz"
)

// Service runs tzkit operations against one time zone database.
// It is safe for concurrent use.
type Service struct {
	cfg    *Config
	db     *tz.Database
	logger *zap.Logger
	now    func() time.Time
}

// OpenDatabase opens the time zone database selected by cfg: the archive
// at TZ.Zip, else the directory at TZ.Dir, else the system database.
func OpenDatabase(cfg *Config) (*tz.Database, error) {
	opt := tz.WithLimits(cfg.ToSecurityLimits())
	switch {
	case cfg.TZ.Zip != "":
		return tz.FromZip(cfg.TZ.Zip, opt)
	case cfg.TZ.Dir != "":
		return tz.FromDir(cfg.TZ.Dir, opt)
	}
	return tz.System(), nil
}

// NewService opens the database selected by cfg. A nil logger discards
// all logs.
func NewService(cfg *Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		logger.Debug("failed to open time zone database", zap.Error(err))
		return nil, err
	}
	logger.Debug("opened time zone database",
		zap.String("origin", db.Origin()),
		zap.Int("zones", len(db.Names())),
	)

	return &Service{cfg: cfg, db: db, logger: logger, now: time.Now}, nil
}

// Config returns the service configuration.
func (s *Service) Config() *Config { return s.cfg }

// Database returns the time zone database.
func (s *Service) Database() *tz.Database { return s.db }

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger { return s.logger }

// Lookup resolves a zone name. An empty name selects the configured
// default zone.
func (s *Service) Lookup(name string) (*tz.TimeZone, error) {
	if name == "" {
		name = s.cfg.TZ.Default
	}
	zone, err := s.db.Get(name)
	if err != nil {
		return nil, s.fail("lookup", err, zap.String("zone", name))
	}
	return zone, nil
}

// Zones returns the database's zone names starting with prefix.
func (s *Service) Zones(prefix string) []string {
	names := s.db.Names()
	if prefix == "" {
		return names
	}
	out := names[:0]
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// CheckDate parses and validates a YYYY-MM-DD date.
func (s *Service) CheckDate(date string) (chrono.Date, error) {
	d, err := chrono.ParseDate(date)
	if err != nil {
		return chrono.Date{}, s.fail("date", err, zap.String("date", date))
	}
	return d, nil
}

// ConvertTimestamp places seconds and nanoseconds since the Unix epoch in
// zone.
func (s *Service) ConvertTimestamp(second int64, nanosecond int32, zone string) (chrono.Zoned, error) {
	z, err := s.Lookup(zone)
	if err != nil {
		return chrono.Zoned{}, err
	}
	ts, err := chrono.NewTimestamp(second, nanosecond)
	if err != nil {
		return chrono.Zoned{}, s.fail("timestamp", err, zap.Int64("second", second), zap.Int32("nanosecond", nanosecond))
	}
	return ts.ToZoned(z), nil
}

// ParseTimestamp places an RFC 3339 timestamp in zone.
func (s *Service) ParseTimestamp(value, zone string) (chrono.Zoned, error) {
	z, err := s.Lookup(zone)
	if err != nil {
		return chrono.Zoned{}, err
	}
	ts, err := chrono.ParseTimestamp(value)
	if err != nil {
		return chrono.Zoned{}, s.fail("timestamp", err, zap.String("value", value))
	}
	return ts.ToZoned(z), nil
}

// UUIDTimestamp places the creation time embedded in a UUID in zone.
func (s *Service) UUIDTimestamp(id, zone string) (chrono.Zoned, error) {
	z, err := s.Lookup(zone)
	if err != nil {
		return chrono.Zoned{}, err
	}
	u, err := uuid.Parse(id)
	if err != nil {
		err = errors.Context(err, fmt.Sprintf("invalid uuid %q", id))
		return chrono.Zoned{}, s.fail("uuid", err, zap.String("uuid", id))
	}
	ts, err := convert.TimestampFromUUID(u)
	if err != nil {
		return chrono.Zoned{}, s.fail("uuid", err, zap.String("uuid", id))
	}
	return ts.ToZoned(z), nil
}

// Now returns the current time in zone.
func (s *Service) Now(zone string) (chrono.Zoned, error) {
	z, err := s.Lookup(zone)
	if err != nil {
		return chrono.Zoned{}, err
	}
	ts, err := convert.TimestampFromTime(s.now())
	if err != nil {
		return chrono.Zoned{}, s.fail("now", err)
	}
	return ts.ToZoned(z), nil
}

// DescribeZone looks up a zone and describes it as it is now.
func (s *Service) DescribeZone(name string) (ZoneInfo, error) {
	zone, err := s.Lookup(name)
	if err != nil {
		return ZoneInfo{}, err
	}
	now, err := convert.TimestampFromTime(s.now())
	if err != nil {
		return ZoneInfo{}, s.fail("now", err)
	}
	return DescribeZone(zone, s.db.Origin(), now), nil
}

// Pack builds a zoneinfo.zip from a zoneinfo directory using the
// configured limits and backup depth.
func (s *Service) Pack(srcDir, destPath string) (*PackResult, error) {
	result, err := Pack(srcDir, destPath, s.cfg.ToSecurityLimits(), s.cfg.Archive.BackupRotationDepth)
	if err != nil {
		return nil, s.fail("pack", err, zap.String("src", srcDir), zap.String("dest", destPath))
	}
	s.logger.Debug("packed zoneinfo archive",
		zap.String("output", result.Output),
		zap.Int("zones", result.Zones),
		zap.Uint64("bytes", result.Bytes),
	)
	return result, nil
}

// Unpack extracts a zoneinfo.zip using the configured limits.
func (s *Service) Unpack(zipPath, destDir string) (*UnpackResult, error) {
	result, err := Unpack(zipPath, destDir, s.cfg.ToSecurityLimits())
	if err != nil {
		return nil, s.fail("unpack", err, zap.String("zip", zipPath), zap.String("dest", destDir))
	}
	return result, nil
}

// fail logs err with its full causal chain and returns it unchanged.
func (s *Service) fail(op string, err error, fields ...zap.Field) error {
	s.logger.Debug("operation failed", append(fields, zap.String("op", op), zap.Error(err))...)
	return err
}
