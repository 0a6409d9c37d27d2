package tz

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/security"
)

// source loads zone rules by name.
type source interface {
	// names lists the zones the source knows of, or nil if it cannot list
	// them.
	names() []string
	// load returns found=false, with no error, for an unknown name.
	load(name string) (loc *time.Location, found bool, err error)
}

// Database resolves time zone names. It is safe for concurrent use.
type Database struct {
	origin string
	src    source
	names  []string

	mu    sync.RWMutex
	zones map[string]*TimeZone
	// loads collapses concurrent first lookups of one zone into one read.
	loads singleflight.Group
}

func newDatabase(origin string, src source) *Database {
	names := src.names()
	sort.Strings(names)
	return &Database{
		origin: origin,
		src:    src,
		names:  names,
		zones:  make(map[string]*TimeZone),
	}
}

// Origin describes where the database's zone data comes from, such as
// "system", "dir:/usr/share/zoneinfo" or "zip:/opt/zoneinfo.zip".
func (db *Database) Origin() string { return db.origin }

// Names returns the sorted names of all zones in the database. It is empty
// for the system database, which cannot be listed.
func (db *Database) Names() []string {
	out := make([]string, len(db.names))
	copy(out, db.names)
	return out
}

// Get returns the zone called name. "UTC" always resolves.
//
// A name that is not in the database fails with a time zone lookup error.
// Once loaded, a zone is cached for the lifetime of the database.
func (db *Database) Get(name string) (*TimeZone, error) {
	if name == UTC.name {
		return UTC, nil
	}

	db.mu.RLock()
	zone, ok := db.zones[name]
	db.mu.RUnlock()
	if ok {
		return zone, nil
	}

	if err := security.ValidateZoneName(name); err != nil {
		return nil, errors.Context(err, errors.TimeZoneLookup(name))
	}

	v, err, _ := db.loads.Do(name, func() (interface{}, error) {
		return db.load(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*TimeZone), nil
}

func (db *Database) load(name string) (*TimeZone, error) {
	// A flight that finished between the cache check and Do has already
	// stored the zone.
	db.mu.RLock()
	zone, ok := db.zones[name]
	db.mu.RUnlock()
	if ok {
		return zone, nil
	}

	loc, found, err := db.src.load(name)
	if err != nil {
		return nil, errors.Context(err, errors.Adhocf("failed to load timezone '%s'", name))
	}
	if !found {
		return nil, errors.TimeZoneLookup(name)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	zone = &TimeZone{name: name, loc: loc}
	db.zones[name] = zone
	return zone, nil
}
