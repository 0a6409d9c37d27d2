package tz

import "time"

// TimeZone is a named set of UTC offset rules.
type TimeZone struct {
	name string
	loc  *time.Location
}

// UTC is the UTC time zone. It is always available, whatever the database.
var UTC = &TimeZone{name: "UTC", loc: time.UTC}

// Name returns the IANA name the zone was looked up by.
func (z *TimeZone) Name() string { return z.name }

// Location returns the zone as a *time.Location.
func (z *TimeZone) Location() *time.Location { return z.loc }

func (z *TimeZone) String() string { return z.name }

// Offset returns the offset from UTC in seconds in effect at the given Unix
// second, and the zone abbreviation in use then.
func (z *TimeZone) Offset(unixSecond int64) (int32, string) {
	abbrev, offset := time.Unix(unixSecond, 0).In(z.loc).Zone()
	return int32(offset), abbrev
}
