package chrono

import (
	"fmt"

	"github.com/Fuabioo/tzkit/internal/tz"
)

// Zoned is a Timestamp in a particular time zone.
type Zoned struct {
	timestamp Timestamp
	zone      *tz.TimeZone
}

// ToZoned returns t in zone. A nil zone means UTC.
func (t Timestamp) ToZoned(zone *tz.TimeZone) Zoned {
	if zone == nil {
		zone = tz.UTC
	}
	return Zoned{timestamp: t, zone: zone}
}

// Timestamp returns the instant of z.
func (z Zoned) Timestamp() Timestamp { return z.timestamp }

// TimeZone returns the time zone of z.
func (z Zoned) TimeZone() *tz.TimeZone {
	if z.zone == nil {
		return tz.UTC
	}
	return z.zone
}

// Offset returns the UTC offset in seconds in effect at z, and the zone
// abbreviation such as "CEST".
func (z Zoned) Offset() (int32, string) {
	second, _ := z.timestamp.floor()
	return z.TimeZone().Offset(second)
}

// DateTime returns the civil date and time of z.
func (z Zoned) DateTime() DateTime {
	offset, _ := z.Offset()
	return z.timestamp.dateTime(offset)
}

// String formats z as 2021-07-30T21:20:04.123+00:00[UTC].
func (z Zoned) String() string {
	offset, _ := z.Offset()
	return fmt.Sprintf("%s%s[%s]", z.timestamp.dateTime(offset), FormatOffset(offset), z.TimeZone().Name())
}

// FormatOffset renders a UTC offset in seconds as +HH:MM, or +HH:MM:SS when it
// has a seconds component.
func FormatOffset(offset int32) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	h, m, s := offset/3600, offset%3600/60, offset%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
