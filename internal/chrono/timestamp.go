package chrono

import (
	"fmt"
	"time"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// Bounds of a Timestamp in seconds since the Unix epoch:
// -9999-01-01T00:00:00Z and 9999-12-30T22:00:00Z. The upper bound leaves
// room for any UTC offset up to 26 hours.
const (
	MinSecond int64 = -377705116800
	MaxSecond int64 = 253402207200

	maxNanosecond = 999_999_999
)

// Timestamp is an instant in time with nanosecond precision, independent of
// any time zone.
type Timestamp struct {
	second int64
	// nanosecond has the same sign as second, or second is zero.
	nanosecond int32
}

// UnixEpoch is 1970-01-01T00:00:00Z.
var UnixEpoch = Timestamp{}

// NewTimestamp creates a Timestamp from seconds and nanoseconds since the
// Unix epoch. The two may have different signs; they are normalized so that
// they share one.
func NewTimestamp(second int64, nanosecond int32) (Timestamp, error) {
	if second < MinSecond || second > MaxSecond {
		return Timestamp{}, errors.Signed("second", second, MinSecond, MaxSecond)
	}
	if nanosecond < -maxNanosecond || nanosecond > maxNanosecond {
		return Timestamp{}, errors.Signed("nanosecond", nanosecond, -maxNanosecond, maxNanosecond)
	}

	switch {
	case second > 0 && nanosecond < 0:
		second--
		nanosecond += 1_000_000_000
	case second < 0 && nanosecond > 0:
		second++
		nanosecond -= 1_000_000_000
	}

	if second == MinSecond && nanosecond < 0 {
		return Timestamp{}, errors.Signed("nanosecond", nanosecond, 0, maxNanosecond)
	}
	return Timestamp{second: second, nanosecond: nanosecond}, nil
}

// Now returns the current time.
func Now() Timestamp {
	now := time.Now()
	// The wall clock is always well within bounds.
	return Timestamp{second: now.Unix(), nanosecond: int32(now.Nanosecond())}
}

// Second returns the whole seconds since the Unix epoch.
func (t Timestamp) Second() int64 { return t.second }

// Nanosecond returns the fractional second in nanoseconds. It is negative
// for instants before the epoch that do not fall on a whole second.
func (t Timestamp) Nanosecond() int32 { return t.nanosecond }

// floor returns t as whole seconds rounded down and a non-negative
// nanosecond remainder.
func (t Timestamp) floor() (int64, uint32) {
	if t.nanosecond < 0 {
		return t.second - 1, uint32(t.nanosecond + 1_000_000_000)
	}
	return t.second, uint32(t.nanosecond)
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after u.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case t.second < u.second:
		return -1
	case t.second > u.second:
		return 1
	case t.nanosecond < u.nanosecond:
		return -1
	case t.nanosecond > u.nanosecond:
		return 1
	}
	return 0
}

// dateTime returns the civil date and time of t shifted by offset seconds.
func (t Timestamp) dateTime(offset int32) DateTime {
	second, nanosecond := t.floor()
	second += int64(offset)
	days := floorDiv(second, 86400)
	secondOfDay := second - days*86400
	return DateTime{
		Date: dateFromUnixDays(days),
		Time: Time{
			hour:       uint8(secondOfDay / 3600),
			minute:     uint8(secondOfDay % 3600 / 60),
			second:     uint8(secondOfDay % 60),
			nanosecond: nanosecond,
		},
	}
}

// String formats t in UTC as RFC 3339, for example 2021-07-30T21:20:04.123Z.
func (t Timestamp) String() string {
	return t.dateTime(0).String() + "Z"
}

// ParseTimestamp parses an RFC 3339 timestamp such as
// 2021-07-30T21:20:04.123+02:00.
func ParseTimestamp(s string) (Timestamp, error) {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, errors.Context(err, fmt.Sprintf("invalid timestamp %q", s))
	}
	ts, err := NewTimestamp(parsed.Unix(), int32(parsed.Nanosecond()))
	if err != nil {
		return Timestamp{}, errors.Context(err, fmt.Sprintf("invalid timestamp %q", s))
	}
	return ts, nil
}
