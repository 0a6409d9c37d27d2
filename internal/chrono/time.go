package chrono

import (
	"fmt"
	"strings"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// Time is a civil time of day with nanosecond precision.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// NewTime creates a Time.
func NewTime(hour, minute, second uint8, nanosecond uint32) (Time, error) {
	if hour > 23 {
		return Time{}, errors.Unsigned("hour", hour, 0, 23)
	}
	if minute > 59 {
		return Time{}, errors.Unsigned("minute", minute, 0, 59)
	}
	if second > 59 {
		return Time{}, errors.Unsigned("second", second, 0, 59)
	}
	if nanosecond > 999_999_999 {
		return Time{}, errors.Unsigned("nanosecond", nanosecond, 0, 999_999_999)
	}
	return Time{hour: hour, minute: minute, second: second, nanosecond: nanosecond}, nil
}

// Hour returns the hour of t, 0 through 23.
func (t Time) Hour() uint8 { return t.hour }

// Minute returns the minute of t, 0 through 59.
func (t Time) Minute() uint8 { return t.minute }

// Second returns the second of t, 0 through 59.
func (t Time) Second() uint8 { return t.second }

// Nanosecond returns the fraction of the second of t in nanoseconds.
func (t Time) Nanosecond() uint32 { return t.nanosecond }

// String formats t as HH:MM:SS with a fractional second only when it is
// not zero.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d%s", t.hour, t.minute, t.second, fraction(t.nanosecond))
}

// fraction renders nanoseconds as ".fff", trimming trailing zeros.
func fraction(nanosecond uint32) string {
	if nanosecond == 0 {
		return ""
	}
	return "." + strings.TrimRight(fmt.Sprintf("%09d", nanosecond), "0")
}

// DateTime is a civil date and time without a time zone.
type DateTime struct {
	Date Date
	Time Time
}

// String formats dt as YYYY-MM-DDTHH:MM:SS[.fff].
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}
