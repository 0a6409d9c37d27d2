package chrono

import (
	"fmt"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// Year bounds supported by Date.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Date is a day in the proleptic Gregorian calendar.
type Date struct {
	year  int16
	month uint8
	day   uint8
}

// NewDate creates a Date, checking that month and day exist in the given
// year.
func NewDate(year int16, month, day uint8) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Signed("year", year, MinYear, MaxYear)
	}
	if month == 0 {
		return Date{}, errors.Specific("month", 0)
	}
	if month > 12 {
		return Date{}, errors.Unsigned("month", month, 1, 12)
	}
	if day == 0 {
		return Date{}, errors.Specific("day", 0)
	}
	if day > 31 {
		return Date{}, errors.Unsigned("day", day, 1, 31)
	}
	if dim := DaysInMonth(year, month); day > dim {
		return Date{}, errors.Unsigned("day", day, 1, int(dim))
	}
	return Date{year: year, month: month, day: day}, nil
}

// Year returns the year of d.
func (d Date) Year() int16 { return d.year }

// Month returns the month of d, 1 through 12.
func (d Date) Month() uint8 { return d.month }

// Day returns the day of month of d.
func (d Date) Day() uint8 { return d.day }

// String formats d as YYYY-MM-DD. Years before year 0 get a leading minus.
func (d Date) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -int(d.year), d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int16) bool {
	y := int(year)
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days in month of year. It returns 0 for
// a month outside 1..=12.
func DaysInMonth(year int16, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// unixDays returns the number of days from 1970-01-01 to d.
func (d Date) unixDays() int64 {
	y := int64(d.year)
	if d.month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int64(d.month) + 9) % 12
	doy := (153*mp+2)/5 + int64(d.day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// dateFromUnixDays is the inverse of unixDays. It does not check the year
// bounds, so dates just outside them can be rendered.
func dateFromUnixDays(days int64) Date {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := uint8(doy - (153*mp+2)/5 + 1)
	month := uint8(mp + 3)
	if mp >= 10 {
		month = uint8(mp - 9)
	}
	if month <= 2 {
		y++
	}
	return Date{year: int16(y), month: month, day: day}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
