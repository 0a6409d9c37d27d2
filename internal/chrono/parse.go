package chrono

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// ParseDate parses a date in YYYY-MM-DD form. A leading minus sign selects
// a year before year 0.
func ParseDate(s string) (Date, error) {
	d, err := parseDate(s)
	if err != nil {
		return Date{}, errors.WithContext(err, func() string {
			return fmt.Sprintf("invalid date %q", s)
		})
	}
	return d, nil
}

func parseDate(s string) (Date, error) {
	rest, negative := strings.CutPrefix(s, "-")
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return Date{}, errors.Adhocf("expected YYYY-MM-DD, found %d components", len(parts))
	}

	year, err := parseField("year", parts[0], 4)
	if err != nil {
		return Date{}, err
	}
	if negative {
		year = -year
	}
	month, err := parseField("month", parts[1], 2)
	if err != nil {
		return Date{}, err
	}
	day, err := parseField("day", parts[2], 2)
	if err != nil {
		return Date{}, err
	}

	// Check before narrowing so large values are reported as they were given.
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Signed("year", year, MinYear, MaxYear)
	}
	if month > 12 {
		return Date{}, errors.Unsigned("month", uint64(month), 1, 12)
	}
	if day > 31 {
		return Date{}, errors.Unsigned("day", uint64(day), 1, 31)
	}
	return NewDate(int16(year), uint8(month), uint8(day))
}

// parseField parses an unsigned decimal field of at least width digits.
func parseField(what, digits string, width int) (int64, error) {
	if len(digits) < width {
		return 0, errors.Adhocf("%s must have at least %d digits, found %q", what, width, digits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errors.Adhocf("%s contains non-digit %q", what, r)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, errors.Context(err, fmt.Sprintf("invalid %s", what))
	}
	return n, nil
}
