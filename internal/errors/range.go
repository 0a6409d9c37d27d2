package errors

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type rangeShape uint8

const (
	// rangeUnsigned has an unsigned given value and signed bounds.
	rangeUnsigned rangeShape = iota
	rangeSigned
	// rangeSpecific marks a value that is never legal, whatever the bounds.
	rangeSpecific
)

// rangeError reports a number outside the values allowed for a parameter.
type rangeError struct {
	what  string
	shape rangeShape
	// givenUnsigned is used for rangeUnsigned, given for the others.
	givenUnsigned uint64
	given         int64
	min, max      int64
}

func (*rangeError) errorKind() {}

func (e *rangeError) String() string {
	switch e.shape {
	case rangeUnsigned:
		return fmt.Sprintf(
			"parameter '%s' with value %d is not in the required range of %d..=%d",
			e.what, e.givenUnsigned, e.min, e.max,
		)
	case rangeSigned:
		return fmt.Sprintf(
			"parameter '%s' with value %d is not in the required range of %d..=%d",
			e.what, e.given, e.min, e.max,
		)
	default:
		return fmt.Sprintf("parameter '%s' with value %d is illegal", e.what, e.given)
	}
}

// Unsigned creates a range error for an unsigned value outside min..=max.
//
// The bounds are signed because some parameters are unsigned by nature while
// the bounds they are checked against are shared with signed parameters.
// Callers detect the violation; Unsigned only describes it.
func Unsigned[U constraints.Unsigned, S constraints.Signed](what string, given U, min, max S) Error {
	return newError(&rangeError{
		what:          what,
		shape:         rangeUnsigned,
		givenUnsigned: uint64(given),
		min:           int64(min),
		max:           int64(max),
	})
}

// Signed creates a range error for a signed value outside min..=max.
func Signed[G, S constraints.Signed](what string, given G, min, max S) Error {
	return newError(&rangeError{
		what:  what,
		shape: rangeSigned,
		given: int64(given),
		min:   int64(min),
		max:   int64(max),
	})
}

// Specific creates a range error for a value that is illegal on its own
// rather than for falling outside an interval, like a day of month of 0.
func Specific[S constraints.Signed](what string, given S) Error {
	return newError(&rangeError{
		what:  what,
		shape: rangeSpecific,
		given: int64(given),
	})
}
