// Package chrono provides civil dates and times, absolute timestamps and
// zoned datetimes.
//
// Every constructor checks its inputs and reports a violation with an
// errors.Error range error naming the offending parameter.
package chrono
