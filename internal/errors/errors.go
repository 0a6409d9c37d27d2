package errors

import (
	"fmt"
	"strings"
)

// Error is the error type for all of tzkit.
//
// The zero value is not an error; it renders as "<nil>" and passes through
// Context unchanged. Errors are only ever built by the constructors in this
// package.
type Error struct {
	inner *errorInner
}

// errorInner is never modified once an Error points at it.
type errorInner struct {
	kind  errorKind
	cause Error
}

// errorKind is the closed set of payloads an Error can carry: adhocError,
// rangeError, timeZoneLookupError, filePathError and ioError.
type errorKind interface {
	fmt.Stringer
	errorKind()
}

func newError(kind errorKind) Error {
	return Error{inner: &errorInner{kind: kind}}
}

// Error renders the whole causal chain, consequent first, joined by ": ".
func (e Error) Error() string {
	if e.inner == nil {
		return "<nil>"
	}

	var b strings.Builder
	for err := e; ; {
		b.WriteString(err.inner.kind.String())
		err = err.inner.cause
		if err.inner == nil {
			break
		}
		b.WriteString(": ")
	}
	return b.String()
}

// Unwrap returns the cause of e, supporting errors.Is and errors.As.
func (e Error) Unwrap() error {
	if e.inner == nil || e.inner.cause.inner == nil {
		return nil
	}
	return e.inner.cause
}

// hasCause reports whether e links to a cause.
func (e Error) hasCause() bool {
	return e.inner != nil && e.inner.cause.inner != nil
}

// From converts any error into an Error.
// An Error is returned as-is; any other error becomes an ad hoc error
// carrying its message. From(nil) returns the zero Error.
func From(err error) Error {
	switch v := err.(type) {
	case nil:
		return Error{}
	case Error:
		return v
	case *Error:
		if v == nil {
			return Error{}
		}
		return *v
	}
	return Adhoc(err.Error())
}

// adhocError is an opaque message.
type adhocError struct {
	msg string
}

func (adhocError) errorKind() {}

func (e adhocError) String() string { return e.msg }

// Adhoc creates an error from anything that can be printed. The text is
// captured immediately, so later changes to v do not affect the error.
//
// Ad hoc errors are for failures that are not worth a structured kind.
// Range failures and time zone lookups have their own constructors.
func Adhoc(v any) Error {
	return newError(adhocError{msg: fmt.Sprint(v)})
}

// Adhocf is like Adhoc, but arguments are handled as in fmt.Sprintf.
func Adhocf(format string, a ...any) Error {
	return newError(adhocError{msg: fmt.Sprintf(format, a...)})
}

// timeZoneLookupError reports a zone name missing from a database.
type timeZoneLookupError struct {
	name string
}

func (timeZoneLookupError) errorKind() {}

func (e timeZoneLookupError) String() string {
	return fmt.Sprintf("failed to find timezone '%s' in time zone database", e.name)
}

// TimeZoneLookup creates an error for a time zone name that is not in the
// time zone database.
func TimeZoneLookup(name string) Error {
	return newError(timeZoneLookupError{name: name})
}
