package errors

// consequentHasCause is the panic value when context would discard a cause.
const consequentHasCause = "cause of consequence must be nil"

// IntoError is the set of types that convert into an Error: an Error itself,
// or text, which becomes an ad hoc error.
type IntoError interface {
	Error | string
}

// Into converts v into an Error.
func Into[C IntoError](v C) Error {
	switch v := any(v).(type) {
	case Error:
		return v
	case string:
		return Adhoc(v)
	}
	panic("unreachable")
}

// Context returns consequent with e attached as its cause, meaning
// "consequent happened because of e".
//
// A causal chain is a list, not a tree. Context panics if consequent already
// has a cause, since that cause would otherwise be lost; this is a bug in
// the caller, never a runtime condition.
//
// Neither e nor consequent is modified. If e is the zero Error there is no
// failure to explain and the zero Error is returned.
func (e Error) Context(consequent Error) Error {
	if e.inner == nil {
		return Error{}
	}
	return link(consequent, e)
}

// WithContext is like Context, but builds the consequent only when e is an
// error. Use it when building the consequent allocates.
func (e Error) WithContext(consequent func() Error) Error {
	if e.inner == nil {
		return Error{}
	}
	return link(consequent(), e)
}

func link(consequent, cause Error) Error {
	if consequent.inner == nil {
		panic("consequence must not be the zero Error")
	}
	if consequent.hasCause() {
		panic(consequentHasCause)
	}
	return Error{inner: &errorInner{kind: consequent.inner.kind, cause: cause}}
}

// Context attaches consequent to err as in Error.Context and returns nil
// when err is nil, so it can be applied to the error of any (T, error)
// result:
//
//	if err != nil {
//	    return errors.Context(err, "reading config")
//	}
//	return zone, errors.Context(err, errors.TimeZoneLookup(name))
//
// An err that is not an Error is first converted with From.
func Context[C IntoError](err error, consequent C) error {
	cause := From(err)
	if cause.inner == nil {
		return nil
	}
	return cause.Context(Into(consequent))
}

// WithContext is like Context, but calls consequent only when err is not
// nil. On success the consequent is never built.
func WithContext[C IntoError](err error, consequent func() C) error {
	cause := From(err)
	if cause.inner == nil {
		return nil
	}
	return cause.Context(Into(consequent()))
}
