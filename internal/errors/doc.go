// Package errors provides the single error type returned by every fallible
// operation in tzkit.
//
// Range checks, time zone lookups, parsing and file system access all fail
// with an Error. An Error is one machine word: a pointer to an immutable
// record holding a kind and an optional cause. Copying an Error is cheap and
// copies may be shared freely between goroutines.
//
// Example usage:
//
//	// Creating errors
//	err := errors.Unsigned("day", day, 1, 31)
//	err := errors.TimeZoneLookup("Fake/Zone")
//	err := errors.Adhocf("unexpected character %q", c)
//
//	// Attaching context to an error value
//	err = err.Context(errors.Adhoc("parsing date"))
//
//	// Attaching context to a (T, error) result
//	ts, err := chrono.NewTimestamp(sec, nanos)
//	if err != nil {
//	    return errors.Context(err, "converting protobuf timestamp")
//	}
//
// Errors render as a causal chain, most recent context first:
//
//	converting protobuf timestamp: parameter 'second' with value ... is not in the required range of ...
//
// # Introspection is limited
//
// There are no error codes and no exported kinds. Callers get the rendered
// text and the standard Unwrap chain, nothing else.
//
// # Build profiles
//
// By default the file system kinds (IO and file path context) are available.
// Building with the nofs tag removes their constructors; the kinds still
// exist so the set of kinds is the same in both profiles, but no value of
// them can be created.
package errors
