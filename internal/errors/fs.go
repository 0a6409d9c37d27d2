//go:build !nofs

package errors

import "io/fs"

// filePathError names the file an operation failed on. It is always the
// consequent of another error, usually IO or ad hoc, that explains what went
// wrong.
type filePathError struct {
	path string
}

func (filePathError) errorKind() {}

func (e filePathError) String() string { return e.path }

// ioError wraps an error returned by the operating system.
type ioError struct {
	err error
}

func (ioError) errorKind() {}

func (e ioError) String() string {
	if e.err == nil {
		return "<nil>"
	}
	return e.err.Error()
}

// IO creates an error wrapping an operating system error.
// Callers should nearly always attach context to it, usually a path.
//
// IO is not available in the nofs build.
func IO(err error) Error {
	return newError(ioError{err: err})
}

// FS creates an I/O error with path attached as context:
//
//	errors.FS("/usr/share/zoneinfo/UTC", err) // "/usr/share/zoneinfo/UTC: permission denied"
//
// If err is an *fs.PathError for the same path, only its underlying error is
// kept so the path is not rendered twice.
//
// FS is not available in the nofs build.
func FS(path string, err error) Error {
	if pe, ok := err.(*fs.PathError); ok && pe.Path == path {
		err = pe.Err
	}
	return IO(err).Path(path)
}

// Path attaches path as context to e. It is a shorthand for Context with a
// file path consequent.
//
// Path is not available in the nofs build.
func (e Error) Path(path string) Error {
	return e.Context(newError(filePathError{path: path}))
}
