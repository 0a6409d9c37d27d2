//go:build nofs

package errors

// bugMarker is what a file system kind renders as in the nofs build. Nothing
// in this package can build one, so seeing it is a bug.
const bugMarker = "<BUG: SHOULD NOT EXIST>"

// filePathError has no fields and no constructor in the nofs build.
type filePathError struct{}

func (filePathError) errorKind() {}

func (filePathError) String() string { return bugMarker }

// ioError has no fields and no constructor in the nofs build.
type ioError struct{}

func (ioError) errorKind() {}

func (ioError) String() string { return bugMarker }
