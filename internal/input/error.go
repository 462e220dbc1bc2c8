package input

import "fmt"

// ErrorKind classifies how resolving a file source failed.
type ErrorKind int

const (
	NotFound ErrorKind = iota
	NotAFile
	ReadError
)

// Error reports a failed file resolution. Kind says what went wrong,
// Path is the offending path, Err carries the underlying cause for
// ReadError (nil for the validation kinds).
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotFound:
		return fmt.Sprintf("file %q does not exist", e.Path)
	case NotAFile:
		return fmt.Sprintf("%q is not a file", e.Path)
	case ReadError:
		return fmt.Sprintf("reading %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("resolving %q failed", e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(path string) *Error {
	return &Error{Kind: NotFound, Path: path}
}

func notAFile(path string) *Error {
	return &Error{Kind: NotAFile, Path: path}
}

func readError(path string, err error) *Error {
	return &Error{Kind: ReadError, Path: path, Err: err}
}
