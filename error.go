package svgweb

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a file could not be optimized.
type ErrorKind int

// Error kinds.
const (
	ReadError      ErrorKind = iota // input could not be read
	MalformedError                  // input is not well-formed markup
	WriteError                      // output could not be written
	OutputDirError                  // output directory could not be created
)

func (k ErrorKind) String() string {
	switch k {
	case ReadError:
		return "read error"
	case MalformedError:
		return "malformed input"
	case WriteError:
		return "write error"
	case OutputDirError:
		return "output directory error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is an error of a specific kind, optionally for a file path.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewError returns a new error of the given kind for path, which may be empty.
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{kind, path, err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind returns true if err is or wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
