package subpath

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPath    = errors.New("path is empty")
	ErrAbsolutePath = errors.New("path is absolute")
	ErrParentRef    = errors.New("path contains a parent (..) component")
)

// Error is returned for any rejected subpath input. Op is the label of the
// operation that rejected the input, Path is the original input unchanged, and
// Err is one of the sentinel kinds above.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: invalid subpath %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, fallbackOp, path string, kind error) error {
	if op == "" {
		op = fallbackOp
	}
	return &Error{Op: op, Path: path, Err: kind}
}
