package textfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFormat       = errors.New("format error")
	ErrIO           = errors.New("io error")
	ErrInvalidWrite = errors.New("invalid write result")
)

// FormatError reports a mismatch between a format string, a spec and the
// arguments it is applied to. Error returns the message verbatim so callers
// can compare it against known texts.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// Is reports whether target is [ErrFormat].
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

func requiresNumeric(c rune) *FormatError {
	return formatErrorf("format specifier '%c' requires numeric argument", c)
}

// IOError reports a failed raw write. Offset is the position in the source
// buffer of the chunk that failed.
type IOError struct {
	Op     string
	Offset int
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("textfmt: %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrIO].
func (e *IOError) Is(target error) bool { return target == ErrIO }
