package dfa

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies dfa package errors.
type ErrorKind uint8

const (
	// KindReservedByte indicates a caller tried to step a cursor on 0x00 or 0xFF.
	KindReservedByte ErrorKind = iota
	// KindInvalidFile indicates a serialized automaton failed validation on read.
	KindInvalidFile
	// KindIOError indicates an underlying file operation failed.
	KindIOError
)

func (k ErrorKind) String() string {
	switch k {
	case KindReservedByte:
		return "ReservedByte"
	case KindInvalidFile:
		return "InvalidFile"
	case KindIOError:
		return "IOError"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is the error type returned by the dfa package.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes Cause so errors.Is/errors.As can see through to it.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is compares errors by Kind, letting errors.Is match against the sentinel
// values below regardless of Message/Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrReservedByte is returned by Cursor.StepByte/Consume and Automaton.Lookup
// when the input contains the reserved byte 0x00 or 0xFF.
var ErrReservedByte = &Error{
	Kind:    KindReservedByte,
	Message: "automata/dfa: input contains a reserved byte (0x00 or 0xFF)",
}

// ErrInvalidFile is returned by Read when the file fails magic or structural
// validation.
var ErrInvalidFile = &Error{
	Kind:    KindInvalidFile,
	Message: "automata/dfa: invalid automaton file",
}

// ioError wraps an underlying I/O failure with its originating operation,
// preserving the cause for errors.Is/errors.As and %+v stack formatting.
func ioError(op string, cause error) error {
	return &Error{
		Kind:    KindIOError,
		Message: fmt.Sprintf("automata/dfa: %s", op),
		Cause:   errors.Wrapf(cause, op),
	}
}
