package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput         = NewError("failed to read input")
	ErrInvalidDefinition = NewError("invalid definition")
	ErrUnknownFunction   = NewError("unknown function")
	ErrInvalidArgument   = NewError("invalid argument")
	ErrInvalidList       = NewError("list elements must share one type")
	ErrInvalidCondition  = NewError("condition must be a boolean")
	ErrInvalidMatch      = NewError("invalid match scrutinee")
	ErrMatchNotFound     = NewError("no pattern matched")
	ErrNotIterable       = NewError("value is not iterable")
	ErrNegativeNumber    = NewError("cannot iterate a negative number")
	ErrOutOfBounds       = NewError("index out of bounds")
	ErrMaxDepthReached   = NewError("maximum call depth reached")
	ErrMissingSeed       = NewError("failed to source a random seed")
	ErrInvalidRoot       = NewError("root must evaluate to a shape")
	ErrRootNotFound      = NewError("could not find root definition")
	ErrDivisionByZero    = NewError("division by zero")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e shares the base message of target, so wrapped and
// attributed copies still satisfy errors.Is against their sentinel.
func (e *Error) Is(target error) bool {
	t := &Error{}
	if !errors.As(target, &t) {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError reports a syntax error with its position in the source.
type ParseError struct {
	Source  string // The original source input
	Message string
	Line    int // 1-based
	Column  int // 1-based
}

// Error implements the error interface, rendering the offending line with a
// column marker when the source is available.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))

	if e.Message != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Message)
	}

	lines := strings.Split(e.Source, "\n")
	if e.Line > 0 && e.Line <= len(lines) {
		num := strconv.Itoa(e.Line)

		buf.WriteString("\n  ")
		buf.WriteString(num)
		buf.WriteString(" | ")
		buf.WriteString(lines[e.Line-1])
		buf.WriteByte('\n')

		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		padding := len(num) + 5
		if e.Column > 0 {
			padding += e.Column - 1
		}

		buf.WriteString(strings.Repeat(" ", padding))
		buf.WriteByte('^')
	}

	return buf.String()
}
