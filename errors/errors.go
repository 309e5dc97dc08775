// Package errors defines error types with source locations and the formatter
// used to display them.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel causes for runtime errors. Use errors.Is to test for them.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrUnknownNode    = errors.New("unknown node type")
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// EvalError is used to indicate an unrecoverable error that occurred
// during program evaluation. All EvalErrors are considered fatal errors.
type EvalError struct {
	Err      error
	Code     ErrorCode
	Location SourceLocation
}

func (r *EvalError) Error() string {
	return r.Err.Error()
}

func (r *EvalError) Unwrap() error {
	return r.Err
}

// ToFormatted converts the error to a FormattedError for display.
func (r *EvalError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:     r.Code,
		Kind:     "runtime error",
		Message:  r.Err.Error(),
		Filename: r.Location.Filename,
		Line:     r.Location.Line,
		Column:   r.Location.Column,
	}
	if r.Location.Source != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: r.Location.Line, Text: r.Location.Source, IsMain: true},
		}
	}
	return fe
}

func (r *EvalError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(r.ToFormatted())
}

func NewEvalError(err error) *EvalError {
	return &EvalError{Err: err}
}

func EvalErrorf(format string, args ...any) *EvalError {
	return NewEvalError(fmt.Errorf(format, args...))
}

// NewRuntimeError returns an EvalError with a code and source location.
func NewRuntimeError(code ErrorCode, loc SourceLocation, err error) *EvalError {
	return &EvalError{Err: err, Code: code, Location: loc}
}

// Friendly returns the most helpful message available for err: the
// formatted report when err supports one, otherwise err.Error().
func Friendly(err error) string {
	var fe FriendlyError
	if errors.As(err, &fe) {
		return fe.FriendlyErrorMessage()
	}
	return err.Error()
}
