package errors

import (
	"errors"
	"fmt"
)

// Error is the structured library error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Misuse Error Constructors ---

// Consumed creates an Error for a terminal operation on a consumed stream.
func Consumed(op string) *Error {
	return &Error{
		Code:    ErrCodeConsumed,
		Message: fmt.Sprintf("stream already consumed: %s requires an unconsumed stream", op),
		Details: map[string]any{"operation": op},
	}
}

// Unbounded creates an Error for a bounded-only terminal operation on an
// unbounded source.
func Unbounded(op string) *Error {
	return &Error{
		Code:    ErrCodeUnbounded,
		Message: fmt.Sprintf("%s requires a bounded stream: bound the source with limit or takeWhile first", op),
		Details: map[string]any{"operation": op},
	}
}

// NegativeCount creates an Error for a negative limit or skip count.
func NegativeCount(op string, n int64) *Error {
	return &Error{
		Code:    ErrCodeNegativeCount,
		Message: fmt.Sprintf("%s requires a non-negative count (got: %d)", op, n),
		Details: map[string]any{"operation": op, "count": n},
	}
}

// InvalidArgument creates an Error for an invalid stage argument.
func InvalidArgument(op, reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("invalid argument to %s: %s", op, reason),
		Details: map[string]any{"operation": op},
	}
}

// --- Inspection Helpers ---

// GetCode extracts the ErrorCode from an error, unwrapping as needed.
// Returns ErrCodeInternal for non-library errors and "" for nil.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
