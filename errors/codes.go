package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Misuse errors: the caller violated the stream contract.
const (
	// ErrCodeConsumed indicates a terminal operation on an already-consumed stream.
	ErrCodeConsumed ErrorCode = "STREAM_CONSUMED"
	// ErrCodeUnbounded indicates a bounded-only terminal operation on an unbounded source.
	ErrCodeUnbounded ErrorCode = "STREAM_UNBOUNDED"
	// ErrCodeNegativeCount indicates a negative element count passed to limit or skip.
	ErrCodeNegativeCount ErrorCode = "NEGATIVE_COUNT"
	// ErrCodeInvalidArgument indicates an otherwise invalid stage argument.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal library error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
