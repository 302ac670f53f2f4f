// Package errors provides structured error types with machine-readable codes
// for the streamkit library.
//
// The codes cover stream misuse: re-driving a consumed stream, calling a
// bounded-only terminal operation on an unbounded source, and invalid stage
// arguments. Errors returned by caller-supplied functions (predicates,
// mappers, consumers, suppliers) are never wrapped in these codes — the
// stream engine propagates them verbatim.
//
//	_, err := s.Collect(ctx)
//	if errors.IsCode(err, errors.ErrCodeConsumed) {
//	    // the stream was already driven by another terminal operation
//	}
package errors
