// Package stream provides lazy, pull-based sequence pipelines.
//
// A Stream composes a source with zero or more stage combinators into a
// deferred pipeline. No work happens until a terminal operation drives the
// pipeline; each stage pulls from the previous stage on demand, one element
// at a time. This makes infinite sources safe as long as a bounding stage
// (Limit, TakeWhile) or a short-circuiting terminal (AnyMatch, FindFirst)
// sits downstream.
//
// Same-element-type stages are methods and chain fluently; stages that
// change the element type or need a type constraint are package functions,
// since Go methods cannot introduce type parameters:
//
//	evens, err := stream.Map(
//	    stream.Iterate(1, func(n int) int { return n + 1 }).
//	        Filter(func(n int) bool { return n%2 == 0 }).
//	        Limit(5),
//	    func(_ context.Context, n int) (string, error) {
//	        return strconv.Itoa(n), nil
//	    },
//	).Collect(ctx)
//
// # Single use
//
// A Stream chain is driven by exactly one terminal operation. Every
// combinator shares a consumed flag with the stream it wraps, so after any
// terminal call the whole chain is spent; further terminal calls fail with
// a STREAM_CONSUMED error instead of silently re-pulling a partially
// drained source.
//
// # Unbounded sources
//
// Iterate and Generate produce unbounded streams. Terminal operations that
// require full materialization (Count, Collect, ToSet, Min, Max, Equal) and
// the sorting stages fail fast with a STREAM_UNBOUNDED error unless a
// bounding stage runs first. ForEach, Reduce, Fold, Sum, AllMatch and
// NoneMatch cannot detect this statically: driving them over an unbounded
// stream with no disqualifying element never terminates. Source iterators
// honor context cancellation, so a deadline on ctx is the caller's escape
// hatch.
//
// # Errors
//
// Errors returned by caller-supplied functions abort the drive and
// propagate unchanged to the terminal caller; nothing is retried or
// swallowed. Misuse errors (reuse, unbounded terminals, negative counts)
// carry machine-readable codes from the errors package.
package stream
