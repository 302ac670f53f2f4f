package stream

import (
	"context"

	apperrors "github.com/kbukum/streamkit/errors"
)

// Filter keeps only elements that satisfy the predicate.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &filterIter[T]{source: s.create(ctx), pred: pred}
	})
}

// Peek invokes fn as a side effect for each element as it is pulled, then
// passes the element through unchanged. Use for logging, metrics, or
// mid-pipeline publishing. The side effect happens exactly when the element
// is pulled, never eagerly for the whole sequence.
func (s *Stream[T]) Peek(fn func(context.Context, T) error) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &peekIter[T]{source: s.create(ctx), fn: fn}
	})
}

// Map transforms each element using fn.
func Map[I, O any](s *Stream[I], fn func(context.Context, I) (O, error)) *Stream[O] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[O] {
		return &mapIter[I, O]{source: s.create(ctx), fn: fn}
	})
}

// FlatMap replaces each element with the contents of the stream produced by
// fn, flattened in order. A nil stream from fn counts as empty. At most one
// inner stream is active at a time, so laziness is preserved under
// unbounded upstreams. Inner streams are claimed as they are expanded and
// are assumed to be bounded.
func FlatMap[I, O any](s *Stream[I], fn func(context.Context, I) (*Stream[O], error)) *Stream[O] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[O] {
		return &flatMapIter[I, O]{source: s.create(ctx), fn: fn}
	})
}

// Distinct removes duplicate elements, forwarding the first occurrence of
// each value in encounter order. The seen-set grows with the number of
// distinct elements pulled.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &distinctIter[T]{source: s.create(ctx), seen: make(map[T]struct{})}
	})
}

// Chunk groups elements into consecutive slices of up to size elements.
// The final chunk may be shorter. size must be at least 1.
func Chunk[T any](s *Stream[T], size int) *Stream[[]T] {
	out := derive(s, s.unbounded, func(ctx context.Context) Iterator[[]T] {
		return &chunkIter[T]{source: s.create(ctx), size: size}
	})
	if out.buildErr == nil && size < 1 {
		out.buildErr = apperrors.InvalidArgument("chunk", "size must be at least 1")
	}
	return out
}

// --- Stage iterators ---

type filterIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.pred(val) {
			return val, true, nil
		}
	}
}

type peekIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *peekIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(context.Context, I) (*Stream[O], error)
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			it.current = nil
		}

		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		inner, err := it.fn(ctx, in)
		if err != nil {
			var zero O
			return zero, false, err
		}
		if inner == nil {
			continue
		}
		cur, err := inner.claimIter(ctx, "flatMap")
		if err != nil {
			var zero O
			return zero, false, err
		}
		it.current = cur
	}
}

type distinctIter[T comparable] struct {
	source Iterator[T]
	seen   map[T]struct{}
}

func (it *distinctIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if _, dup := it.seen[val]; dup {
			continue
		}
		it.seen[val] = struct{}{}
		return val, true, nil
	}
}

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

func (it *chunkIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}

	var chunk []T
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(chunk) > 0 {
				return chunk, true, nil
			}
			return nil, false, nil
		}
		chunk = append(chunk, val)
	}
	return chunk, true, nil
}
