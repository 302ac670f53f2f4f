package stream

import (
	"context"

	apperrors "github.com/kbukum/streamkit/errors"
)

// Limit truncates the stream to at most n elements. A limit of 0 yields an
// immediately exhausted stream. Limit bounds an unbounded source. n must be
// non-negative; a negative n fails the drive with a NEGATIVE_COUNT error.
func (s *Stream[T]) Limit(n int64) *Stream[T] {
	out := derive(s, false, func(ctx context.Context) Iterator[T] {
		return &limitIter[T]{source: s.create(ctx), remaining: n}
	})
	if out.buildErr == nil && n < 0 {
		out.buildErr = apperrors.NegativeCount("limit", n)
	}
	return out
}

// Skip discards the first n elements, or all of them when the stream is
// shorter, then forwards the remainder unchanged. n must be non-negative.
func (s *Stream[T]) Skip(n int64) *Stream[T] {
	out := derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &skipIter[T]{source: s.create(ctx), n: n}
	})
	if out.buildErr == nil && n < 0 {
		out.buildErr = apperrors.NegativeCount("skip", n)
	}
	return out
}

// TakeWhile forwards the longest prefix of elements satisfying pred. The
// first failing element ends the stream permanently, even if a later
// element would satisfy pred again. TakeWhile bounds an unbounded source
// only if pred eventually fails; the stream is still treated as bounded,
// matching the caller's stated intent.
func (s *Stream[T]) TakeWhile(pred func(T) bool) *Stream[T] {
	return derive(s, false, func(ctx context.Context) Iterator[T] {
		return &takeWhileIter[T]{source: s.create(ctx), pred: pred}
	})
}

// DropWhile discards the longest prefix of elements satisfying pred. From
// the first failing element on, everything is forwarded unconditionally and
// pred is not consulted again.
func (s *Stream[T]) DropWhile(pred func(T) bool) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &dropWhileIter[T]{source: s.create(ctx), pred: pred}
	})
}

// --- Stage iterators ---

type limitIter[T any] struct {
	source    Iterator[T]
	remaining int64
}

func (it *limitIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

type skipIter[T any] struct {
	source  Iterator[T]
	n       int64
	skipped bool
}

func (it *skipIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.skipped {
		it.skipped = true
		for i := int64(0); i < it.n; i++ {
			_, ok, err := it.source.Next(ctx)
			if err != nil {
				var zero T
				return zero, false, err
			}
			if !ok {
				var zero T
				return zero, false, nil
			}
		}
	}
	return it.source.Next(ctx)
}

type takeWhileIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.done = true
		return val, false, err
	}
	if !it.pred(val) {
		it.done = true
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

type dropWhileIter[T any] struct {
	source   Iterator[T]
	pred     func(T) bool
	dropping bool
}

func (it *dropWhileIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.dropping {
		it.dropping = true
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil || !ok {
				return val, false, err
			}
			if !it.pred(val) {
				return val, true, nil
			}
		}
	}
	return it.source.Next(ctx)
}
