package stream

import (
	"cmp"
	"context"
	"slices"

	apperrors "github.com/kbukum/streamkit/errors"
)

// SortedFunc sorts the stream by the given comparison function, using a
// stable sort. The stage is still lazy to construct, but its first pull
// materializes the whole upstream; an unbounded upstream fails the drive
// with a STREAM_UNBOUNDED error.
func (s *Stream[T]) SortedFunc(compare func(a, b T) int) *Stream[T] {
	out := derive(s, false, func(ctx context.Context) Iterator[T] {
		return &sortedIter[T]{source: s.create(ctx), compare: compare}
	})
	if out.buildErr == nil && s.unbounded {
		out.buildErr = apperrors.Unbounded("sorted")
	}
	return out
}

// Sorted sorts the stream by the natural order of its elements.
func Sorted[T cmp.Ordered](s *Stream[T]) *Stream[T] {
	return s.SortedFunc(cmp.Compare[T])
}

type sortedIter[T any] struct {
	source  Iterator[T]
	compare func(a, b T) int
	items   []T
	index   int
	loaded  bool
}

func (it *sortedIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.loaded {
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				var zero T
				return zero, false, err
			}
			if !ok {
				break
			}
			it.items = append(it.items, val)
		}
		slices.SortStableFunc(it.items, it.compare)
		it.loaded = true
	}

	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}
