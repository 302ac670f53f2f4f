package stream

import (
	"cmp"
	"context"
	"iter"

	"github.com/kbukum/streamkit/optional"
)

// ForEach pulls every element and applies fn for its side effect. Driving
// an unbounded stream never returns unless fn fails or ctx is cancelled.
func (s *Stream[T]) ForEach(ctx context.Context, fn func(context.Context, T) error) error {
	it, err := s.claimIter(ctx, "forEach")
	if err != nil {
		return err
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// AnyMatch reports whether any element satisfies pred, short-circuiting on
// the first match. On an unbounded stream it only returns if a match exists.
func (s *Stream[T]) AnyMatch(ctx context.Context, pred func(T) bool) (bool, error) {
	it, err := s.claimIter(ctx, "anyMatch")
	if err != nil {
		return false, err
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if pred(val) {
			return true, nil
		}
	}
}

// AllMatch reports whether every element satisfies pred, short-circuiting
// on the first failure. An empty stream vacuously matches.
func (s *Stream[T]) AllMatch(ctx context.Context, pred func(T) bool) (bool, error) {
	it, err := s.claimIter(ctx, "allMatch")
	if err != nil {
		return false, err
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !pred(val) {
			return false, nil
		}
	}
}

// NoneMatch reports whether no element satisfies pred, short-circuiting on
// the first match. An empty stream vacuously matches.
func (s *Stream[T]) NoneMatch(ctx context.Context, pred func(T) bool) (bool, error) {
	it, err := s.claimIter(ctx, "noneMatch")
	if err != nil {
		return false, err
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if pred(val) {
			return false, nil
		}
	}
}

// FindFirst returns the first element, or an empty Optional when the stream
// is immediately exhausted.
func (s *Stream[T]) FindFirst(ctx context.Context) (optional.Value[T], error) {
	return s.findOne(ctx, "findFirst")
}

// FindAny returns some element of the stream. The engine is strictly
// sequential, so FindAny behaves identically to FindFirst; the looser
// contract leaves room for a future parallel evaluation mode.
func (s *Stream[T]) FindAny(ctx context.Context) (optional.Value[T], error) {
	return s.findOne(ctx, "findAny")
}

func (s *Stream[T]) findOne(ctx context.Context, op string) (optional.Value[T], error) {
	it, err := s.claimIter(ctx, op)
	if err != nil {
		return optional.Empty[T](), err
	}
	val, ok, err := it.Next(ctx)
	if err != nil {
		return optional.Empty[T](), err
	}
	if !ok {
		return optional.Empty[T](), nil
	}
	return optional.Of(val), nil
}

// Reduce folds the stream left-to-right with acc, seeding the accumulator
// with the first element. Returns an empty Optional for an empty stream.
// Use Fold to provide an explicit identity value.
func (s *Stream[T]) Reduce(ctx context.Context, acc func(T, T) T) (optional.Value[T], error) {
	return s.reduce(ctx, "reduce", acc)
}

func (s *Stream[T]) reduce(ctx context.Context, op string, acc func(T, T) T) (optional.Value[T], error) {
	it, err := s.claimIter(ctx, op)
	if err != nil {
		return optional.Empty[T](), err
	}
	result, ok, err := it.Next(ctx)
	if err != nil {
		return optional.Empty[T](), err
	}
	if !ok {
		return optional.Empty[T](), nil
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return optional.Empty[T](), err
		}
		if !ok {
			return optional.Of(result), nil
		}
		result = acc(result, val)
	}
}

// Fold folds the stream left-to-right with acc starting from identity.
// An empty stream returns identity. Identity is an explicit parameter, not
// a sentinel: a zero-valued identity is a real value, never "absent".
func (s *Stream[T]) Fold(ctx context.Context, identity T, acc func(T, T) T) (T, error) {
	it, err := s.claimIter(ctx, "fold")
	if err != nil {
		var zero T
		return zero, err
	}
	result := identity
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !ok {
			return result, nil
		}
		result = acc(result, val)
	}
}

// MinFunc returns the minimum element by the comparison function, keeping
// the first of equal minima. Empty stream yields an empty Optional.
func (s *Stream[T]) MinFunc(ctx context.Context, compare func(a, b T) int) (optional.Value[T], error) {
	return s.extremum(ctx, "min", func(candidate, best T) bool {
		return compare(candidate, best) < 0
	})
}

// MaxFunc returns the maximum element by the comparison function, keeping
// the first of equal maxima. Empty stream yields an empty Optional.
func (s *Stream[T]) MaxFunc(ctx context.Context, compare func(a, b T) int) (optional.Value[T], error) {
	return s.extremum(ctx, "max", func(candidate, best T) bool {
		return compare(candidate, best) > 0
	})
}

func (s *Stream[T]) extremum(ctx context.Context, op string, better func(candidate, best T) bool) (optional.Value[T], error) {
	it, err := s.claimBounded(ctx, op)
	if err != nil {
		return optional.Empty[T](), err
	}
	best, ok, err := it.Next(ctx)
	if err != nil {
		return optional.Empty[T](), err
	}
	if !ok {
		return optional.Empty[T](), nil
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return optional.Empty[T](), err
		}
		if !ok {
			return optional.Of(best), nil
		}
		if better(val, best) {
			best = val
		}
	}
}

// Min returns the minimum element by natural order.
func Min[T cmp.Ordered](ctx context.Context, s *Stream[T]) (optional.Value[T], error) {
	return s.MinFunc(ctx, cmp.Compare[T])
}

// Max returns the maximum element by natural order.
func Max[T cmp.Ordered](ctx context.Context, s *Stream[T]) (optional.Value[T], error) {
	return s.MaxFunc(ctx, cmp.Compare[T])
}

// Number constrains Sum to element types supporting addition.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds all elements. Empty stream yields an empty Optional.
func Sum[T Number](ctx context.Context, s *Stream[T]) (optional.Value[T], error) {
	return s.reduce(ctx, "sum", func(a, b T) T { return a + b })
}

// Count returns the number of elements.
func (s *Stream[T]) Count(ctx context.Context) (int64, error) {
	it, err := s.claimBounded(ctx, "count")
	if err != nil {
		return 0, err
	}
	var n int64
	for {
		_, ok, err := it.Next(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// Collect materializes the stream into a slice in encounter order.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	it, err := s.claimBounded(ctx, "collect")
	if err != nil {
		return nil, err
	}
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ToSet materializes the stream into a set, collapsing duplicates.
func ToSet[T comparable](ctx context.Context, s *Stream[T]) (map[T]struct{}, error) {
	it, err := s.claimBounded(ctx, "toSet")
	if err != nil {
		return nil, err
	}
	result := make(map[T]struct{})
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result[val] = struct{}{}
	}
}

// Seq exposes the stream as a range-over-func sequence of (element, error)
// pairs. Ranging over it consumes the stream; a claim or pull error is
// yielded as the final pair.
func (s *Stream[T]) Seq(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it, err := s.claimIter(ctx, "seq")
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(val, nil) {
				return
			}
		}
	}
}

// Iter claims the stream and returns its raw iterator for callers that want
// to drive the pulls themselves. This counts as the stream's one terminal
// consumption.
func (s *Stream[T]) Iter(ctx context.Context) (Iterator[T], error) {
	return s.claimIter(ctx, "iter")
}

// Equal reports whether two streams produce equal sequences. Both streams
// are consumed by the comparison, and both must be bounded.
func Equal[T comparable](ctx context.Context, a, b *Stream[T]) (bool, error) {
	ia, errA := a.claimBounded(ctx, "equal")
	ib, errB := b.claimBounded(ctx, "equal")
	if errA != nil {
		return false, errA
	}
	if errB != nil {
		return false, errB
	}
	for {
		va, okA, err := ia.Next(ctx)
		if err != nil {
			return false, err
		}
		vb, okB, err := ib.Next(ctx)
		if err != nil {
			return false, err
		}
		if !okA || !okB {
			return okA == okB, nil
		}
		if va != vb {
			return false, nil
		}
	}
}
