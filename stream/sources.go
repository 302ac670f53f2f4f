package stream

import "context"

// Iterate returns the unbounded stream seed, op(seed), op(op(seed)), ...
// Each pull applies op once to the previous element; nothing is memoized
// beyond the current value. Bound the result with Limit or TakeWhile before
// any materializing terminal operation.
func Iterate[T any](seed T, op func(T) T) *Stream[T] {
	return newStream(true, func(_ context.Context) Iterator[T] {
		return &iterateIter[T]{next: seed, op: op}
	})
}

// Generate returns the unbounded stream supplier(), supplier(), ...
// The supplier may be impure (e.g. randomness); no ordering beyond call
// order is promised.
func Generate[T any](supplier func() T) *Stream[T] {
	return newStream(true, func(_ context.Context) Iterator[T] {
		return &generateIter[T]{supplier: supplier}
	})
}

// Concat returns a stream of all elements of the first input stream, then
// the second, and so on. The next input is only pulled once the current one
// is exhausted; if any input is unbounded, later inputs are never reached.
// Concat claims its inputs: they belong to the result and cannot be driven
// separately afterwards.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	unbounded := false
	var buildErr error
	creates := make([]func(ctx context.Context) Iterator[T], 0, len(streams))
	for _, s := range streams {
		if err := s.claim("concat"); err != nil && buildErr == nil {
			buildErr = err
		}
		if s.buildErr != nil && buildErr == nil {
			buildErr = s.buildErr
		}
		unbounded = unbounded || s.unbounded
		creates = append(creates, s.create)
	}

	out := newStream(unbounded, func(ctx context.Context) Iterator[T] {
		iters := make([]Iterator[T], len(creates))
		for i, create := range creates {
			iters[i] = create(ctx)
		}
		return &concatIter[T]{iters: iters}
	})
	out.buildErr = buildErr
	return out
}

// --- Source iterators ---

// Unbounded source iterators honor context cancellation so that a
// non-terminating drive can be aborted with a deadline.

type iterateIter[T any] struct {
	next T
	op   func(T) T
}

func (it *iterateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val := it.next
	it.next = it.op(val)
	return val, true, nil
}

type generateIter[T any] struct {
	supplier func() T
}

func (it *generateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return it.supplier(), true, nil
}

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}
