package stream

import (
	"context"
	"iter"
	"sync/atomic"

	apperrors "github.com/kbukum/streamkit/errors"
)

// Iterator provides pull-based sequential access to a stream of values.
// Next returns (zero, false, nil) when the sequence is exhausted; a non-nil
// error aborts the drive and propagates to the terminal caller.
type Iterator[T any] interface {
	Next(ctx context.Context) (T, bool, error)
}

// Stream represents a lazy, pull-based sequence pipeline.
// No work happens until a terminal operation drives it.
type Stream[T any] struct {
	create    func(ctx context.Context) Iterator[T]
	unbounded bool
	buildErr  error
	state     *streamState
}

// streamState is shared by every stream derived from the same chain, so
// consuming any stream in the chain spends the whole chain.
type streamState struct {
	consumed atomic.Bool
}

func newStream[T any](unbounded bool, create func(ctx context.Context) Iterator[T]) *Stream[T] {
	return &Stream[T]{
		create:    create,
		unbounded: unbounded,
		state:     &streamState{},
	}
}

// derive returns a new stream wrapping s with one more stage. The derived
// stream shares s's consumed state and inherits any deferred build error.
func derive[I, O any](s *Stream[I], unbounded bool, create func(ctx context.Context) Iterator[O]) *Stream[O] {
	return &Stream[O]{
		create:    create,
		unbounded: unbounded,
		buildErr:  s.buildErr,
		state:     s.state,
	}
}

// claim atomically marks the chain consumed. It fails when a terminal
// operation already drove this chain.
func (s *Stream[T]) claim(op string) error {
	if s.state.consumed.Swap(true) {
		return apperrors.Consumed(op)
	}
	return nil
}

// claimIter claims the chain and builds its iterator.
func (s *Stream[T]) claimIter(ctx context.Context, op string) (Iterator[T], error) {
	if err := s.claim(op); err != nil {
		return nil, err
	}
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return s.create(ctx), nil
}

// claimBounded is claimIter for terminal operations that must materialize
// the whole sequence.
func (s *Stream[T]) claimBounded(ctx context.Context, op string) (Iterator[T], error) {
	if err := s.claim(op); err != nil {
		return nil, err
	}
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	if s.unbounded {
		return nil, apperrors.Unbounded(op)
	}
	return s.create(ctx), nil
}

// --- Constructors ---

// Empty returns a stream with no elements.
func Empty[T any]() *Stream[T] {
	return FromSlice[T](nil)
}

// Of returns a stream of the given elements in order.
func Of[T any](elems ...T) *Stream[T] {
	return FromSlice(elems)
}

// OfNullable returns a single-element stream when elem is non-nil, otherwise
// an empty stream.
func OfNullable[T any](elem *T) *Stream[T] {
	if elem == nil {
		return Empty[T]()
	}
	return Of(*elem)
}

// FromSlice creates a stream over the elements of items.
func FromSlice[T any](items []T) *Stream[T] {
	return newStream(false, func(_ context.Context) Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// From creates a stream pulling from an existing Iterator. The iterator is
// assumed to be finite; wrap an unbounded one with FromFunc plus Limit or
// TakeWhile before using materializing terminals.
func From[T any](it Iterator[T]) *Stream[T] {
	return newStream(false, func(_ context.Context) Iterator[T] {
		return it
	})
}

// FromFunc creates a stream from a factory that produces an Iterator when
// the stream is driven.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Stream[T] {
	return newStream(false, fn)
}

// FromSeq creates a stream over a Go range-over-func sequence.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return newStream(false, func(_ context.Context) Iterator[T] {
		next, stop := iter.Pull(seq)
		return &seqIter[T]{next: next, stop: stop}
	})
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}
