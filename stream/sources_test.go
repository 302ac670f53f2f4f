package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/streamkit/errors"
)

func TestIterate(t *testing.T) {
	got := mustCollect(t, Iterate(1, func(n int) int { return n * 2 }).Limit(5))
	if !sliceEqual(got, []int{1, 2, 4, 8, 16}) {
		t.Errorf("got %v, want [1 2 4 8 16]", got)
	}
}

func TestIterate_IsLazy(t *testing.T) {
	calls := 0
	s := Iterate(0, func(n int) int {
		calls++
		return n + 1
	})
	if calls != 0 {
		t.Fatalf("op ran %d times before any terminal call", calls)
	}

	got := mustCollect(t, s.Limit(3))
	if !sliceEqual(got, []int{0, 1, 2}) {
		t.Errorf("got %v", got)
	}
	// One application per pulled element, including the discarded lookahead.
	if calls != 3 {
		t.Errorf("op ran %d times, want 3", calls)
	}
}

func TestGenerate(t *testing.T) {
	n := 0
	got := mustCollect(t, Generate(func() int {
		n++
		return n
	}).Limit(4))
	if !sliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}
}

func TestGenerate_UUIDSupplier(t *testing.T) {
	ctx := context.Background()
	ids, err := ToSet(ctx, Generate(uuid.NewString).Limit(50))
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 50 {
		t.Errorf("got %d distinct ids, want 50", len(ids))
	}
}

func TestGenerate_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// ForEach over an unbounded source never exhausts; cancellation is the
	// only way out.
	err := Generate(func() int { return 1 }).ForEach(ctx, func(_ context.Context, _ int) error {
		return nil
	})
	if err != context.DeadlineExceeded {
		t.Errorf("got %v, want context.DeadlineExceeded", err)
	}
}

func TestConcat(t *testing.T) {
	got := mustCollect(t, Concat(Of(1, 2), Of(3, 4)))
	if !sliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v, want [1 2 3 4]", got)
	}
}

func TestConcat_Empty(t *testing.T) {
	got := mustCollect(t, Concat[int]())
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}

	got = mustCollect(t, Concat(Empty[int](), Of(1), Empty[int]()))
	if !sliceEqual(got, []int{1}) {
		t.Errorf("got %v, want [1]", got)
	}
}

func TestConcat_ClaimsInputs(t *testing.T) {
	ctx := context.Background()
	a := Of(1, 2)
	b := Of(3, 4)
	joined := Concat(a, b)

	_, err := a.Collect(ctx)
	if !apperrors.IsCode(err, apperrors.ErrCodeConsumed) {
		t.Errorf("got %v, want STREAM_CONSUMED for concat input", err)
	}

	got := mustCollect(t, joined)
	if !sliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}
}

func TestConcat_ConsumedInputFailsDrive(t *testing.T) {
	ctx := context.Background()
	a := Of(1)
	if _, err := a.Collect(ctx); err != nil {
		t.Fatal(err)
	}

	_, err := Concat(a, Of(2)).Collect(ctx)
	if !apperrors.IsCode(err, apperrors.ErrCodeConsumed) {
		t.Errorf("got %v, want STREAM_CONSUMED", err)
	}
}

func TestConcat_UnboundedInput(t *testing.T) {
	ctx := context.Background()
	s := Concat(Of(1), Iterate(0, func(n int) int { return n }))

	_, err := s.Collect(ctx)
	if !apperrors.IsCode(err, apperrors.ErrCodeUnbounded) {
		t.Errorf("got %v, want STREAM_UNBOUNDED", err)
	}
}

func TestConcat_UnboundedInputBoundedByLimit(t *testing.T) {
	got := mustCollect(t, Concat(Of(10), Iterate(0, func(n int) int { return n + 1 })).Limit(3))
	if !sliceEqual(got, []int{10, 0, 1}) {
		t.Errorf("got %v", got)
	}
}

func TestSourceError_Propagates(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("source failure")
	s := From[int](&failingIter{err: wantErr})

	_, err := s.Collect(ctx)
	if err != wantErr {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}
