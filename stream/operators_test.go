package stream

import (
	"context"
	"errors"
	"strconv"
	"testing"

	apperrors "github.com/kbukum/streamkit/errors"
)

func TestFilter(t *testing.T) {
	got := mustCollect(t, Of(1, 2, 3, 4, 5).Filter(func(n int) bool { return n%2 == 0 }))
	if !sliceEqual(got, []int{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := mustCollect(t, Of(5, 1, 4, 2, 3).Filter(func(n int) bool { return n > 2 }))
	if !sliceEqual(got, []int{5, 4, 3}) {
		t.Errorf("got %v, want [5 4 3]", got)
	}
}

func TestMap(t *testing.T) {
	got, err := Map(Of(1, 2, 3), func(_ context.Context, n int) (string, error) {
		return "#" + strconv.Itoa(n), nil
	}).Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !sliceEqual(got, []string{"#1", "#2", "#3"}) {
		t.Errorf("got %v", got)
	}
}

func TestMap_SameLength(t *testing.T) {
	in := []int{4, 7, 1, 9}
	got := mustCollect(t, Map(FromSlice(in), func(_ context.Context, n int) (int, error) {
		return n * n, nil
	}))
	if len(got) != len(in) {
		t.Fatalf("got %d elements, want %d", len(got), len(in))
	}
	for i, n := range in {
		if got[i] != n*n {
			t.Errorf("got[%d] = %d, want %d", i, got[i], n*n)
		}
	}
}

func TestMap_ErrorAbortsDrive(t *testing.T) {
	wantErr := errors.New("mapper failed")
	applied := 0
	_, err := Map(Of(1, 2, 3), func(_ context.Context, n int) (int, error) {
		applied++
		if n == 2 {
			return 0, wantErr
		}
		return n, nil
	}).Collect(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
	if applied != 2 {
		t.Errorf("mapper ran %d times, want 2 (no pulls past the failure)", applied)
	}
}

func TestFlatMap(t *testing.T) {
	got := mustCollect(t, FlatMap(Of(1, 2, 3), func(_ context.Context, n int) (*Stream[int], error) {
		return Of(n, n*10), nil
	}))
	if !sliceEqual(got, []int{1, 10, 2, 20, 3, 30}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap_NilAndEmptyInner(t *testing.T) {
	got := mustCollect(t, FlatMap(Of(1, 2, 3, 4), func(_ context.Context, n int) (*Stream[int], error) {
		switch n % 3 {
		case 0:
			return nil, nil
		case 1:
			return Empty[int](), nil
		default:
			return Of(n), nil
		}
	}))
	if !sliceEqual(got, []int{2}) {
		t.Errorf("got %v, want [2]", got)
	}
}

func TestFlatMap_LazyOnUnboundedUpstream(t *testing.T) {
	// Only one inner stream may be active at a time, so an unbounded
	// upstream still supports bounded consumption.
	expanded := 0
	s := FlatMap(Iterate(0, func(n int) int { return n + 1 }), func(_ context.Context, n int) (*Stream[int], error) {
		expanded++
		return Of(n, n), nil
	}).Limit(4)

	got := mustCollect(t, s)
	if !sliceEqual(got, []int{0, 0, 1, 1}) {
		t.Errorf("got %v", got)
	}
	if expanded > 3 {
		t.Errorf("expanded %d inner streams, want at most 3", expanded)
	}
}

func TestFlatMap_ErrorFromMapper(t *testing.T) {
	wantErr := errors.New("expand failed")
	_, err := FlatMap(Of(1), func(_ context.Context, _ int) (*Stream[int], error) {
		return nil, wantErr
	}).Collect(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestDistinct(t *testing.T) {
	got := mustCollect(t, Distinct(Of(1, 2, 2, 3)))
	if !sliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestDistinct_FirstOccurrenceOrder(t *testing.T) {
	got := mustCollect(t, Distinct(Of("b", "a", "b", "c", "a")))
	if !sliceEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("got %v, want [b a c]", got)
	}
}

func TestDistinct_OnUnboundedSource(t *testing.T) {
	// Cycles through 0,1,2; distinct forwards each once.
	n := 0
	got := mustCollect(t, Distinct(Generate(func() int {
		n++
		return n % 3
	})).Limit(3))
	if !sliceEqual(got, []int{1, 2, 0}) {
		t.Errorf("got %v", got)
	}
}

func TestPeek(t *testing.T) {
	var seen []int
	got := mustCollect(t, Of(1, 2, 3).Peek(func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	}))
	if !sliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	if !sliceEqual(seen, []int{1, 2, 3}) {
		t.Errorf("peek saw %v", seen)
	}
}

func TestPeek_RunsPerPullNotEagerly(t *testing.T) {
	seen := 0
	got := mustCollect(t, Of(1, 2, 3, 4, 5).Peek(func(_ context.Context, _ int) error {
		seen++
		return nil
	}).Limit(2))
	if !sliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}
	if seen != 2 {
		t.Errorf("peek ran %d times, want 2", seen)
	}
}

func TestPeek_ErrorAbortsDrive(t *testing.T) {
	wantErr := errors.New("consumer failed")
	err := Of(1, 2).Peek(func(_ context.Context, _ int) error {
		return wantErr
	}).ForEach(context.Background(), func(_ context.Context, _ int) error { return nil })
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestChunk(t *testing.T) {
	got := mustCollect(t, Chunk(Of(1, 2, 3, 4, 5), 2))
	want := [][]int{{1, 2}, {3, 4}, {5}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !sliceEqual(got[i], want[i]) {
			t.Errorf("chunk %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	_, err := Chunk(Of(1, 2), 0).Collect(context.Background())
	if !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("got %v, want INVALID_ARGUMENT", err)
	}
}

func TestStages_AreLazyToConstruct(t *testing.T) {
	touched := false
	s := Generate(func() int {
		touched = true
		return 0
	})
	_ = Map(s.Filter(func(int) bool { return true }), func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if touched {
		t.Error("constructing stages must not pull from the source")
	}
}
