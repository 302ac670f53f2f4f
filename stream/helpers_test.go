package stream

import (
	"context"
	"testing"
)

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustCollect[T any](t *testing.T, s *Stream[T]) []T {
	t.Helper()
	got, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return got
}

// failingIter returns one element, then an error.
type failingIter struct {
	err     error
	yielded bool
}

func (it *failingIter) Next(_ context.Context) (int, bool, error) {
	if !it.yielded {
		it.yielded = true
		return 1, true, nil
	}
	return 0, false, it.err
}
