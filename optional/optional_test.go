package optional

import "testing"

func TestOf(t *testing.T) {
	v := Of(42)
	got, ok := v.Get()
	if !ok || got != 42 {
		t.Errorf("got (%v, %v), want (42, true)", got, ok)
	}
	if !v.IsPresent() {
		t.Error("expected present")
	}
}

func TestOf_ZeroValue(t *testing.T) {
	v := Of(0)
	if !v.IsPresent() {
		t.Error("Of(0) must be present: zero value is not absence")
	}
}

func TestEmpty(t *testing.T) {
	v := Empty[string]()
	got, ok := v.Get()
	if ok || got != "" {
		t.Errorf("got (%q, %v), want (\"\", false)", got, ok)
	}
	if v.IsPresent() {
		t.Error("expected empty")
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var v Value[int]
	if v.IsPresent() {
		t.Error("zero Value must be empty")
	}
}

func TestOfPtr(t *testing.T) {
	n := 7
	if got := Of(n); !got.IsPresent() {
		t.Error("expected present")
	}
	if got := OfPtr(&n); got.MustGet() != 7 {
		t.Errorf("got %v, want 7", got.MustGet())
	}
	if got := OfPtr[int](nil); got.IsPresent() {
		t.Error("OfPtr(nil) must be empty")
	}
}

func TestMustGet_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Empty[int]().MustGet()
}

func TestOrElse(t *testing.T) {
	if got := Of("a").OrElse("b"); got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
	if got := Empty[string]().OrElse("b"); got != "b" {
		t.Errorf("got %q, want %q", got, "b")
	}
}

func TestOrElseGet(t *testing.T) {
	called := false
	got := Of(1).OrElseGet(func() int {
		called = true
		return 2
	})
	if got != 1 || called {
		t.Errorf("supplier must not run for a present value (got %v, called %v)", got, called)
	}
	if got := Empty[int]().OrElseGet(func() int { return 2 }); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestString(t *testing.T) {
	if got := Of(3).String(); got != "Optional[3]" {
		t.Errorf("got %q", got)
	}
	if got := Empty[int]().String(); got != "Optional.empty" {
		t.Errorf("got %q", got)
	}
}
