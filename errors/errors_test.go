package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	e := New(ErrCodeInvalidArgument, "bad input")
	if got := e.Error(); got != "INVALID_ARGUMENT: bad input" {
		t.Errorf("got %q", got)
	}
}

func TestError_WithCause(t *testing.T) {
	cause := stderrors.New("boom")
	e := New(ErrCodeInternal, "wrapped").WithCause(cause)
	if !strings.Contains(e.Error(), "boom") {
		t.Errorf("cause missing from message: %q", e.Error())
	}
	if !stderrors.Is(e, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestConsumed(t *testing.T) {
	e := Consumed("collect")
	if e.Code != ErrCodeConsumed {
		t.Errorf("got code %q", e.Code)
	}
	if e.Details["operation"] != "collect" {
		t.Errorf("got details %v", e.Details)
	}
}

func TestUnbounded(t *testing.T) {
	e := Unbounded("count")
	if e.Code != ErrCodeUnbounded {
		t.Errorf("got code %q", e.Code)
	}
}

func TestNegativeCount(t *testing.T) {
	e := NegativeCount("limit", -1)
	if e.Code != ErrCodeNegativeCount {
		t.Errorf("got code %q", e.Code)
	}
	if e.Details["count"] != int64(-1) {
		t.Errorf("got details %v", e.Details)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(nil); got != "" {
		t.Errorf("got %q for nil", got)
	}
	if got := GetCode(Unbounded("count")); got != ErrCodeUnbounded {
		t.Errorf("got %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("got %q for plain error", got)
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("driving stream: %w", Consumed("forEach"))
	if got := GetCode(wrapped); got != ErrCodeConsumed {
		t.Errorf("got %q for wrapped error", got)
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(Consumed("count"), ErrCodeConsumed) {
		t.Error("expected match")
	}
	if IsCode(Consumed("count"), ErrCodeUnbounded) {
		t.Error("expected no match")
	}
	if IsCode(stderrors.New("plain"), ErrCodeConsumed) {
		t.Error("plain error must not match")
	}
}
