// Package optional provides a zero-or-one value container used as the result
// type of stream terminal operations that may have nothing to return.
// It distinguishes "no value" from "present zero value", avoiding the usual
// nil-vs-empty ambiguity of pointer returns.
package optional

import "fmt"

// Value holds zero or one value of type T.
// The zero Value is empty and ready to use.
type Value[T any] struct {
	value   T
	present bool
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// OfPtr returns a Value holding *p, or an empty Value when p is nil.
func OfPtr[T any](p *T) Value[T] {
	if p == nil {
		return Value[T]{}
	}
	return Of(*p)
}

// Empty returns an empty Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// MustGet returns the held value and panics when the Value is empty.
func (v Value[T]) MustGet() T {
	if !v.present {
		panic("optional: MustGet on empty Value")
	}
	return v.value
}

// OrElse returns the held value, or fallback when empty.
func (v Value[T]) OrElse(fallback T) T {
	if !v.present {
		return fallback
	}
	return v.value
}

// OrElseGet returns the held value, or the result of supplier when empty.
// The supplier is only invoked for an empty Value.
func (v Value[T]) OrElseGet(supplier func() T) T {
	if !v.present {
		return supplier()
	}
	return v.value
}

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	if !v.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", v.value)
}
