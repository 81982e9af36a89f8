// Package optional is the "value or absent" side of the safe-call helpers:
// rop.Unwrap turns a failed Result into None and a successful one into Some.
//
// None is distinct from every present value, zero values included:
// Some(""), Some(0) and Some[*T](nil) are all present.
package optional

import "errors"

// Value holds a T or nothing. The zero Value is None.
type Value[T any] struct {
	ok  bool
	val T
}

// None creates an empty optional value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some creates a non-empty optional value.
func Some[T any](val T) Value[T] {
	return Value[T]{
		ok:  true,
		val: val,
	}
}

// Empty returns whether the [Value] is empty.
func (v Value[T]) Empty() bool {
	return !v.ok
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.ok
}

// UnwrapOr returns the value, or def when empty.
func (v Value[T]) UnwrapOr(def T) T {
	if !v.ok {
		return def
	}
	return v.val
}

// ErrEmpty is the error passed to panic by [Value.Unwrap] when the value is empty.
var ErrEmpty = errors.New("optional: empty value")

// Unwrap panics if [Value] is empty, otherwise returns the underlying value.
func (v Value[T]) Unwrap() T {
	if !v.ok {
		panic(ErrEmpty)
	}
	return v.val
}
