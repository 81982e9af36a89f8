package rop

import (
	"github.com/ib-77/ropsafe/pkg/rop/optional"
	"github.com/ib-77/ropsafe/pkg/rop/promise"
)

// Unwrap drops the error of a failed result, leaving only "value or absent".
func Unwrap[T any](r Result[T]) optional.Value[T] {
	if r.IsFailure() {
		return optional.None[T]()
	}
	return optional.Some(r.Result())
}

// UnwrapValue is Unwrap for a (value, error) pair.
func UnwrapValue[T any](value T, err error) optional.Value[T] {
	if !IsNil(err) {
		return optional.None[T]()
	}
	return optional.Some(value)
}

// UnwrapAsync applies Unwrap to the eventual result of p. A rejection of p
// itself is passed on untouched.
func UnwrapAsync[T any](p *promise.Promise[Result[T]]) *promise.Promise[optional.Value[T]] {
	return promise.Map(p, Unwrap[T])
}
