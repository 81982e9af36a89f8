package rop

import (
	"time"

	"github.com/google/uuid"
)

// Nothing is the value of operations that produce no meaningful value.
type Nothing struct{}

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed result. A nil err is replaced by the normalized form
// of a nil signal so that a failed result always carries an error.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = Normalize(nil)
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom moves a failure to another value type, keeping its identity.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the result in Go's usual (value, error) form.
func (r Result[T]) Get() (T, error) {
	if !r.isSuccess {
		var zero T
		return zero, r.err
	}
	return r.result, nil
}

// Or returns the value on success and fallback otherwise.
func (r Result[T]) Or(fallback T) T {
	if !r.isSuccess {
		return fallback
	}
	return r.result
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
