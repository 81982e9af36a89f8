package safe

import (
	"github.com/sourcegraph/conc/panics"

	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/promise"
)

// Fallback substitutes for the error of a failed operation. Build one with
// Default or Handle; the zero Fallback substitutes T's zero value.
type Fallback[T any] struct {
	value   T
	handler func(err error) T
}

// Default substitutes value for any failure.
func Default[T any](value T) Fallback[T] {
	return Fallback[T]{value: value}
}

// Handle substitutes the return value of handler, which receives the
// normalized error. handler runs unprotected: if it panics, so does the caller.
func Handle[T any](handler func(err error) T) Fallback[T] {
	return Fallback[T]{handler: handler}
}

func (f Fallback[T]) apply(err error) T {
	if f.handler != nil {
		return f.handler(err)
	}
	return f.value
}

// Call runs op and recovers any panic as a failed result. The success value
// is returned as is.
func Call[T any](op func() T) rop.Result[T] {
	var (
		catcher panics.Catcher
		value   T
	)
	catcher.Try(func() {
		value = op()
	})

	if r := catcher.Recovered(); r != nil {
		return rop.Fail[T](rop.Normalize(r.Value))
	}
	return rop.Success(value)
}

// Try is Call for operations that also report failure by returning an error.
// Returned errors are kept as they are.
//
// A typed nil error, such as a (*MyError)(nil) returned as error, counts as
// success even though err != nil holds for it.
func Try[T any](op func() (T, error)) rop.Result[T] {
	var (
		catcher panics.Catcher
		value   T
		err     error
	)
	catcher.Try(func() {
		value, err = op()
	})

	if r := catcher.Recovered(); r != nil {
		return rop.Fail[T](rop.Normalize(r.Value))
	}
	if !rop.IsNil(err) {
		return rop.Fail[T](err)
	}
	return rop.Success(value)
}

// Do runs an operation that produces no value.
func Do(op func()) rop.Result[rop.Nothing] {
	return Call(func() rop.Nothing {
		op()
		return rop.Nothing{}
	})
}

func CallOr[T any](op func() T, fallback Fallback[T]) T {
	return or(Call(op), fallback)
}

func TryOr[T any](op func() (T, error), fallback Fallback[T]) T {
	return or(Try(op), fallback)
}

func or[T any](r rop.Result[T], fallback Fallback[T]) T {
	if r.IsFailure() {
		return fallback.apply(r.Err())
	}
	return r.Result()
}

// Async runs op, which starts some asynchronous work, and returns a promise
// that always resolves: to the work's value, or to a failed result holding
// the normalized rejection. Async itself never waits.
//
// A panic raised by op before it hands back a promise resolves the returned
// promise to a failure right away.
func Async[T any](op func() *promise.Promise[T]) *promise.Promise[rop.Result[T]] {
	started := Call(op)
	if started.IsFailure() {
		return promise.Resolve(rop.Fail[T](started.Err()))
	}

	p := started.Result()
	if p == nil {
		return promise.Resolve(rop.Fail[T](rop.ErrNilPromise))
	}

	return promise.Then(p,
		func(value T) rop.Result[T] {
			return rop.Success(value)
		},
		func(reason any) rop.Result[T] {
			return rop.Fail[T](rop.Normalize(reason))
		})
}

// AsyncOr is Async with a fallback. If a Handle fallback panics, the
// returned promise rejects with the panic value.
func AsyncOr[T any](op func() *promise.Promise[T], fallback Fallback[T]) *promise.Promise[T] {
	return promise.Map(Async(op), func(r rop.Result[T]) T {
		return or(r, fallback)
	})
}
