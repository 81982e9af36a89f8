package promise

import (
	"context"
	"errors"
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// ErrNil is the rejection reason of a promise derived from a nil promise.
var ErrNil = errors.New("promise: nil promise")

// Settlement is the final state of a Promise.
type Settlement[T any] struct {
	Value    T
	Reason   any
	Rejected bool
}

type Promise[T any] struct {
	done    chan struct{}
	once    sync.Once
	settled Settlement[T]
}

func pending[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// New runs executor synchronously. The promise settles on the first call to
// resolve or reject; later calls are ignored. A panic in executor rejects
// the promise with the recovered value.
func New[T any](executor func(resolve func(T), reject func(any))) *Promise[T] {
	p := pending[T]()

	var catcher panics.Catcher
	catcher.Try(func() {
		executor(p.resolve, p.reject)
	})
	if r := catcher.Recovered(); r != nil {
		p.reject(r.Value)
	}

	return p
}

// Go runs fn on a new goroutine. A non-nil error or a panic rejects.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := pending[T]()

	go func() {
		var (
			catcher panics.Catcher
			value   T
			err     error
		)
		catcher.Try(func() {
			value, err = fn()
		})

		if r := catcher.Recovered(); r != nil {
			p.reject(r.Value)
			return
		}
		if err != nil {
			p.reject(err)
			return
		}
		p.resolve(value)
	}()

	return p
}

func Resolve[T any](value T) *Promise[T] {
	p := pending[T]()
	p.resolve(value)
	return p
}

func Reject[T any](reason any) *Promise[T] {
	p := pending[T]()
	p.reject(reason)
	return p
}

func (p *Promise[T]) resolve(value T) {
	p.once.Do(func() {
		p.settled = Settlement[T]{Value: value}
		close(p.done)
	})
}

func (p *Promise[T]) reject(reason any) {
	p.once.Do(func() {
		p.settled = Settlement[T]{Reason: reason, Rejected: true}
		close(p.done)
	})
}

// Done is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the promise settles.
func (p *Promise[T]) Wait() Settlement[T] {
	<-p.done
	return p.settled
}

// Await is Wait bounded by ctx. Giving up on ctx does not affect the
// promise, which may still settle later.
func (p *Promise[T]) Await(ctx context.Context) (Settlement[T], error) {
	select {
	case <-p.done:
		return p.settled, nil
	case <-ctx.Done():
		return Settlement[T]{}, ctx.Err()
	}
}

// Then derives a promise from p's settlement. A nil onRejected propagates
// the rejection. A panicking handler rejects the derived promise. A nil p
// counts as a promise rejected with ErrNil.
func Then[T, U any](p *Promise[T], onFulfilled func(T) U, onRejected func(any) U) *Promise[U] {
	if p == nil {
		p = Reject[T](ErrNil)
	}
	next := pending[U]()

	go func() {
		s := p.Wait()

		if s.Rejected && onRejected == nil {
			next.reject(s.Reason)
			return
		}

		var (
			catcher panics.Catcher
			value   U
		)
		catcher.Try(func() {
			if s.Rejected {
				value = onRejected(s.Reason)
			} else {
				value = onFulfilled(s.Value)
			}
		})

		if r := catcher.Recovered(); r != nil {
			next.reject(r.Value)
			return
		}
		next.resolve(value)
	}()

	return next
}

// Map transforms the resolution value; rejections pass through.
func Map[T, U any](p *Promise[T], fn func(T) U) *Promise[U] {
	return Then(p, fn, nil)
}

// Catch turns a rejection into a resolution value.
func Catch[T any](p *Promise[T], fn func(reason any) T) *Promise[T] {
	return Then(p, func(v T) T { return v }, fn)
}
