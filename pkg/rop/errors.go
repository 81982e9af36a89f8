package rop

import (
	"errors"
	"fmt"
)

// ErrNilPromise is the failure reported when an asynchronous operation
// hands back no promise at all.
var ErrNilPromise = errors.New("rop: operation returned a nil promise")

// SignalError is the normalized form of a failure signal that was not
// already an error, e.g. panic("boom").
type SignalError struct {
	cause any
}

func (e *SignalError) Error() string {
	if e.cause == nil {
		return "rop: failed with nil signal"
	}
	return fmt.Sprintf("rop: %v", e.cause)
}

// Cause returns the original signal.
func (e *SignalError) Cause() any {
	return e.cause
}

// Normalize turns any failure signal into an error. Errors are returned
// unchanged; every other value gets a fresh *SignalError around it.
func Normalize(signal any) error {
	if err, ok := signal.(error); ok && !IsNil(err) {
		return err
	}
	return &SignalError{cause: signal}
}

// CauseOf returns the signal attached to err by Normalize or NewVariant.
func CauseOf(err error) (any, bool) {
	switch e := err.(type) {
	case *SignalError:
		return e.cause, true
	case interface{ Cause() any }:
		c := e.Cause()
		return c, c != nil
	}
	return nil, false
}
