package rop

import (
	"errors"
	"fmt"
)

// Variant is an error carrying a discriminant, so callers can branch on the
// kind of failure without declaring an error type per kind.
//
//	name, err := fetchName().Get()
//	if tag, ok := rop.TagOf[string](err); ok && tag == "network" {
//		...
//	}
type Variant[K comparable] struct {
	Tag   K
	cause any
}

// NewVariant returns a new tagged error. A nil cause means none.
func NewVariant[K comparable](tag K, cause any) *Variant[K] {
	return &Variant[K]{Tag: tag, cause: cause}
}

func (e *Variant[K]) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%v", e.Tag)
	}
	return fmt.Sprintf("%v: %v", e.Tag, e.cause)
}

func (e *Variant[K]) Cause() any {
	return e.cause
}

func (e *Variant[K]) Unwrap() error {
	err, _ := e.cause.(error)
	return err
}

// TagOf reports the discriminant of the first *Variant[K] in err's chain.
// Untagged errors yield false.
func TagOf[K comparable](err error) (K, bool) {
	var v *Variant[K]
	if errors.As(err, &v) {
		return v.Tag, true
	}
	var zero K
	return zero, false
}

func HasTag[K comparable](err error, tag K) bool {
	got, ok := TagOf[K](err)
	return ok && got == tag
}
