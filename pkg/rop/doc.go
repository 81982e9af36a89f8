// Package rop holds the value types shared by the safe-call helpers:
// Result[T] (a value or a normalized error), Normalize, the tagged error
// Variant[K] and the Unwrap projections to optional.Value.
package rop
