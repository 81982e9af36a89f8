// Package promise provides a deferred value that later resolves to a value
// or rejects with a failure signal of any type.
//
// A Promise settles exactly once. Derived promises (Then, Map, Catch) run
// their handlers on a goroutine after the source settles, so deriving never
// blocks the caller; waiting happens at Wait or Await.
//
// There is no cancellation: a promise that never settles keeps every promise
// derived from it pending. The context passed to Await only limits how long
// the caller waits.
package promise
