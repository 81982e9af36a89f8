// Package safe runs operations that may panic or return an error and hands
// the outcome back as a value, so nothing escapes as a panic.
//
// Highlights:
// - Call/Try/Do: run func() T, func() (T, error) or func() and get a rop.Result
// - CallOr/TryOr: same, substituting a Fallback for any failure
// - Async/AsyncOr: the same contract for work that returns a promise
//
// Failure signals are normalized with rop.Normalize: an error is kept as is,
// any other panic value becomes a *rop.SignalError whose cause is that value.
// A Handle fallback is not protected; its panic reaches the caller.
package safe
