// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Scope identifies one mutable-state session. A fresh scope is minted by
// [Run] for each invocation and is discarded when the invocation returns;
// every [Ref] and [Arr] records the scope that created it, and every
// operation on them verifies the match.
//
// Scope has no exported fields or methods and cannot be constructed outside
// this package. Callers only ever hold one transitively, through an [ST]
// value being executed.
type Scope struct {
	// allocs counts cells and arrays created during the session.
	// It also keeps Scope non-zero-sized: zero-size allocations share a
	// single address, which would collapse the identity of two scopes.
	allocs int
}

// ST represents a scoped mutable-state computation.
// ST[A] transitions the state owned by a scope and produces a value of
// type A, or an error.
//
// The function receives the scope of the running session. Mutating state
// through it is only observable by later steps of the same session; the
// session's caller sees nothing but the final (A, error).
type ST[A any] func(s *Scope) (A, error)

// Return lifts a pure value into a computation.
// The resulting computation has no effect and yields the value.
func Return[A any](a A) ST[A] {
	return func(s *Scope) (A, error) {
		return a, nil
	}
}

// Fail lifts an error into a computation.
// The resulting computation has no effect and fails with err.
func Fail[A any](err error) ST[A] {
	return func(s *Scope) (A, error) {
		var zero A
		return zero, err
	}
}
