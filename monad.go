// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Monad operations for scoped computations.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate closure allocations.
//
// Effect ordering is left-to-right: in Bind(m, f) every mutation performed
// by m happens-before any mutation performed by the computation f returns.
// An error short-circuits the chain; later steps never execute.

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to get a new computation.
func Bind[A, B any](m ST[A], f func(A) ST[B]) ST[B] {
	return func(s *Scope) (B, error) {
		a, err := m(s)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(s)
	}
}

// Map applies a pure function to the result of a computation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure (does not touch scope state).
func Map[A, B any](m ST[A], f func(A) B) ST[B] {
	return func(s *Scope) (B, error) {
		a, err := m(s)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// Then sequences two computations, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m ST[A], n ST[B]) ST[B] {
	return func(s *Scope) (B, error) {
		if _, err := m(s); err != nil {
			var zero B
			return zero, err
		}
		return n(s)
	}
}
