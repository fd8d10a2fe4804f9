// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Run executes a computation under a fresh scope and returns only the
// pure result, discarding the scope.
//
// Each call mints its own scope, so running the same ST value twice runs
// two independent sessions: allocation steps inside the computation
// allocate per session, and nothing mutated in one run is observable in
// the other. Cells and arrays are bound to the minting scope; a handle
// that leaks out through a captured variable fails with
// [ErrScopeMismatch] when used under a later run.
func Run[A any](m ST[A]) (A, error) {
	s := &Scope{}
	return m(s)
}

// MustRun is like [Run] but panics on error.
// Intended for computations the caller knows cannot fail, such as
// in-range array pipelines.
func MustRun[A any](m ST[A]) A {
	a, err := Run(m)
	if err != nil {
		panic("st: MustRun: " + err.Error())
	}
	return a
}
