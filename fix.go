// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// unresolvedFix is the internal panic value raised when a fixpoint result
// is forced before it exists. Fix translates it to ErrUnresolvedFix; any
// other panic passes through untouched.
type unresolvedFix struct{}

// Fix builds a computation whose result may be referenced lazily within
// its own construction, for self-referential structures.
//
// Go has no implicit laziness, so Fix uses an explicit two-phase form:
// the body receives self, a thunk for the final result, and returns the
// computation that produces that result. self must only be invoked after
// the computation has completed — in practice, from closures stored
// inside the result and forced later. Invoking self while the body is
// still running fails the computation with [ErrUnresolvedFix] instead of
// recursing without bound.
//
//	type node struct {
//		label string
//		next  func() node
//	}
//	comp := st.Fix(func(self func() node) st.ST[node] {
//		return st.Return(node{label: "loop", next: self})
//	})
func Fix[A any](f func(self func() A) ST[A]) ST[A] {
	return func(s *Scope) (result A, err error) {
		var (
			value    A
			resolved bool
		)
		self := func() A {
			if !resolved {
				panic(unresolvedFix{})
			}
			return value
		}
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(unresolvedFix); !ok {
					panic(r)
				}
				var zero A
				result, err = zero, ErrUnresolvedFix
			}
		}()
		result, err = f(self)(s)
		if err != nil {
			return result, err
		}
		value, resolved = result, true
		return result, nil
	}
}
