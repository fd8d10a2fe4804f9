// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Ref is a single mutable cell valid only within the scope that created it.
// All access goes through computations; the cell itself carries no
// synchronization because a session is one linear chain of transitions.
type Ref[A any] struct {
	owner *Scope
	value A
}

// NewRef creates a computation that allocates one cell holding initial.
// The cell is owned by the running scope; using it under any other scope
// fails with [ErrScopeMismatch].
func NewRef[A any](initial A) ST[*Ref[A]] {
	return func(s *Scope) (*Ref[A], error) {
		s.allocs++
		return &Ref[A]{owner: s, value: initial}, nil
	}
}

// Read yields the current value of the cell. No effect.
func (r *Ref[A]) Read() ST[A] {
	return func(s *Scope) (A, error) {
		if r.owner != s {
			var zero A
			return zero, ErrScopeMismatch
		}
		return r.value, nil
	}
}

// Write unconditionally replaces the stored value with v.
// The computation yields the cell, so further operations can be chained.
func (r *Ref[A]) Write(v A) ST[*Ref[A]] {
	return func(s *Scope) (*Ref[A], error) {
		if r.owner != s {
			return nil, ErrScopeMismatch
		}
		r.value = v
		return r, nil
	}
}

// Modify replaces the stored value with f applied to the old value.
// The computation yields the cell.
func (r *Ref[A]) Modify(f func(A) A) ST[*Ref[A]] {
	return func(s *Scope) (*Ref[A], error) {
		if r.owner != s {
			return nil, ErrScopeMismatch
		}
		r.value = f(r.value)
		return r, nil
	}
}

// Swap exchanges the values of r and other. Both values are read before
// either cell is written, so swapping a cell with itself is a no-op.
func (r *Ref[A]) Swap(other *Ref[A]) ST[struct{}] {
	return func(s *Scope) (struct{}, error) {
		if r.owner != s || other.owner != s {
			return struct{}{}, ErrScopeMismatch
		}
		x, y := r.value, other.value
		r.value, other.value = y, x
		return struct{}{}, nil
	}
}
