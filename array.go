// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Arr is a fixed-size mutable sequence valid only within the scope that
// created it. The size is set at creation and never changes; indexed
// access outside [0, size) fails with an error wrapping [ErrIndexRange]
// rather than panicking.
type Arr[A any] struct {
	owner *Scope
	slots []A
}

// Entry is one (index, value) association consumed by [Arr.Fill] and
// [Accumulate].
type Entry[A any] struct {
	Index int
	Value A
}

// NewArr creates a computation that allocates an array of size slots,
// each initialized to def. A negative size fails with [ErrNegativeSize].
func NewArr[A any](size int, def A) ST[*Arr[A]] {
	return func(s *Scope) (*Arr[A], error) {
		if size < 0 {
			return nil, ErrNegativeSize
		}
		slots := make([]A, size)
		for i := range slots {
			slots[i] = def
		}
		s.allocs++
		return &Arr[A]{owner: s, slots: slots}, nil
	}
}

// Len returns the fixed size of the array.
func (a *Arr[A]) Len() int { return len(a.slots) }

// Read yields the value at index. No effect.
func (a *Arr[A]) Read(index int) ST[A] {
	return func(s *Scope) (A, error) {
		var zero A
		if a.owner != s {
			return zero, ErrScopeMismatch
		}
		if index < 0 || index >= len(a.slots) {
			return zero, indexError(index, len(a.slots))
		}
		return a.slots[index], nil
	}
}

// Write replaces the slot at index with v.
// The computation yields the array, so further operations can be chained.
func (a *Arr[A]) Write(index int, v A) ST[*Arr[A]] {
	return func(s *Scope) (*Arr[A], error) {
		if a.owner != s {
			return nil, ErrScopeMismatch
		}
		if index < 0 || index >= len(a.slots) {
			return nil, indexError(index, len(a.slots))
		}
		a.slots[index] = v
		return a, nil
	}
}

// Update replaces the slot at index with combine(current, v).
// Equivalent to a Read followed by a Write, fused into one step.
func (a *Arr[A]) Update(combine func(A, A) A, index int, v A) ST[*Arr[A]] {
	return func(s *Scope) (*Arr[A], error) {
		if a.owner != s {
			return nil, ErrScopeMismatch
		}
		if index < 0 || index >= len(a.slots) {
			return nil, indexError(index, len(a.slots))
		}
		a.slots[index] = combine(a.slots[index], v)
		return a, nil
	}
}

// Fill applies Update for every entry, strictly in sequence order.
// Multiple entries for the same index are folded through combine in
// order; entries for different indices do not interact. The first
// out-of-range entry fails the computation.
func (a *Arr[A]) Fill(combine func(A, A) A, entries []Entry[A]) ST[*Arr[A]] {
	return func(s *Scope) (*Arr[A], error) {
		if a.owner != s {
			return nil, ErrScopeMismatch
		}
		for _, e := range entries {
			if e.Index < 0 || e.Index >= len(a.slots) {
				return nil, indexError(e.Index, len(a.slots))
			}
			a.slots[e.Index] = combine(a.slots[e.Index], e.Value)
		}
		return a, nil
	}
}

// Freeze yields an immutable snapshot of the array.
// The snapshot is a full copy taken at the instant of freezing: writes
// performed on the array afterwards are never visible through it. This
// isolation is the load-bearing correctness property of the package; the
// snapshot must never alias the live backing storage.
func (a *Arr[A]) Freeze() ST[Frozen[A]] {
	return func(s *Scope) (Frozen[A], error) {
		if a.owner != s {
			return Frozen[A]{}, ErrScopeMismatch
		}
		elems := make([]A, len(a.slots))
		copy(elems, a.slots)
		return Frozen[A]{elems: elems}, nil
	}
}
