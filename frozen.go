// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

import "iter"

// Frozen is a read-only ordered sequence produced by [Arr.Freeze] or
// [Accumulate]. It is a plain shareable value with no dependency on the
// scoping machinery: it may outlive the session that built it and be
// consumed by unrelated code.
//
// The zero value is an empty sequence.
type Frozen[A any] struct {
	elems []A
}

// Len returns the number of elements.
func (f Frozen[A]) Len() int { return len(f.elems) }

// At returns the element at index i.
// It panics if i is out of range, like indexing a slice.
func (f Frozen[A]) At(i int) A { return f.elems[i] }

// Slice returns the elements as a fresh slice.
// The returned slice is the caller's to mutate; it never aliases the
// snapshot's storage.
func (f Frozen[A]) Slice() []A {
	out := make([]A, len(f.elems))
	copy(out, f.elems)
	return out
}

// All returns an iterator over (index, element) pairs in order.
func (f Frozen[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i, v := range f.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over elements in order.
func (f Frozen[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, v := range f.elems {
			if !yield(v) {
				return
			}
		}
	}
}
