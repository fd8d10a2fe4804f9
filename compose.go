// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Composition helpers over slices of computations.
// These are ordinary functions rather than a reusable algebra instance;
// all of them run left-to-right and short-circuit on the first error.

// Sequence runs the computations in order and collects their results.
func Sequence[A any](ms []ST[A]) ST[[]A] {
	return func(s *Scope) ([]A, error) {
		out := make([]A, len(ms))
		for i, m := range ms {
			a, err := m(s)
			if err != nil {
				return nil, err
			}
			out[i] = a
		}
		return out, nil
	}
}

// Traverse maps each element through f and runs the resulting
// computations in order, collecting their results.
// Equivalent to Sequence over the mapped slice without building it.
func Traverse[A, B any](xs []A, f func(A) ST[B]) ST[[]B] {
	return func(s *Scope) ([]B, error) {
		out := make([]B, len(xs))
		for i, x := range xs {
			b, err := f(x)(s)
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	}
}

// Fold threads an accumulator through a computation per element,
// left-to-right.
func Fold[A, B any](xs []A, init B, step func(B, A) ST[B]) ST[B] {
	return func(s *Scope) (B, error) {
		acc := init
		for _, x := range xs {
			next, err := step(acc, x)(s)
			if err != nil {
				var zero B
				return zero, err
			}
			acc = next
		}
		return acc, nil
	}
}
