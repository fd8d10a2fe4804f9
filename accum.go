// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

// Accumulate folds an association sequence into a fresh array and
// returns it as plain data: allocate, fill, freeze, all inside one [Run]
// call, with no manual sequencing required by the caller.
//
// Every slot starts at def; each (index, value) entry is folded into its
// slot via combine, in sequence order. Out-of-range entries and negative
// sizes fail with the corresponding array errors.
//
//	hist, err := st.Accumulate(3, func(n, one int) int { return n + one },
//		0, []st.Entry[int]{{0, 1}, {2, 1}, {0, 1}})
//	// hist.Slice() == []int{2, 0, 1}
func Accumulate[A any](size int, combine func(A, A) A, def A, entries []Entry[A]) (Frozen[A], error) {
	return Run(Bind(NewArr(size, def), func(arr *Arr[A]) ST[Frozen[A]] {
		return Then(arr.Fill(combine, entries), arr.Freeze())
	}))
}
