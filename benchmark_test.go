// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st_test

import (
	"testing"

	"code.hybscloud.com/st"
)

// BenchmarkRunPure measures the cost of escaping a pure computation.
func BenchmarkRunPure(b *testing.B) {
	comp := st.Return(42)
	for b.Loop() {
		_, _ = st.Run(comp)
	}
}

// BenchmarkBindChain measures allocation for Bind chain composition.
func BenchmarkBindChain(b *testing.B) {
	inc := func(x int) st.ST[int] {
		return st.Return(x + 1)
	}

	// Chain of 10 binds
	chain := st.Bind(st.Return(0), func(x int) st.ST[int] {
		return st.Bind(inc(x), func(x int) st.ST[int] {
			return st.Bind(inc(x), func(x int) st.ST[int] {
				return st.Bind(inc(x), func(x int) st.ST[int] {
					return st.Bind(inc(x), func(x int) st.ST[int] {
						return st.Bind(inc(x), func(x int) st.ST[int] {
							return st.Bind(inc(x), func(x int) st.ST[int] {
								return st.Bind(inc(x), func(x int) st.ST[int] {
									return st.Bind(inc(x), func(x int) st.ST[int] {
										return inc(x)
									})
								})
							})
						})
					})
				})
			})
		})
	})

	for b.Loop() {
		_, _ = st.Run(chain)
	}
}

// BenchmarkRefReadWrite measures a write-then-read cell round trip.
func BenchmarkRefReadWrite(b *testing.B) {
	comp := st.Bind(st.NewRef(0), func(r *st.Ref[int]) st.ST[int] {
		return st.Then(r.Write(1), r.Read())
	})

	for b.Loop() {
		_, _ = st.Run(comp)
	}
}

// BenchmarkArrUpdate measures fused read-combine-write slot updates.
func BenchmarkArrUpdate(b *testing.B) {
	add := func(x, y int) int { return x + y }
	comp := st.Bind(st.NewArr(64, 0), func(a *st.Arr[int]) st.ST[int] {
		return st.Then(a.Update(add, 32, 1), a.Read(32))
	})

	for b.Loop() {
		_, _ = st.Run(comp)
	}
}

// BenchmarkFreeze measures snapshot copying at several sizes.
func BenchmarkFreeze(b *testing.B) {
	comp := st.Bind(st.NewArr(1024, 0), func(a *st.Arr[int]) st.ST[st.Frozen[int]] {
		return a.Freeze()
	})

	for b.Loop() {
		_, _ = st.Run(comp)
	}
}

// BenchmarkAccumulate measures the fused allocate-fill-freeze pipeline.
func BenchmarkAccumulate(b *testing.B) {
	add := func(x, y int) int { return x + y }
	entries := make([]st.Entry[int], 256)
	for i := range entries {
		entries[i] = st.Entry[int]{Index: i % 16, Value: i}
	}

	for b.Loop() {
		_, _ = st.Accumulate(16, add, 0, entries)
	}
}
