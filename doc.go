// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package st provides scoped mutable-state computations in Go.
//
// The core type [ST] represents a computation that, given a scope, performs
// in-place mutations and produces a result. The escape operation [Run]
// executes a computation under a fresh scope and returns only the pure
// result. Algorithms can therefore use genuine mutation internally —
// cells, fixed-size arrays, in-place updates — while exposing nothing but
// plain, read-only, shareable values, making them referentially
// transparent building blocks for purely functional callers.
//
// # Scoping Model
//
// Every [Run] invocation mints one fresh [Scope]. Cells ([Ref]) and
// arrays ([Arr]) are created by computations during the invocation and
// record the minting scope as their owner; every operation on them
// verifies the match. When Run returns, the scope is discarded and
// everything bound to it becomes unreachable.
//
// Go cannot universally quantify a function over a scope type parameter,
// so the compile-time tag of the classic formulation is emulated with a
// runtime-checked opaque handle: [Scope] cannot be constructed or named
// by callers, and a cell or array smuggled across sessions fails with
// [ErrScopeMismatch] instead of silently aliasing state. The isolation
// guarantees this stands in for are covered by explicit tests rather
// than assumed from the type system.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return]: Lift a pure value into a computation
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Return(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//   - [Fail]: Lift an error into a computation
//
// Execution:
//
//   - [Run]: Execute under a fresh scope, returning (result, error)
//   - [MustRun]: Execute, panicking on error
//
// Effects compose left-to-right: in Bind(m, f) everything m mutates
// happens-before anything the continuation mutates, and the first error
// short-circuits all later steps.
//
// # Reference Cells
//
// [Ref] is one mutable slot:
//
//   - [NewRef]: Allocate a cell holding an initial value
//   - [Ref.Read]: Yield the current value
//   - [Ref.Write]: Replace the value, yielding the cell
//   - [Ref.Modify]: Replace the value with f(old), yielding the cell
//   - [Ref.Swap]: Exchange two cells' values; reads both before writing
//     either, so a self-swap is a no-op
//
// # Arrays and Snapshots
//
// [Arr] is a fixed-size mutable sequence:
//
//   - [NewArr]: Allocate size slots, each set to a default
//   - [Arr.Read], [Arr.Write]: Indexed access with bounds checking —
//     out-of-range indices fail with an error wrapping [ErrIndexRange],
//     never a panic and never silent wraparound
//   - [Arr.Update]: Read-combine-write one slot in a single step
//   - [Arr.Fill]: Apply Update per (index, value) entry, strictly in
//     sequence order; repeated indices fold through the combine function
//   - [Arr.Freeze]: Yield a [Frozen] snapshot — a full copy, isolated
//     from all later writes to the live array
//
// [Frozen] is the one value type meant to outlive its scope: an ordinary
// read-only ordered sequence ([Frozen.Len], [Frozen.At], [Frozen.Slice],
// [Frozen.All], [Frozen.Values]) with no dependency on the scoping
// machinery.
//
// # Accumulation
//
// [Accumulate] fuses the common allocate → fill → freeze → run pipeline
// for building an immutable array from an association sequence:
//
//	sums, err := st.Accumulate(3, func(x, y int) int { return x + y },
//		0, []st.Entry[int]{{0, 3}, {0, 4}, {1, 5}})
//	// sums.Slice() == []int{7, 5, 0}
//
// # Fixpoint
//
// [Fix] builds self-referential results through an explicit two-phase
// construction: the body receives a thunk for its own final result, valid
// only once the computation has completed. Forcing the thunk early fails
// with [ErrUnresolvedFix] rather than recursing without bound.
//
// # Composition Helpers
//
// [Sequence], [Traverse], and [Fold] compose slices of computations
// left-to-right with error short-circuit. They are plain functions over
// [ST] rather than a reusable algebra abstraction.
//
// # Errors
//
// The library raises [ErrIndexRange], [ErrNegativeSize],
// [ErrScopeMismatch], and [ErrUnresolvedFix]; match them with errors.Is.
// Errors returned by user functions propagate to the caller of [Run]
// unswallowed — nothing is caught or retried.
//
// # Concurrency
//
// A computation is one linear chain of state transitions; no step
// suspends, blocks, or yields, and no operation is safe for concurrent
// use on shared cells or arrays. Frozen snapshots, being plain immutable
// data, may be shared freely.
//
// # Example
//
//	// Histogram building: mutate freely inside, publish plain data.
//	counts, err := st.Run(st.Bind(st.NewArr(4, 0), func(arr *st.Arr[int]) st.ST[st.Frozen[int]] {
//		samples := []int{0, 1, 1, 3, 1}
//		add := func(n, one int) int { return n + one }
//		fill := st.Fold(samples, arr, func(a *st.Arr[int], i int) st.ST[*st.Arr[int]] {
//			return a.Update(add, i, 1)
//		})
//		return st.Bind(fill, func(a *st.Arr[int]) st.ST[st.Frozen[int]] {
//			return a.Freeze()
//		})
//	}))
//	// counts.Slice() == []int{1, 3, 0, 1}
package st
