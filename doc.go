// SPDX-License-Identifier: MIT

// Package lvdp is a small collection of exact dynamic-programming solvers
// over integer sequences, built around one pattern: fill a dense table of
// optimal sub-solutions, record the winning choice per cell, then replay
// those choices backwards to reconstruct a concrete answer.
//
// 🚀 What is inside?
//
//	• partition/ - min-max K-partition: split an ordered sequence into at
//	  most K contiguous ranges minimising the heaviest range
//	• subsetsum/ - subset-sum: find a sub-collection summing exactly to K,
//	  or a decision-only answer in O(K) memory
//	• table/     - the dense row-major grid both solvers tabulate into
//
// ✨ Guarantees
//
//   - Deterministic – ties resolve to the smallest index, every time
//   - Pure – no shared state, every call owns its tables; safe to call
//     from many goroutines
//   - Explicit errors – invalid input fails before any table is built;
//     "no subset" is a result, not an error
//
// Quick example:
//
//	ranges, _ := partition.MinMax([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3)
//	// [[1 2 3 4 5] [6 7] [8 9]]
//
//	values, ok, _ := subsetsum.Find([]int{1, 2, 4, 8}, 11)
//	// [1 2 8] true
//
// The lvdp command (cmd/lvdp) wraps both solvers for shell use.
//
//	go install github.com/katalvlaran/lvdp/cmd/lvdp@latest
package lvdp
