// SPDX-License-Identifier: MIT

// Package partition splits an ordered sequence of non-negative integers into
// at most K contiguous ranges so that the largest range-sum is as small as
// possible (the "linear partition" problem).
//
// 🚀 What is min-max partitioning?
//
//	Given S = s1..sN and K, place at most K-1 dividers between neighbours so
//	that the heaviest resulting range is minimal. Typical uses:
//	  • spreading a book collection over K shelves of equal length
//	  • splitting an ordered job list across K sequential workers
//	  • chunking an ordered key space into K balanced shards
//
// ✨ Key features:
//   - exact tabulation: M[n,k] is the optimal cost of s1..sn in k ranges
//   - deterministic traceback: ties go to the leftmost divider
//   - prefix-sum range sums by default, O(K·N²) time
//   - Rescan mode recomputes every range sum, O(K·N³), same output
//   - Bounds reports each range as half-open offsets into S
//
// ⚙️ Usage:
//
//	ranges, err := partition.MinMax([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3)
//	// ranges == [[1 2 3 4 5] [6 7] [8 9]]
//
//	res, err := partition.Solve(books, shelves, &partition.Options{RangeSum: partition.Rescan})
//	fmt.Println(res.Cost, res.Bounds)
//
// Performance:
//
//   - Time:   O(K·N²) (PrefixSums) or O(K·N³) (Rescan)
//   - Memory: O(K·N) for the cost and divider tables
//
// When K ≥ N every element gets its own range and no table is built.
package partition
