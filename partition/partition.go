// SPDX-License-Identifier: MIT

package partition

import (
	"github.com/katalvlaran/lvdp/table"
)

// MinMax partitions s into at most k contiguous ranges minimising the largest
// range-sum and returns the ranges left to right.
//
// It is Solve(s, k, nil).Ranges.
//
// Example:
//
//	ranges, err := MinMax([]int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 3)
//	// [[1 1 1] [1 1 1] [1 1 1]]
func MinMax(s []int, k int) ([][]int, error) {
	res, err := Solve(s, k, nil)
	if err != nil {
		return nil, err
	}

	return res.Ranges, nil
}

// Solve computes an optimal min-max partition of s into at most k ranges.
//
// Algorithm Outline:
//  1. Let N = len(s). Allocate (N+1)x(K+1) tables M (cost) and D (divider).
//  2. Boundaries:
//     M[1][c] = s1            for c = 1..K   (one element, any range count)
//     M[r][1] = s1 + … + sr   for r = 1..N   (one range holds the prefix)
//  3. For r = 2..N, for c = 2..K:
//     cost(i) = max(M[i][c-1], s(i+1) + … + sr)   for i = 1..r
//     M[r][c] = min cost(i), D[r][c] = first i reaching it.
//  4. Traceback from (N, K): i = D[r][c], emit s(i+1..r), r = i, c--,
//     until c == 0 or r == 0. Boundary cells hold D = 0, so the last
//     emitted range always starts at s1.
//  5. Reverse the collected ranges into left-to-right order.
//
// When k >= len(s) the optimum is one range per element; that answer is
// returned directly with Cost = max(s).
//
// Complexity:
//
//	Time   = O(K·N²) (PrefixSums) or O(K·N³) (Rescan)
//	Memory = O(K·N)
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrEmptySequence - len(s) == 0.
//   - ErrBadRangeCount - k < 1.
//   - ErrBadOption     - opts.RangeSum is not a known mode.
//   - ErrNegativeValue - some s[i] < 0.
//   - ErrSumOverflow   - sum(s) does not fit in an int.
func Solve(s []int, k int, opts *Options) (Result, error) {
	// Apply options or defaults
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(s, k, o); err != nil {
		return Result{}, err
	}

	n := len(s)
	if k >= n {
		return singletons(s), nil
	}

	// prefix[r] = s1 + … + sr, prefix[0] = 0.
	prefix := make([]int, n+1)
	for r, v := range s {
		prefix[r+1] = prefix[r] + v
	}
	// rangeSum(i, r) = s(i+1) + … + sr, 1-based and inclusive
	rangeSum := func(i, r int) int { return prefix[r] - prefix[i] }
	if o.RangeSum == Rescan {
		rangeSum = func(i, r int) int {
			sum := 0
			for _, v := range s[i:r] {
				sum += v
			}

			return sum
		}
	}

	// Prepare DP storage
	cost, err := table.New[int](n+1, k+1)
	if err != nil {
		return Result{}, err
	}
	divider, err := table.New[int](n+1, k+1)
	if err != nil {
		return Result{}, err
	}

	// Boundary conditions. Row 0 and column 0 are never read.
	// Column 1 owns M[1][1]; row 1 is filled from c = 2 on.
	for r := 1; r <= n; r++ {
		if err = cost.Set(r, 1, prefix[r]); err != nil { // one range: the whole prefix
			return Result{}, err
		}
	}
	for c := 2; c <= k; c++ {
		if err = cost.Set(1, c, s[0]); err != nil { // one element: its own value
			return Result{}, err
		}
	}

	// Fill DP, row-major: every read is M[i][c-1] with i <= r.
	for r := 2; r <= n; r++ {
		costRow, divRow := cost.Row(r), divider.Row(r)
		for c := 2; c <= k; c++ {
			// try every position i of the last divider
			best, bestI := 0, 0
			for i := 1; i <= r; i++ {
				// left part in c-1 ranges vs. the final range s(i+1..r)
				v := max(cost.Row(i)[c-1], rangeSum(i, r))
				if bestI == 0 || v < best { // strict: first minimum wins
					best, bestI = v, i
				}
			}
			costRow[c], divRow[c] = best, bestI
		}
	}

	// Backtrack dividers from (N, K), right to left.
	bounds := make([]Range, 0, k)
	for r, c := n, k; c > 0 && r > 0; c-- {
		i, err := divider.At(r, c) // boundary cells hold 0: range starts at s1
		if err != nil {
			return Result{}, err
		}
		bounds = append(bounds, Range{Start: i, End: r})
		r = i
	}
	// reverse bounds in-place
	for l, h := 0, len(bounds)-1; l < h; l, h = l+1, h-1 {
		bounds[l], bounds[h] = bounds[h], bounds[l]
	}

	// Extract final cost
	top, err := cost.At(n, k)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Ranges: materialize(s, bounds),
		Bounds: bounds,
		Cost:   top,
	}, nil
}

// singletons returns one range per element; the optimum whenever k >= len(s).
func singletons(s []int) Result {
	bounds := make([]Range, len(s))
	top := 0
	for i, v := range s {
		bounds[i] = Range{Start: i, End: i + 1}
		top = max(top, v)
	}

	return Result{Ranges: materialize(s, bounds), Bounds: bounds, Cost: top}
}

// materialize copies the values covered by each bound.
func materialize(s []int, bounds []Range) [][]int {
	out := make([][]int, len(bounds))
	for j, b := range bounds {
		out[j] = append([]int(nil), s[b.Start:b.End]...)
	}

	return out
}
