// SPDX-License-Identifier: MIT

package subsetsum

import (
	"fmt"

	"github.com/katalvlaran/lvdp/table"
)

// Find returns a sub-collection of s summing to k.
// ok is false when no such sub-collection exists; err is non-nil only for
// invalid input.
func Find(s []int, k int) (values []int, ok bool, err error) {
	res, err := Solve(s, k)
	if err != nil {
		return nil, false, err
	}

	return res.Values, res.Found, nil
}

// Solve tabulates subset-sum feasibility for s and target k and traces one
// witness back through the decision table.
//
// Table layout (rows = prefix length, columns = target):
//
//	      0 1 2 3 … K
//	  {}  T F F F … F
//	  s1  T . . . … .
//	  …   T . . . … .
//	  sN  T . . . … .
//
// Recurrence for n, c >= 1:
//
//	M[n][c] = M[n-1][c] || (c >= sn && M[n-1][c-sn])
//	D[n][c] = sn when the second term holds, else 0
//
// Traceback walks n = N..1 with c = K, taking D[n][c] whenever it is
// positive and lowering c by it; c reaches 0 at row 0.
//
// A target larger than sum(s) is answered as not found without allocating.
// Elements larger than k never fit and are skipped by the recurrence.
func Solve(s []int, k int) (Result, error) {
	// Stage 1 (Validate): domain checks and the capped element total.
	total, err := validate(s, k)
	if err != nil {
		return Result{}, err
	}
	if k > total {
		return Result{}, nil
	}
	if k == 0 {
		return Result{Found: true, Values: []int{}, Indices: []int{}}, nil
	}

	// Stage 2 (Prepare): feasibility table M and decision table D.
	n := len(s)
	feasible, err := table.New[bool](n+1, k+1)
	if err != nil {
		return Result{}, err
	}
	taken, err := table.New[int](n+1, k+1)
	if err != nil {
		return Result{}, err
	}

	// Boundaries: column 0 reachable by taking nothing; row 0 stays false.
	for r := 0; r <= n; r++ {
		if err = feasible.Set(r, 0, true); err != nil {
			return Result{}, err
		}
	}

	// Stage 3 (Execute): fill row by row, each row reads only the previous one.
	for r := 1; r <= n; r++ {
		v := s[r-1]
		prev, cur, take := feasible.Row(r-1), feasible.Row(r), taken.Row(r)
		for c := 1; c <= k; c++ {
			if c >= v && prev[c-v] {
				// sn fits and the rest is reachable without it: take sn
				cur[c], take[c] = true, v
			} else {
				// carry forward without sn
				cur[c] = prev[c]
			}
		}
	}

	found, err := feasible.At(n, k)
	if err != nil || !found {
		return Result{}, err
	}

	// Stage 4 (Finalize): replay decisions from (N, K) back to row 0.
	res := Result{Found: true, Values: []int{}, Indices: []int{}}
	for r, c := n, k; r >= 1; r-- {
		v, err := taken.At(r, c)
		if err != nil {
			return Result{}, err
		}
		if v > 0 {
			res.Values = append(res.Values, v)
			res.Indices = append(res.Indices, r-1)
			c -= v // remaining target
		}
	}
	// collected back to front, return in input order
	reverse(res.Values)
	reverse(res.Indices)

	return res, nil
}

// validate checks the non-negative domain and returns min(sum(s), k).
// The running total is capped at k and never overflows.
func validate(s []int, k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: %w: k=%d", ErrInvalidArgument, ErrNegativeTarget, k)
	}
	total := 0
	for i, v := range s {
		if v < 0 {
			return 0, fmt.Errorf("%w: %w: s[%d]=%d", ErrInvalidArgument, ErrNegativeValue, i, v)
		}
		if total < k {
			total += min(v, k-total)
		}
	}

	return total, nil
}

func reverse(a []int) {
	for l, h := 0, len(a)-1; l < h; l, h = l+1, h-1 {
		a[l], a[h] = a[h], a[l]
	}
}
