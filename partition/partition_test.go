// SPDX-License-Identifier: MIT

package partition_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/lvdp/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_InvalidArguments verifies every precondition failure is reported
// as both ErrInvalidArgument and its precise cause.
func TestSolve_InvalidArguments(t *testing.T) {
	cases := []struct {
		name  string
		s     []int
		k     int
		opts  *partition.Options
		cause error
	}{
		{"nil sequence", nil, 3, nil, partition.ErrEmptySequence},
		{"empty sequence", []int{}, 1, nil, partition.ErrEmptySequence},
		{"zero ranges", []int{1, 2}, 0, nil, partition.ErrBadRangeCount},
		{"negative ranges", []int{1, 2}, -4, nil, partition.ErrBadRangeCount},
		{"negative value", []int{1, -2, 3}, 2, nil, partition.ErrNegativeValue},
		{"total overflows", []int{math.MaxInt, 1}, 1, nil, partition.ErrSumOverflow},
		{"total overflows late", []int{1, math.MaxInt / 2, math.MaxInt / 2, 5}, 9, nil, partition.ErrSumOverflow},
		{"unknown mode", []int{1, 2}, 2, &partition.Options{RangeSum: partition.RangeSumMode(9)}, partition.ErrBadOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.Solve(tc.s, tc.k, tc.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, partition.ErrInvalidArgument)
			assert.ErrorIs(t, err, tc.cause)

			_, err = partition.MinMax(tc.s, tc.k)
			if tc.opts == nil {
				assert.ErrorIs(t, err, tc.cause, "MinMax must report the same cause")
			}
		})
	}
}

// TestMinMax_Scenarios pins down known answers.
func TestMinMax_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		s    []int
		k    int
		want [][]int
		cost int
	}{
		{"nine ones in three", []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 3, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, 3},
		{"one to nine in three", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, [][]int{{1, 2, 3, 4, 5}, {6, 7}, {8, 9}}, 17},
		{"single element", []int{5}, 3, [][]int{{5}}, 5},
		{"single range", []int{4, 0, 2}, 1, [][]int{{4, 0, 2}}, 6},
		{"leftmost divider on ties", []int{1, 1, 1, 1}, 3, [][]int{{1}, {1}, {1, 1}}, 2},
		{"more ranges than elements", []int{5, 1, 1}, 7, [][]int{{5}, {1}, {1}}, 5},
		{"all zeros", []int{0, 0, 0, 0}, 2, [][]int{{0}, {0, 0, 0}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := partition.MinMax(tc.s, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			for _, mode := range []partition.RangeSumMode{partition.PrefixSums, partition.Rescan} {
				res, err := partition.Solve(tc.s, tc.k, &partition.Options{RangeSum: mode})
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Ranges, "mode=%s", mode)
				assert.Equal(t, tc.cost, res.Cost, "mode=%s", mode)
			}
		})
	}
}

// TestSolve_LargeValuesAtLimit checks totals right at math.MaxInt are solved exactly.
func TestSolve_LargeValuesAtLimit(t *testing.T) {
	s := []int{math.MaxInt - 10, 4, 6}
	for _, mode := range []partition.RangeSumMode{partition.PrefixSums, partition.Rescan} {
		res, err := partition.Solve(s, 2, &partition.Options{RangeSum: mode})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{math.MaxInt - 10}, {4, 6}}, res.Ranges, "mode=%s", mode)
		assert.Equal(t, math.MaxInt-10, res.Cost, "mode=%s", mode)

		res, err = partition.Solve(s, 1, &partition.Options{RangeSum: mode})
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, res.Cost, "mode=%s", mode)
	}
}

// TestSolve_BoundsMatchRanges checks Bounds are contiguous offsets
// covering the input and agree with Ranges.
func TestSolve_BoundsMatchRanges(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	res, err := partition.Solve(s, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, []partition.Range{{Start: 0, End: 5}, {Start: 5, End: 7}, {Start: 7, End: 9}}, res.Bounds)
	for j, b := range res.Bounds {
		assert.Equal(t, s[b.Start:b.End], res.Ranges[j])
		assert.Equal(t, len(res.Ranges[j]), b.Len())
	}
}

// TestSolve_DoesNotAliasInput ensures returned ranges are copies.
func TestSolve_DoesNotAliasInput(t *testing.T) {
	s := []int{3, 1, 4, 1, 5}
	res, err := partition.Solve(s, 2, nil)
	require.NoError(t, err)

	res.Ranges[0][0] = 99
	assert.Equal(t, []int{3, 1, 4, 1, 5}, s)
}

// bruteMinMax returns the optimal cost over every partition of s into at most k ranges.
func bruteMinMax(s []int, k int) int {
	if len(s) == 0 {
		return 0
	}
	if k == 1 {
		return sum(s)
	}
	best := -1
	for cut := 1; cut <= len(s); cut++ {
		head := sum(s[:cut])
		c := head
		if cut < len(s) {
			c = max(head, bruteMinMax(s[cut:], k-1))
		}
		if best < 0 || c < best {
			best = c
		}
	}

	return best
}

func sum(s []int) int {
	t := 0
	for _, v := range s {
		t += v
	}

	return t
}

// TestSolve_Properties cross-checks coverage, range count and optimality
// against exhaustive search on small random inputs.
func TestSolve_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(8)
		k := 1 + rng.Intn(5)
		s := make([]int, n)
		for i := range s {
			s[i] = rng.Intn(10)
		}

		res, err := partition.Solve(s, k, nil)
		require.NoError(t, err, "s=%v k=%d", s, k)

		// coverage, order, no empty range
		var flat []int
		top := 0
		for _, r := range res.Ranges {
			require.NotEmpty(t, r, "s=%v k=%d", s, k)
			flat = append(flat, r...)
			top = max(top, sum(r))
		}
		require.Equal(t, s, flat, "ranges must cover s in order")

		// range-count bound
		require.LessOrEqual(t, len(res.Ranges), k)
		if k >= n {
			require.Len(t, res.Ranges, n, "k >= n yields singletons")
		}

		// optimality and reported cost
		require.Equal(t, top, res.Cost, "Cost must equal the heaviest range")
		require.Equal(t, bruteMinMax(s, k), res.Cost, "s=%v k=%d", s, k)

		// rescan mode is output-identical
		alt, err := partition.Solve(s, k, &partition.Options{RangeSum: partition.Rescan})
		require.NoError(t, err)
		require.Equal(t, res, alt)
	}
}

// TestSolve_ConcurrentDeterminism runs the same problem from many goroutines.
func TestSolve_ConcurrentDeterminism(t *testing.T) {
	s := []int{7, 2, 5, 10, 8, 1, 1, 9, 3, 6}
	want, err := partition.Solve(s, 4, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]partition.Result, 16)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g], _ = partition.Solve(s, 4, nil)
		}(g)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

// TestRangeSumMode_String covers the flag spellings.
func TestRangeSumMode_String(t *testing.T) {
	assert.Equal(t, "prefix", partition.PrefixSums.String())
	assert.Equal(t, "rescan", partition.Rescan.String())
	assert.Equal(t, "unknown", partition.RangeSumMode(42).String())
}
