// SPDX-License-Identifier: MIT

package partition_test

import (
	"fmt"

	"github.com/katalvlaran/lvdp/partition"
)

// ExampleMinMax places nine books of increasing thickness on three shelves.
func ExampleMinMax() {
	ranges, err := partition.MinMax([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ranges)
	// Output:
	// [[1 2 3 4 5] [6 7] [8 9]]
}

// ExampleSolve reports the optimal cost and the offsets of each range.
func ExampleSolve() {
	opts := partition.DefaultOptions()
	res, err := partition.Solve([]int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 3, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%d\nbounds=%v\n", res.Cost, res.Bounds)
	// Output:
	// cost=3
	// bounds=[{0 3} {3 6} {6 9}]
}

// ExampleSolve_moreRangesThanElements shows the K >= N edge case.
func ExampleSolve_moreRangesThanElements() {
	res, _ := partition.Solve([]int{5}, 3, nil)
	fmt.Println(res.Ranges, res.Cost)
	// Output:
	// [[5]] 5
}
