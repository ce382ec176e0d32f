// SPDX-License-Identifier: MIT

package subsetsum

// Exists reports whether some sub-collection of s sums to k.
//
// It runs the same recurrence as Solve but keeps a single row, updated from
// the highest target down so each element is used at most once. No witness
// can be recovered. Memory: O(K).
func Exists(s []int, k int) (bool, error) {
	total, err := validate(s, k)
	if err != nil {
		return false, err
	}
	if k > total {
		return false, nil
	}

	// reach[c] == M[n][c] for the prefix consumed so far
	reach := make([]bool, k+1)
	reach[0] = true
	for _, v := range s {
		if v == 0 || v > k {
			continue // never changes the row
		}
		// descending so reach[c-v] still holds the previous row
		for c := k; c >= v; c-- {
			if reach[c-v] {
				reach[c] = true
			}
		}
		if reach[k] {
			return true, nil
		}
	}

	return reach[k], nil
}
