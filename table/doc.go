// SPDX-License-Identifier: MIT

// Package table provides the dense two-dimensional grid shared by the
// lvdp dynamic-programming solvers.
//
// What & Why:
//
//	A DP solver addresses its sub-problems by a (prefix-length, parameter)
//	pair and needs O(1) access to each cell. Dense[T] keeps every cell in a
//	single row-major slice, so a cell lives at offset r*cols+c and a whole
//	row is a contiguous sub-slice. Both the value table M and the decision
//	table D of a solver are Dense grids of identical shape.
//
// Access paths:
//
//   - At / Set   - bounds-checked, return ErrOutOfRange instead of panicking.
//   - Row        - a view of one row sharing the backing storage, used by
//     the forward pass of the solvers where the indices are known valid.
//
// Complexity:
//
//	New runs in O(rows*cols); At, Set, Row, Rows, Cols and Len in O(1).
package table
