// SPDX-License-Identifier: MIT

// Package subsetsum decides whether some sub-collection of non-negative
// integers adds up exactly to a target, and reconstructs one when it does.
//
// What:
//
//   - Solve / Find build the (N+1)x(K+1) feasibility table
//     M[n][k] = "some subset of s1..sn sums to k" together with a decision
//     table recording the value taken at each cell, then replay the
//     decisions from (N, K) back to row 0.
//   - Exists answers the decision question only, with one rolling row.
//
// Results:
//
//	"No subset" is a normal outcome (Found == false / ok == false), never an
//	error. A zero target is always reachable with the empty collection.
//
// Complexity:
//
//   - Solve, Find: O(N·K) time, O(N·K) memory.
//   - Exists:      O(N·K) time, O(K) memory.
//
// Errors:
//
//   - ErrNegativeTarget: K < 0.
//   - ErrNegativeValue:  some element < 0.
//
// Both wrap ErrInvalidArgument and are returned before any table is built.
package subsetsum
