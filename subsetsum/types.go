// SPDX-License-Identifier: MIT

package subsetsum

import "errors"

var (
	// ErrInvalidArgument is the family of all precondition failures.
	ErrInvalidArgument = errors.New("subsetsum: invalid argument")
	// ErrNegativeTarget indicates K < 0.
	ErrNegativeTarget = errors.New("subsetsum: target must be non-negative")
	// ErrNegativeValue indicates an element below zero.
	ErrNegativeValue = errors.New("subsetsum: values must be non-negative")
)

// Result holds the outcome of Solve.
type Result struct {
	// Found reports whether some sub-collection sums to the target.
	Found bool

	// Values lists the chosen elements in input order. Empty, not nil,
	// for a found zero target; nil when Found is false.
	Values []int

	// Indices holds the 0-based input positions of Values.
	Indices []int
}
