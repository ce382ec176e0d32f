// SPDX-License-Identifier: MIT

package partition

import "errors"

// Sentinel errors. Every validation failure wraps ErrInvalidArgument and one
// precise cause, so errors.Is matches either.
var (
	// ErrInvalidArgument is the family of all precondition failures.
	ErrInvalidArgument = errors.New("partition: invalid argument")

	// ErrEmptySequence indicates the input sequence has no elements.
	ErrEmptySequence = errors.New("partition: sequence must be non-empty")

	// ErrBadRangeCount indicates K < 1.
	ErrBadRangeCount = errors.New("partition: range count must be >= 1")

	// ErrNegativeValue indicates an element below zero.
	ErrNegativeValue = errors.New("partition: values must be non-negative")

	// ErrSumOverflow indicates the element total does not fit in an int,
	// so range sums along the table could not be represented.
	ErrSumOverflow = errors.New("partition: sum of values overflows int")

	// ErrBadOption indicates an unknown RangeSumMode.
	ErrBadOption = errors.New("partition: unknown option value")
)

// RangeSumMode selects how the recurrence evaluates sum(s[i+1..n]).
//
//   - PrefixSums - precompute prefix sums once, O(1) per range.
//     Time: O(K·N²).
//
//   - Rescan     - add the range up element by element for every candidate.
//     Time: O(K·N³). Kept as the literal textbook recurrence; both modes
//     produce identical results.
type RangeSumMode int

const (
	// PrefixSums answers each range sum from a prefix-sum array.
	PrefixSums RangeSumMode = iota

	// Rescan recomputes each range sum by scanning the range.
	Rescan
)

// String returns the flag spelling of the mode.
func (m RangeSumMode) String() string {
	switch m {
	case PrefixSums:
		return "prefix"
	case Rescan:
		return "rescan"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Fields:
//   - RangeSum - range-sum evaluation strategy (default PrefixSums).
type Options struct {
	RangeSum RangeSumMode
}

// DefaultOptions returns Options{RangeSum: PrefixSums}.
func DefaultOptions() Options {
	return Options{RangeSum: PrefixSums}
}

// Range is a half-open interval [Start, End) of 0-based offsets into the input.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of elements covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Result holds the outcome of Solve.
type Result struct {
	// Ranges holds the element values of every range, left to right.
	// The slices are copies; the input is never aliased.
	Ranges [][]int

	// Bounds holds the offsets of every range, parallel to Ranges.
	Bounds []Range

	// Cost is the largest range-sum, i.e. the minimised objective.
	Cost int
}
