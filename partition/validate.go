// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"
)

// invalid joins the family sentinel with a precise cause.
func invalid(cause error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, cause)
	}

	return fmt.Errorf("%w: %w: %s", ErrInvalidArgument, cause, fmt.Sprintf(format, args...))
}

// validate checks all preconditions before any table is allocated.
// Order: empty sequence -> range count -> options -> element values -> total.
// Once the total fits in an int, every prefix and range sum does too.
//
// Complexity: O(N).
func validate(s []int, k int, opts Options) error {
	if len(s) == 0 {
		return invalid(ErrEmptySequence, "")
	}
	if k < 1 {
		return invalid(ErrBadRangeCount, "k=%d", k)
	}
	switch opts.RangeSum {
	case PrefixSums, Rescan:
	default:
		return invalid(ErrBadOption, "RangeSum=%d", int(opts.RangeSum))
	}
	total := 0
	for i, v := range s {
		if v < 0 {
			return invalid(ErrNegativeValue, "s[%d]=%d", i, v)
		}
		if total > math.MaxInt-v {
			return invalid(ErrSumOverflow, "at s[%d]=%d", i, v)
		}
		total += v
	}

	return nil
}
