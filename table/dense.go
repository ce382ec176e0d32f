// SPDX-License-Identifier: MIT

package table

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major grid of T values.
// r is rows, c is columns, and data holds r*c cells in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, len == r*c
}

// New creates an r×c grid with every cell set to the zero value of T.
// Returns ErrBadShape when rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func New[T any](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	// Allocate flat slice, zero-valued
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.c }

// Len returns the number of cells, Rows()*Cols().
func (d *Dense[T]) Len() int { return len(d.data) }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (d *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row and column index
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*d.c + col, nil
}

// At returns the cell at (row, col).
// Complexity: O(1).
func (d *Dense[T]) At(row, col int) (T, error) {
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (d *Dense[T]) Set(row, col int, v T) error {
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Row returns row r as a slice of length Cols() backed by the grid storage.
// Writes through the slice are visible to At. Returns nil when r is out of range.
// Complexity: O(1).
func (d *Dense[T]) Row(r int) []T {
	if r < 0 || r >= d.r {
		return nil
	}
	off := r * d.c

	// full slice expression: appending to a row never spills into the next
	return d.data[off : off+d.c : off+d.c]
}
