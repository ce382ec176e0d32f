// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("table: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")
)
