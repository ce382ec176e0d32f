// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/katalvlaran/lvdp/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BadShape ensures New rejects non-positive dimensions.
func TestNew_BadShape(t *testing.T) {
	_, err := table.New[int](0, 5)
	require.ErrorIs(t, err, table.ErrBadShape)

	_, err = table.New[bool](5, 0)
	require.ErrorIs(t, err, table.ErrBadShape)

	_, err = table.New[int](-1, -1)
	require.ErrorIs(t, err, table.ErrBadShape)
}

// TestDense_Shape verifies Rows, Cols and Len.
func TestDense_Shape(t *testing.T) {
	d, err := table.New[int](3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 4, d.Cols())
	assert.Equal(t, 12, d.Len())
}

// TestDense_OutOfRange ensures At and Set report ErrOutOfRange instead of panicking.
func TestDense_OutOfRange(t *testing.T) {
	d, err := table.New[int](2, 2)
	require.NoError(t, err)

	_, err = d.At(-1, 0)
	assert.ErrorIs(t, err, table.ErrOutOfRange)
	_, err = d.At(0, 2)
	assert.ErrorIs(t, err, table.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(2, 0, 1), table.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), table.ErrOutOfRange)
	assert.Nil(t, d.Row(2))
	assert.Nil(t, d.Row(-1))
}

// TestDense_RowSharesStorage checks that writes through Row are seen by At
// and that rows do not alias each other.
func TestDense_RowSharesStorage(t *testing.T) {
	d, err := table.New[int](3, 3)
	require.NoError(t, err)

	row := d.Row(1)
	require.Len(t, row, 3)
	row[2] = 42

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = d.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "neighbouring row must stay untouched")

	// appending to a row view must not spill into the next row
	_ = append(row, 7)
	v, _ = d.At(2, 0)
	assert.Equal(t, 0, v)
}

// TestDense_SetAt round-trips values on a bool grid.
func TestDense_SetAt(t *testing.T) {
	d, err := table.New[bool](2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(0, 1, true))
	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = d.At(1, 1)
	require.NoError(t, err)
	assert.False(t, v, "unset cells hold the zero value")
	assert.Equal(t, []bool{false, true}, d.Row(0))
}
