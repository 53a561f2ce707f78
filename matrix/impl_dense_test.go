// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcut/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroArea verifies that 0×N and N×0 shapes are legal.
func TestNewDenseZeroArea(t *testing.T) {
	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())

	m, err = matrix.NewDense(4, 0)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 0, m.Cols())

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Empty(t, row)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestSetGet validates Set() followed by At() and Row().
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 1))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, val)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, row)

	// Row returns a copy.
	row[0] = 9
	val, _ = m.At(1, 0)
	require.Equal(t, 0.0, val)
}

// TestRowViewSharesStorage ensures RowView writes reach the matrix.
func TestRowViewSharesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	view, err := m.RowView(1)
	require.NoError(t, err)
	view[1] = 1
	require.Equal(t, "[0, 0]\n[0, 1]\n", m.String())
}

// TestCloneIndependent ensures Clone produces a deep copy.
func TestCloneIndependent(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 2, []float64{1, 0})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 1))

	v, _ := m.At(0, 1)
	require.Equal(t, 0.0, v)
}

// TestNewDenseFromLength rejects buffers of the wrong size.
func TestNewDenseFromLength(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDoEarlyExit verifies row-major visiting order and early stop.
func TestDoEarlyExit(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}
