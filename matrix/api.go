// SPDX-License-Identifier: MIT
// Package matrix: reductions and composition over Matrix.
//
// Exposed API:
//   - RowSums(m) -> []float64   // r[i] = Σ_j m[i,j]
//   - ColSums(m) -> []float64   // c[j] = Σ_i m[i,j]
//   - HStack(ms...) -> *Dense   // [A | B | ...] with equal row counts
//   - Equal(a, b) -> bool       // same shape and bit-identical cells
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths read the row-major flat buffer directly.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opRowSums = "RowSums"
	opColSums = "ColSums"
	opHStack  = "HStack"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// For an indicator table this is the number of categories asserted per record.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[i] += d.data[base+j]
			}
		}

		return out, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// For an indicator table this is the frequency of each category.
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, c)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[j] += d.data[base+j]
			}
		}

		return out, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// HStack concatenates matrices horizontally: the result has the shared row
// count and Σ cols columns, blocks laid out left to right in argument order.
// Implementation:
//   - Stage 1: validate non-nil operands and equal row counts.
//   - Stage 2: allocate the result once.
//   - Stage 3: copy each row segment (Dense fast-path; At fallback).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r * Σc).
func HStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return NewDense(0, 0)
	}
	if err := ValidateSameRows(ms...); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	rows, cols := ms[0].Rows(), 0
	for _, m := range ms {
		cols += m.Cols()
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	var i, j int
	offset := 0
	for _, m := range ms {
		c := m.Cols()
		if d, ok := m.(*Dense); ok {
			for i = 0; i < rows; i++ {
				copy(out.data[i*cols+offset:i*cols+offset+c], d.data[i*c:(i+1)*c])
			}
		} else {
			for i = 0; i < rows; i++ {
				for j = 0; j < c; j++ {
					v, err := m.At(i, j)
					if err != nil {
						return nil, matrixErrorf(opHStack, err)
					}
					out.data[i*cols+offset+j] = v
				}
			}
		}
		offset += c
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and bit-identical cells.
// Nil operands are never equal.
// Complexity: O(rc).
func Equal(a, b Matrix) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, errA := a.At(i, j)
			y, errB := b.At(i, j)
			if errA != nil || errB != nil {
				return false
			}
			if math.Float64bits(x) != math.Float64bits(y) {
				return false
			}
		}
	}

	return true
}
