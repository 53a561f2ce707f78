// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with context via %w);
// tests check them with errors.Is. No function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached with fmt.Errorf("ctx: %w", ErrX) at the detection site.
var (
	// ErrInvalidDimensions is returned when a requested shape is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. HStack of blocks with different row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil Matrix")

	// ErrNaNInf is returned by Set when a non-finite value is written.
	ErrNaNInf = errors.New("matrix: NaN or Inf value")
)
