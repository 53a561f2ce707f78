package encode

import (
	"errors"
	"fmt"
)

// Sentinel errors for encode operations.
var (
	// ErrEmptyColumnName indicates a column without a name.
	ErrEmptyColumnName = errors.New("encode: empty column name")
	// ErrDuplicateColumn indicates two input columns with the same name.
	ErrDuplicateColumn = errors.New("encode: duplicate column")
	// ErrNilObservation indicates a nil value inside a column.
	ErrNilObservation = errors.New("encode: nil observation")
	// ErrMixedColumn indicates a column holding both Number and Delimited values.
	ErrMixedColumn = errors.New("encode: column mixes numeric and delimited values")
	// ErrKindMismatch indicates a column whose values disagree with its configuration.
	ErrKindMismatch = errors.New("encode: column kind does not match configuration")
	// ErrNoEdges indicates a numeric column with no configured edges.
	ErrNoEdges = errors.New("encode: numeric column has no edges")
	// ErrRowCountMismatch indicates columns of different lengths.
	ErrRowCountMismatch = errors.New("encode: row count mismatch")
)

// encodeErrorf wraps err with an operation tag and the column name.
func encodeErrorf(tag, column string, err error) error {
	if column == "" {
		return fmt.Errorf("%s: %w", tag, err)
	}

	return fmt.Errorf("%s: column %q: %w", tag, column, err)
}
