package dummies

import (
	"errors"
	"fmt"
)

// Sentinel errors for dummies operations.
var (
	// ErrEmptyDelimiter indicates an empty delimiter string.
	ErrEmptyDelimiter = errors.New("dummies: delimiter must not be empty")
	// ErrUnknownCategory indicates a token missing from a frozen vocabulary.
	ErrUnknownCategory = errors.New("dummies: unknown category")
	// ErrDuplicateCategory indicates a category listed twice in NewVocabulary.
	ErrDuplicateCategory = errors.New("dummies: duplicate category")
	// ErrEmptyCategory indicates an empty category name in NewVocabulary.
	ErrEmptyCategory = errors.New("dummies: empty category")
	// ErrCodeOutOfRange indicates a code outside [-1, len(categories)) in FromCodes.
	ErrCodeOutOfRange = errors.New("dummies: code out of range")
	// ErrRowCountMismatch indicates tables with different row counts in Join.
	ErrRowCountMismatch = errors.New("dummies: row count mismatch")
	// ErrDuplicateColumn indicates a column name present in more than one joined table.
	ErrDuplicateColumn = errors.New("dummies: duplicate column")
)

// RecordError reports a per-record failure at a given record index.
// It is returned by Vocabulary.Expand running in fail-fast mode.
type RecordError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *RecordError) Error() string {
	return fmt.Sprintf("dummies: record %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *RecordError) Unwrap() error { return e.Err }

// dummiesErrorf wraps a sentinel with operation context.
func dummiesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
