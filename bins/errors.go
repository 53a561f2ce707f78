package bins

import (
	"errors"
	"fmt"
)

// Sentinel errors for bins operations.
var (
	// ErrInvalidEdges indicates edges with fewer than two values, a NaN, or
	// values that are not strictly increasing.
	ErrInvalidEdges = errors.New("bins: edges must have at least two strictly increasing values")
	// ErrLabelCountMismatch indicates len(labels) != len(edges)-1.
	ErrLabelCountMismatch = errors.New("bins: label count must equal number of bins")
	// ErrOutOfRange indicates a value outside the outer edges (or NaN).
	ErrOutOfRange = errors.New("bins: value out of range")
	// ErrEmptyInput indicates no usable (non-NaN) values for an edge generator.
	ErrEmptyInput = errors.New("bins: input has no finite values")
	// ErrBadBinCount indicates a requested bin count below one.
	ErrBadBinCount = errors.New("bins: bin count must be >= 1")
	// ErrBadQuantile indicates quantiles outside [0,1] or not strictly increasing.
	ErrBadQuantile = errors.New("bins: quantiles must be strictly increasing within [0, 1]")
)

// RecordError reports a per-record failure at a given observation index.
// It is returned by batch operations running in fail-fast mode.
type RecordError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *RecordError) Error() string {
	return fmt.Sprintf("bins: record %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *RecordError) Unwrap() error { return e.Err }

// binsErrorf wraps a sentinel with operation context.
func binsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
