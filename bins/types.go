package bins

// ClosedSide selects which side of every interval is closed.
//
//   - Upper: (e[i], e[i+1]], the default.
//   - Lower: [e[i], e[i+1]).
type ClosedSide int

const (
	// Upper closes intervals on the right: (lo, hi].
	Upper ClosedSide = iota
	// Lower closes intervals on the left: [lo, hi).
	Lower
)

// String returns "upper" or "lower".
func (s ClosedSide) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// Policy decides what happens to a value outside the outer edges.
type Policy int

const (
	// Fail reports ErrOutOfRange for the record.
	Fail Policy = iota
	// Drop marks the record as dropped (Bin == -1) without an error.
	Drop
	// Clamp assigns the record to the nearest outer bin.
	Clamp
)

// String returns "fail", "drop" or "clamp".
func (p Policy) String() string {
	switch p {
	case Fail:
		return "fail"
	case Drop:
		return "drop"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// Status tags the outcome of one assignment.
type Status int

const (
	// Assigned means the value fell inside an interval.
	Assigned Status = iota
	// Clamped means the value was out of range and moved to an outer bin.
	Clamped
	// Dropped means the value was out of range and skipped.
	Dropped
	// Failed means the value was out of range (or NaN) and Err is set.
	Failed
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case Assigned:
		return "assigned"
	case Clamped:
		return "clamped"
	case Dropped:
		return "dropped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Edges is an ordered sequence of strictly increasing bin boundaries.
type Edges []float64

// Bins returns the number of intervals the edges define.
func (e Edges) Bins() int {
	if len(e) < 2 {
		return 0
	}

	return len(e) - 1
}

// Assignment is the outcome of classifying one observation.
//
// Fields:
//   - Record: observation index within the batch (0 for single Assign calls).
//   - Bin:    interval index, or -1 when Dropped/Failed.
//   - Label:  resolved label of Bin ("" when Bin == -1).
//   - Status: Assigned, Clamped, Dropped or Failed.
//   - Err:    non-nil only when Status == Failed; wraps ErrOutOfRange.
type Assignment struct {
	Record int
	Bin    int
	Label  string
	Status Status
	Err    error
}

// OK reports whether the observation ended up in a bin.
func (a Assignment) OK() bool {
	return a.Status == Assigned || a.Status == Clamped
}
