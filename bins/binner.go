// SPDX-License-Identifier: MIT

// Package bins - Binner: validated edges + labels + policy, read-only after New.
//
// Purpose:
//   - Validate structure once (edges, labels) so per-value work cannot fail
//     for structural reasons.
//   - Classify values with a binary search over the edges.
//   - Report out-of-range values according to an explicit policy.
//
// Complexity quicksheet:
//   - New: O(N) validation + label formatting; Assign: O(log N);
//     AssignAll: O(M log N); Counts: O(M).

package bins

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opAssign    = "Assign"
	opAssignAll = "AssignAll"
)

// Binner classifies numeric observations into the intervals of fixed edges.
// A Binner is immutable after New and safe for concurrent use.
type Binner struct {
	edges  Edges
	labels []string
	opts   options
}

// New validates edges and options and returns a ready Binner.
// Implementation:
//   - Stage 1: gather options (panics only on programmer errors).
//   - Stage 2: ValidateEdges; reject with ErrInvalidEdges.
//   - Stage 3: check len(labels) == len(edges)-1 when labels are supplied.
//   - Stage 4: copy edges; resolve labels (user or auto-generated).
//
// Errors:
//   - ErrInvalidEdges, ErrLabelCountMismatch.
//
// Complexity:
//   - Time O(N), Space O(N).
func New(edges []float64, opts ...Option) (*Binner, error) {
	o := gatherOptions(opts...)

	if err := ValidateEdges(edges); err != nil {
		return nil, binsErrorf(opNew, err)
	}
	if o.labels != nil && len(o.labels) != len(edges)-1 {
		return nil, binsErrorf(opNew, fmt.Errorf("%d labels for %d bins: %w",
			len(o.labels), len(edges)-1, ErrLabelCountMismatch))
	}

	b := &Binner{
		edges: append(Edges(nil), edges...),
		opts:  o,
	}
	if o.labels != nil {
		b.labels = append([]string(nil), o.labels...)
	} else {
		b.labels = make([]string, len(edges)-1)
		for i := range b.labels {
			b.labels[i] = b.intervalLabel(i)
		}
	}

	return b, nil
}

// ValidateEdges checks that edges has at least two values, contains no NaN,
// and is strictly increasing. ±Inf outer edges are allowed.
// Complexity: O(N).
func ValidateEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("got %d edges: %w", len(edges), ErrInvalidEdges)
	}
	for i, e := range edges {
		if math.IsNaN(e) {
			return fmt.Errorf("edge %d is NaN: %w", i, ErrInvalidEdges)
		}
		if i > 0 && !(edges[i-1] < e) {
			return fmt.Errorf("edge %d (%g) <= edge %d (%g): %w", i, e, i-1, edges[i-1], ErrInvalidEdges)
		}
	}

	return nil
}

// Len returns the number of intervals.
func (b *Binner) Len() int { return len(b.labels) }

// Edges returns a copy of the edges.
func (b *Binner) Edges() Edges { return append(Edges(nil), b.edges...) }

// Labels returns a copy of the resolved labels, one per interval.
func (b *Binner) Labels() []string { return append([]string(nil), b.labels...) }

// ClosedSide reports the interval convention fixed at construction.
func (b *Binner) ClosedSide() ClosedSide { return b.opts.side }

// Assign classifies a single value.
// Implementation:
//   - Stage 1: locate(v): binary search, tie-break toward the closed side.
//   - Stage 2: in range ⇒ Assigned; otherwise apply the out-of-range policy.
//
// Returns:
//   - Assignment with Record == 0.
//   - error: non-nil only when the policy is Fail (or v is NaN under Clamp);
//     it wraps ErrOutOfRange and equals the Assignment's Err.
//
// Complexity: O(log N).
func (b *Binner) Assign(v float64) (Assignment, error) {
	a := b.assign(v)

	return a, a.Err
}

// AssignAll classifies every value and returns one Assignment per input, in
// input order. Per-record failures are tagged in the results and never abort
// the batch unless WithFailFast was given, in which case the first failure is
// returned as *RecordError and the results are nil.
// Complexity: O(M log N).
func (b *Binner) AssignAll(values []float64) ([]Assignment, error) {
	out := make([]Assignment, len(values))
	for i, v := range values {
		a := b.assign(v)
		a.Record = i
		if a.Err != nil && b.opts.failFast {
			return nil, binsErrorf(opAssignAll, &RecordError{Index: i, Err: a.Err})
		}
		out[i] = a
	}

	return out, nil
}

// Counts returns the number of assignments per interval, in interval order.
// Dropped and Failed assignments are not counted.
func (b *Binner) Counts(as []Assignment) []int {
	counts := make([]int, b.Len())
	for _, a := range as {
		if a.OK() && a.Bin >= 0 && a.Bin < len(counts) {
			counts[a.Bin]++
		}
	}

	return counts
}

// Codes returns the interval index of every assignment (-1 when not OK).
func Codes(as []Assignment) []int {
	out := make([]int, len(as))
	for i, a := range as {
		if a.OK() {
			out[i] = a.Bin
		} else {
			out[i] = -1
		}
	}

	return out
}

// locate returns the interval holding v, or -1 below / len(bins) above.
// NaN yields -1 with nan=true.
func (b *Binner) locate(v float64) (bin int, nan bool) {
	e := b.edges
	n := len(e)
	last := n - 2
	if math.IsNaN(v) {
		return -1, true
	}

	if b.opts.side == Upper {
		// (e[i], e[i+1]]
		if v < e[0] || (v == e[0] && !b.opts.includeLowest) {
			return -1, false
		}
		if v > e[n-1] {
			return last + 1, false
		}
		if v == e[0] {
			return 0, false
		}
		// first index with e[i] >= v; v sits in (e[i-1], e[i]].
		return sort.SearchFloat64s(e, v) - 1, false
	}

	// [e[i], e[i+1])
	if v < e[0] {
		return -1, false
	}
	if v > e[n-1] || (v == e[n-1] && !b.opts.includeLowest) {
		return last + 1, false
	}
	if v == e[n-1] {
		return last, false
	}
	// first index with e[i] > v; v sits in [e[i-1], e[i]).
	return sort.Search(n, func(i int) bool { return e[i] > v }) - 1, false
}

// assign resolves one value into an Assignment according to the policy.
func (b *Binner) assign(v float64) Assignment {
	bin, nan := b.locate(v)
	if !nan && bin >= 0 && bin < b.Len() {
		return Assignment{Bin: bin, Label: b.labels[bin], Status: Assigned}
	}

	switch {
	case b.opts.outOfRange == Drop:
		return Assignment{Bin: -1, Status: Dropped}
	case b.opts.outOfRange == Clamp && !nan:
		if bin < 0 {
			bin = 0
		} else {
			bin = b.Len() - 1
		}
		return Assignment{Bin: bin, Label: b.labels[bin], Status: Clamped}
	default:
		return Assignment{
			Bin:    -1,
			Status: Failed,
			Err:    binsErrorf(opAssign, fmt.Errorf("%g not in %s: %w", v, b.span(), ErrOutOfRange)),
		}
	}
}

// span renders the covered range, e.g. "(18, 100]".
func (b *Binner) span() string {
	lo, hi := b.edges[0], b.edges[len(b.edges)-1]
	open, closeBr := b.brackets(0, b.Len()-1)

	return open + b.format(lo) + ", " + b.format(hi) + closeBr
}

// brackets returns the opening bracket of interval first and the closing
// bracket of interval last, honouring include-lowest.
func (b *Binner) brackets(first, last int) (string, string) {
	open, closeBr := "(", "]"
	if b.opts.side == Lower {
		open, closeBr = "[", ")"
	}
	if b.opts.includeLowest {
		if b.opts.side == Upper && first == 0 {
			open = "["
		}
		if b.opts.side == Lower && last == b.Len()-1 {
			closeBr = "]"
		}
	}

	return open, closeBr
}

// intervalLabel formats interval i in interval notation.
func (b *Binner) intervalLabel(i int) string {
	open, closeBr := b.brackets(i, i)

	return open + b.format(b.edges[i]) + ", " + b.format(b.edges[i+1]) + closeBr
}

// format renders an edge with the configured precision.
func (b *Binner) format(v float64) string {
	if b.opts.precision == 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', b.opts.precision, 64)
}
