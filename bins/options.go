// SPDX-License-Identifier: MIT

// Package bins: functional configuration for Binner.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that applies defaults then setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Last writer wins: options are applied left to right.
//   - Panics are reserved for programmer errors (unknown enum values,
//     negative precision). Data errors (edges, labels) are returned by New.
package bins

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultClosedSide closes intervals on the right: (lo, hi].
	DefaultClosedSide = Upper

	// DefaultOutOfRange reports out-of-range values as per-record failures.
	DefaultOutOfRange = Fail

	// DefaultIncludeLowest keeps the open outer edge open.
	DefaultIncludeLowest = false

	// DefaultPrecision of 0 formats auto labels with the shortest
	// representation that round-trips (strconv 'g', -1).
	DefaultPrecision = 0

	// DefaultFailFast keeps batches running past per-record failures.
	DefaultFailFast = false
)

// ---------- Internal panic messages ----------

const (
	panicClosedSideInvalid = "bins: WithClosedSide: side must be Upper or Lower"
	panicPolicyInvalid     = "bins: WithOutOfRange: policy must be Fail, Drop or Clamp"
	panicPrecisionInvalid  = "bins: WithPrecision: precision must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	side          ClosedSide
	outOfRange    Policy
	includeLowest bool
	precision     int
	failFast      bool
	labels        []string // nil ⇒ auto-generated interval notation
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		side:          DefaultClosedSide,
		outOfRange:    DefaultOutOfRange,
		includeLowest: DefaultIncludeLowest,
		precision:     DefaultPrecision,
		failFast:      DefaultFailFast,
	}
}

// gatherOptions applies setters over the defaults, last writer wins.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithClosedSide selects right-closed (Upper) or left-closed (Lower) intervals.
// Panics on any other value.
func WithClosedSide(side ClosedSide) Option {
	if side != Upper && side != Lower {
		panic(panicClosedSideInvalid)
	}

	return func(o *options) { o.side = side }
}

// WithOutOfRange selects the policy for values outside the outer edges.
// Panics on any other value.
func WithOutOfRange(p Policy) Option {
	if p != Fail && p != Drop && p != Clamp {
		panic(panicPolicyInvalid)
	}

	return func(o *options) { o.outOfRange = p }
}

// WithIncludeLowest closes the open outer edge: the first interval becomes
// [e0, e1] under Upper, the last becomes [eN-1, eN] under Lower.
// Quantile edges usually want this so the minimum is not out of range.
func WithIncludeLowest() Option {
	return func(o *options) { o.includeLowest = true }
}

// WithPrecision sets the number of significant digits in auto labels.
// Zero restores the shortest round-trip formatting. Panics when p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = p }
}

// WithLabels supplies one name per interval. The count is checked by New
// against the edges and reported as ErrLabelCountMismatch.
func WithLabels(labels ...string) Option {
	cp := append([]string(nil), labels...)

	return func(o *options) { o.labels = cp }
}

// WithFailFast makes AssignAll stop at the first failed record and return
// it as *RecordError.
func WithFailFast() Option {
	return func(o *options) { o.failFast = true }
}
