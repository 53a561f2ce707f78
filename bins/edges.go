// SPDX-License-Identifier: MIT

// Package bins - edge generators.
//
// Purpose:
//   - EqualWidth: n equal-width intervals spanning the data.
//   - Quantiles / QuantileCount: equal-frequency intervals at sample
//     quantiles.
//
// Both skip NaN values and return ErrEmptyInput when nothing is left.

package bins

import (
	"fmt"
	"math"
	"sort"
)

const (
	opEqualWidth = "EqualWidth"
	opQuantiles  = "Quantiles"

	// widenFraction is the share of the data range added to the open outer
	// edge so the extreme value falls inside the first (or last) interval.
	widenFraction = 0.001
)

// finite returns the non-NaN values of xs in a fresh slice.
func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}

	return out
}

// EqualWidth returns n+1 edges splitting [min, max] of values into n
// equal-width intervals.
// Implementation:
//   - Stage 1: drop NaN; find min and max.
//   - Stage 2: constant data is widened by 0.1% of |v| (0.001 for zero) on
//     both sides so the interval is not degenerate.
//   - Stage 3: linear spacing; then the open outer edge (e0 for Upper, eN for
//     Lower) moves outward by 0.1% of the range so min/max are in range.
//
// Errors: ErrBadBinCount, ErrEmptyInput, ErrInvalidEdges (infinite data).
// Complexity: O(M + n).
func EqualWidth(values []float64, n int, side ClosedSide) (Edges, error) {
	if n < 1 {
		return nil, binsErrorf(opEqualWidth, ErrBadBinCount)
	}
	xs := finite(values)
	if len(xs) == 0 {
		return nil, binsErrorf(opEqualWidth, ErrEmptyInput)
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, binsErrorf(opEqualWidth, fmt.Errorf("infinite data: %w", ErrInvalidEdges))
	}

	degenerate := lo == hi
	if degenerate {
		pad := widenFraction * math.Abs(lo)
		if lo == 0 {
			pad = widenFraction
		}
		lo, hi = lo-pad, hi+pad
	}

	edges := make(Edges, n+1)
	step := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + step*float64(i)
	}
	edges[n] = hi // avoid accumulated rounding on the last edge

	if !degenerate {
		adj := (hi - lo) * widenFraction
		if side == Lower {
			edges[n] += adj
		} else {
			edges[0] -= adj
		}
	}

	if err := ValidateEdges(edges); err != nil {
		return nil, binsErrorf(opEqualWidth, err)
	}

	return edges, nil
}

// Quantiles returns edges at the given sample quantiles of values, using
// linear interpolation between order statistics.
// qs must have at least two values, lie within [0,1] and be strictly
// increasing. Repeated data that collapses two quantiles onto the same value
// yields ErrInvalidEdges.
// Complexity: O(M log M + len(qs)).
func Quantiles(values []float64, qs []float64) (Edges, error) {
	if len(qs) < 2 {
		return nil, binsErrorf(opQuantiles, ErrBadQuantile)
	}
	for i, q := range qs {
		if math.IsNaN(q) || q < 0 || q > 1 || (i > 0 && !(qs[i-1] < q)) {
			return nil, binsErrorf(opQuantiles, fmt.Errorf("q[%d]=%g: %w", i, q, ErrBadQuantile))
		}
	}
	xs := finite(values)
	if len(xs) == 0 {
		return nil, binsErrorf(opQuantiles, ErrEmptyInput)
	}
	sort.Float64s(xs)

	edges := make(Edges, len(qs))
	for i, q := range qs {
		edges[i] = quantile(xs, q)
	}
	if err := ValidateEdges(edges); err != nil {
		return nil, binsErrorf(opQuantiles, err)
	}

	return edges, nil
}

// QuantileCount returns n+1 edges for n equal-frequency intervals.
func QuantileCount(values []float64, n int) (Edges, error) {
	if n < 1 {
		return nil, binsErrorf(opQuantiles, ErrBadBinCount)
	}
	qs := make([]float64, n+1)
	for i := range qs {
		qs[i] = float64(i) / float64(n)
	}
	qs[n] = 1

	return Quantiles(values, qs)
}

// quantile interpolates the q-th quantile of sorted xs.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
