// Package bins assigns numeric observations to intervals defined by
// strictly increasing bin edges.
//
// 🚀 What is interval assignment?
//
//	Given edges e0 < e1 < … < eN, every value v is mapped to the single
//	interval that contains it. With the default right-closed convention
//	interval i covers (e[i], e[i+1]]:
//
//	  edges  18      25      35      60      100
//	         (───0───](───1───](───2───](───3───]
//
//	A value equal to an internal edge belongs to the interval whose closed
//	side that edge is: under right-closed intervals 25 is in bin 0.
//
// ✨ Key features:
//   - right-closed (default) or left-closed intervals, fixed per Binner
//   - explicit out-of-range policy: Fail, Drop or Clamp
//   - user-supplied labels or auto-generated interval notation "(18, 25]"
//   - per-record results for batches; fail-fast on request
//   - edge generators: EqualWidth (n equal bins) and Quantiles (equal frequency)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcut/bins"
//
//	b, err := bins.New([]float64{18, 25, 35, 60, 100},
//	  bins.WithLabels("Youth", "YoungAdult", "MiddleAged", "Senior"),
//	)
//	a, err := b.Assign(27) // a.Bin == 1, a.Label == "YoungAdult"
//
// Structural problems (ErrInvalidEdges, ErrLabelCountMismatch) are reported
// by New before any value is seen; ErrOutOfRange is reported per value.
//
// Performance:
//
//   - Assign: O(log N) binary search over the edges
//   - AssignAll: O(M log N) for M values, no allocation beyond the result
package bins
