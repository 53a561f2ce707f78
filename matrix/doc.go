// Package matrix provides the dense row-major storage behind indicator tables.
//
// The matrix package provides:
//
//   - Dense, a float64 matrix stored in a single flat slice (offset = i*cols + j),
//     with bounds-checked At/Set that return errors instead of panicking.
//   - Zero-area shapes (0×N, N×0) so that an empty record batch or an empty
//     vocabulary is still a legal table.
//   - Reductions used by dummy encoding: RowSums (categories per record) and
//     ColSums (records per category).
//   - HStack for joining indicator blocks side by side, and Equal for
//     bit-exact comparison of two tables.
//
// All loops run in a fixed i→j order; results never depend on map iteration.
//
// See the examples in this package and in dummies for usage patterns.
package matrix
