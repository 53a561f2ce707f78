// Package lvcut turns raw record fields into model-ready indicator columns:
// numeric values are cut into labelled intervals and delimiter-joined
// categorical fields are expanded into one 0/1 column per category.
//
// 🚀 What is lvcut?
//
//	A small, deterministic feature-discretisation library:
//		• Interval assignment: fixed edges, right- or left-closed, labels
//		• Edge generators: equal width, quantiles
//		• Indicator expansion: vocabulary pre-pass + parallel populate
//		• Combined encoding: one table from many columns, driven by config
//
// ✨ Why choose lvcut?
//
//   - Deterministic: the same input and configuration give bit-identical output
//   - Explicit: every policy (closed side, out of range, unknown category) is configured
//   - Per-record errors: one bad value never hides the rest of the batch
//
// Packages:
//
//	bins/     edges, labels and the Binner (Assign, AssignAll, Counts)
//	dummies/  Vocabulary, Expand, FromCodes and the indicator Table
//	encode/   Encoder: per-column binning/expansion joined into one table
//	config/   YAML + LVCUT_* environment configuration with validation
//	matrix/   row-major Dense storage, row/column sums, horizontal stacking
//
// Quick example:
//
//	edges  18      25      35      60      100
//	       (──Youth─](─Young─](─Middle](─Senior]
//
//	ages   22 → Youth   25 → Youth   25.0001 → YoungAdult   100 → Senior
//
//	genres "Action|Comedy"  → Action=1 Comedy=1 Drama=0
//	       "Drama|Action"   → Action=1 Comedy=0 Drama=1
//
// See each subpackage for the full API.
package lvcut
