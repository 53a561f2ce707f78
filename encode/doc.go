// Package encode turns a batch of heterogeneous columns into one combined
// indicator table: numeric columns are binned, delimited categorical
// columns are expanded, and every block is joined side by side.
//
// 🚀 Pipeline
//
//	Column "age"    (Number)    ─► bins.Binner.AssignAll ─► dummies.FromCodes ─┐
//	Column "genres" (Delimited) ─► dummies.Expand / Vocabulary.Expand ─────────┼─► Join
//	                                                                            ┘
//
//	Each block is prefixed with its column name ("age_(18, 25]",
//	"genres_Comedy") so names never collide across columns.
//
// ✨ Key features:
//   - a closed set of observation kinds: Number and Delimited
//   - all behavior comes from an explicit config.Config, no global state
//   - per-record issues (out of range, unknown category) are collected, not fatal
//   - Fit freezes vocabularies so later batches share one column layout
//   - columns are encoded concurrently; the output never depends on scheduling
//
// ⚙️ Usage:
//
//	cfg := config.Default()
//	cfg.Columns = []config.ColumnConfig{{Name: "age", Edges: []float64{18, 25, 35, 60, 100}}}
//	enc, err := encode.New(cfg, encode.WithLogger(logger))
//	res, err := enc.Encode(
//	  encode.Numbers("age", 22, 31),
//	  encode.Records("genres", "Action|Comedy", "Drama"),
//	)
//	fmt.Print(res.Table)
package encode
