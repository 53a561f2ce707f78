// Package dummies expands categorical fields into 0/1 indicator tables
// (dummy variables, one-hot columns).
//
// 🚀 What is indicator expansion?
//
//	Every record carries a raw field holding zero or more categories
//	separated by a delimiter, e.g. "Action|Comedy". A pre-pass collects the
//	vocabulary of all distinct categories; the populate pass writes one row
//	per record with a 1 in every column whose category the record names:
//
//	  records               Action  Comedy  Drama
//	  "Action|Comedy"   →     1       1       0
//	  "Comedy"          →     0       1       0
//	  "Drama|Action"    →     1       0       1
//
// ✨ Key features:
//   - first-seen (default) or sorted column order, fixed for every row
//   - multi-label fields; duplicate tokens count once, empty fields give a zero row
//   - frozen vocabularies for incremental expansion, with an explicit
//     policy for unseen categories (Fail or Drop)
//   - parallel population over records (golang.org/x/sync/errgroup); the
//     vocabulary pre-pass stays sequential so column order is deterministic
//   - FromCodes for categories that are already integer codes (bin indices)
//   - Table: row/column sums, prefixes, horizontal joins
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcut/dummies"
//
//	vocab, table, err := dummies.Expand(genres, "|")
//	freq, _ := table.ColSums() // how many records name each genre
//
//	// later, against new data:
//	next, results, err := vocab.Expand(newGenres, "|", dummies.WithUnknown(dummies.Drop))
//
// Performance:
//
//   - Vocabulary: O(T) for T tokens in total
//   - Populate:   O(R·t) for R records with t tokens on average, O(R·C) memory
package dummies
