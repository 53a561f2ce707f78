// SPDX-License-Identifier: MIT

// Package dummies - two-pass expansion (pre-pass → populate).
//
// Purpose:
//   - Expand: build the vocabulary from the records, then populate.
//   - Vocabulary.Expand: populate against a frozen vocabulary, applying the
//     unknown-category policy per record.
//   - FromCodes: populate from integer codes (e.g. bin indices).
//
// Determinism & Concurrency:
//   - Records are split into contiguous chunks, one goroutine per chunk
//     (errgroup, bounded by WithWorkers). Each goroutine writes only the
//     rows and results of its own chunk, so no locking is needed.
//   - The output never depends on the worker count.

package dummies

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcut/matrix"
)

const (
	opExpand      = "Expand"
	opVocabExpand = "Vocabulary.Expand"
	opFromCodes   = "FromCodes"
)

// Expand runs the full pipeline on records: the vocabulary pre-pass followed
// by the populate pass. Since the vocabulary is built from the same records,
// no token can be unknown.
// Errors: ErrEmptyDelimiter (before any record is processed).
// Complexity: O(T) + O(R·t) time, O(R·C) memory.
func Expand(records []string, delim string, opts ...Option) (*Vocabulary, *Table, error) {
	vocab, err := BuildVocabulary(records, delim, opts...)
	if err != nil {
		return nil, nil, dummiesErrorf(opExpand, err)
	}
	table, _, err := vocab.populate(records, delim, gatherOptions(opts...))
	if err != nil {
		return nil, nil, dummiesErrorf(opExpand, err)
	}

	return vocab, table, nil
}

// Expand populates a table for records against the frozen vocabulary v.
// Implementation:
//   - Stage 1: validate the delimiter.
//   - Stage 2: populate rows in parallel; unseen tokens follow WithUnknown:
//     Fail ⇒ Result.Err wraps ErrUnknownCategory and the row stays zero;
//     Drop ⇒ the token is ignored and listed in Result.Dropped.
//   - Stage 3: under WithFailFast, return the lowest-index failure as
//     *RecordError.
//
// Returns one Result per record, in record order.
func (v *Vocabulary) Expand(records []string, delim string, opts ...Option) (*Table, []Result, error) {
	if delim == "" {
		return nil, nil, dummiesErrorf(opVocabExpand, ErrEmptyDelimiter)
	}
	o := gatherOptions(opts...)

	table, results, err := v.populate(records, delim, o)
	if err != nil {
		return nil, nil, dummiesErrorf(opVocabExpand, err)
	}
	if o.failFast {
		for _, r := range results {
			if r.Err != nil {
				return nil, nil, dummiesErrorf(opVocabExpand, &RecordError{Index: r.Record, Err: r.Err})
			}
		}
	}

	return table, results, nil
}

// populate allocates the table and fills it chunk by chunk.
func (v *Vocabulary) populate(records []string, delim string, o options) (*Table, []Result, error) {
	m, err := matrix.NewDense(len(records), v.Len())
	if err != nil {
		return nil, nil, err
	}
	results := make([]Result, len(records))

	err = forChunks(len(records), o.effectiveWorkers(len(records)), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			row, err := m.RowView(i)
			if err != nil {
				return err
			}
			results[i] = v.fillRow(row, i, records[i], delim, o)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &Table{columns: v.Categories(), m: m}, results, nil
}

// fillRow writes the indicators of one record into row.
func (v *Vocabulary) fillRow(row []float64, i int, field, delim string, o options) Result {
	res := Result{Record: i}
	eachToken(field, delim, o.trimSpace, func(tok string) {
		if res.Err != nil {
			return
		}
		if j, ok := v.index[tok]; ok {
			row[j] = 1 // duplicates in one field stay at 1
			return
		}
		if o.unknown == Drop {
			for _, d := range res.Dropped {
				if d == tok {
					return
				}
			}
			res.Dropped = append(res.Dropped, tok)
			return
		}
		res.Err = fmt.Errorf("%q: %w", tok, ErrUnknownCategory)
	})
	if res.Err != nil {
		clear(row) // a failed record asserts no category
	}

	return res
}

// FromCodes builds a table whose row i has a 1 in column codes[i].
// Code -1 marks a record without a category (all-zero row); columns follow
// the order of categories.
// Errors: ErrEmptyCategory, ErrDuplicateCategory, ErrCodeOutOfRange.
func FromCodes(codes []int, categories []string, opts ...Option) (*Table, error) {
	vocab, err := NewVocabulary(categories)
	if err != nil {
		return nil, dummiesErrorf(opFromCodes, err)
	}
	for i, c := range codes {
		if c < -1 || c >= vocab.Len() {
			return nil, dummiesErrorf(opFromCodes, &RecordError{Index: i, Err: fmt.Errorf("code %d: %w", c, ErrCodeOutOfRange)})
		}
	}

	m, err := matrix.NewDense(len(codes), vocab.Len())
	if err != nil {
		return nil, dummiesErrorf(opFromCodes, err)
	}
	o := gatherOptions(opts...)
	err = forChunks(len(codes), o.effectiveWorkers(len(codes)), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if codes[i] < 0 {
				continue
			}
			if err := m.Set(i, codes[i], 1); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, dummiesErrorf(opFromCodes, err)
	}

	return &Table{columns: vocab.Categories(), m: m}, nil
}

// forChunks splits [0,n) into at most workers contiguous chunks and runs fn
// on each in its own goroutine.
func forChunks(n, workers int, fn func(lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	if workers <= 1 {
		return fn(0, n)
	}

	size := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, min(lo+size, n)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
