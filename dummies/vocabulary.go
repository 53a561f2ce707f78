// SPDX-License-Identifier: MIT

// Package dummies - Vocabulary: the ordered, frozen set of categories.
//
// Purpose:
//   - Collect distinct tokens across all records in one sequential pass so
//     that first-seen order is deterministic.
//   - Provide O(1) category → column lookups for the populate pass.
//
// A Vocabulary has no mutators; it is safe for concurrent readers.

package dummies

import (
	"fmt"
	"sort"
	"strings"
)

const (
	opBuildVocabulary = "BuildVocabulary"
	opNewVocabulary   = "NewVocabulary"
)

// Vocabulary is an ordered set of categories. Column j of every table
// produced from it holds category Categories()[j].
type Vocabulary struct {
	cats  []string
	index map[string]int
}

// NewVocabulary freezes a caller-supplied category list, keeping its order.
// Errors: ErrEmptyCategory, ErrDuplicateCategory.
func NewVocabulary(categories []string) (*Vocabulary, error) {
	v := &Vocabulary{
		cats:  make([]string, 0, len(categories)),
		index: make(map[string]int, len(categories)),
	}
	for i, c := range categories {
		if c == "" {
			return nil, dummiesErrorf(opNewVocabulary, fmt.Errorf("category %d: %w", i, ErrEmptyCategory))
		}
		if _, dup := v.index[c]; dup {
			return nil, dummiesErrorf(opNewVocabulary, fmt.Errorf("%q: %w", c, ErrDuplicateCategory))
		}
		v.index[c] = len(v.cats)
		v.cats = append(v.cats, c)
	}

	return v, nil
}

// BuildVocabulary runs the pre-pass: split every record by delim and union
// the tokens in first-seen order (or sorted order with WithOrder(Sorted)).
// Errors: ErrEmptyDelimiter.
// Complexity: O(T) for T tokens, plus O(C log C) when sorted.
func BuildVocabulary(records []string, delim string, opts ...Option) (*Vocabulary, error) {
	if delim == "" {
		return nil, dummiesErrorf(opBuildVocabulary, ErrEmptyDelimiter)
	}
	o := gatherOptions(opts...)

	v := &Vocabulary{index: make(map[string]int)}
	for _, rec := range records {
		eachToken(rec, delim, o.trimSpace, func(tok string) {
			if _, ok := v.index[tok]; !ok {
				v.index[tok] = len(v.cats)
				v.cats = append(v.cats, tok)
			}
		})
	}

	if o.order == Sorted {
		sort.Strings(v.cats)
		for i, c := range v.cats {
			v.index[c] = i
		}
	}

	return v, nil
}

// Len returns the number of categories.
func (v *Vocabulary) Len() int { return len(v.cats) }

// Categories returns a copy of the categories in column order.
func (v *Vocabulary) Categories() []string { return append([]string(nil), v.cats...) }

// Index returns the column of category c.
func (v *Vocabulary) Index(c string) (int, bool) {
	j, ok := v.index[c]

	return j, ok
}

// eachToken calls fn for every non-empty token of field, in order.
func eachToken(field, delim string, trim bool, fn func(string)) {
	if field == "" {
		return
	}
	for _, tok := range strings.Split(field, delim) {
		if trim {
			tok = strings.TrimSpace(tok)
		}
		if tok != "" {
			fn(tok)
		}
	}
}
