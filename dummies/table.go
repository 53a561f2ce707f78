// SPDX-License-Identifier: MIT

// Package dummies - Table: named indicator columns over matrix.Dense.
//
// Purpose:
//   - Pair a fixed column order with row-major 0/1 storage.
//   - Offer the reductions used to check and summarise an encoding:
//     RowSums (categories per record), ColSums (records per category).
//   - Combine tables: WithPrefix for namespacing, Join for side-by-side.
//
// A Table is never mutated after construction; every method returning a
// *Table returns a new value.

package dummies

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvcut/matrix"
)

const (
	opJoin   = "Join"
	opColumn = "Column"
)

// Table is an ordered collection of indicator rows sharing one column order.
type Table struct {
	columns []string
	m       *matrix.Dense
}

// Rows returns the number of records.
func (t *Table) Rows() int { return t.m.Rows() }

// Cols returns the number of indicator columns.
func (t *Table) Cols() int { return t.m.Cols() }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// Row returns a copy of the indicator row of record i.
func (t *Table) Row(i int) ([]float64, error) { return t.m.Row(i) }

// At returns the indicator of record i for column j.
func (t *Table) At(i, j int) (float64, error) { return t.m.At(i, j) }

// Column returns a copy of the column named name.
// Errors: ErrUnknownCategory when no such column exists.
func (t *Table) Column(name string) ([]float64, error) {
	j := -1
	for k, c := range t.columns {
		if c == name {
			j = k
			break
		}
	}
	if j < 0 {
		return nil, dummiesErrorf(opColumn, fmt.Errorf("%q: %w", name, ErrUnknownCategory))
	}

	out := make([]float64, t.Rows())
	for i := range out {
		v, err := t.m.At(i, j)
		if err != nil {
			return nil, dummiesErrorf(opColumn, err)
		}
		out[i] = v
	}

	return out, nil
}

// RowSums returns the number of categories asserted by every record.
func (t *Table) RowSums() ([]float64, error) { return matrix.RowSums(t.m) }

// ColSums returns the number of records naming every category.
func (t *Table) ColSums() ([]float64, error) { return matrix.ColSums(t.m) }

// Matrix returns a deep copy of the underlying storage.
func (t *Table) Matrix() matrix.Matrix { return t.m.Clone() }

// WithPrefix returns a table whose column names are prefix+sep+name.
// Storage is shared; tables are read-only.
func (t *Table) WithPrefix(prefix, sep string) *Table {
	cols := make([]string, len(t.columns))
	for j, c := range t.columns {
		cols[j] = prefix + sep + c
	}

	return &Table{columns: cols, m: t.m}
}

// Join concatenates t and others horizontally, columns in argument order.
// Errors: ErrRowCountMismatch, ErrDuplicateColumn.
// Complexity: O(R · Σ C).
func (t *Table) Join(others ...*Table) (*Table, error) {
	all := append([]*Table{t}, others...)
	seen := make(map[string]struct{})
	cols := make([]string, 0)
	blocks := make([]matrix.Matrix, 0, len(all))
	for k, tb := range all {
		if tb.Rows() != t.Rows() {
			return nil, dummiesErrorf(opJoin, fmt.Errorf("table %d has %d rows, want %d: %w",
				k, tb.Rows(), t.Rows(), ErrRowCountMismatch))
		}
		for _, c := range tb.columns {
			if _, dup := seen[c]; dup {
				return nil, dummiesErrorf(opJoin, fmt.Errorf("%q: %w", c, ErrDuplicateColumn))
			}
			seen[c] = struct{}{}
			cols = append(cols, c)
		}
		blocks = append(blocks, tb.m)
	}

	m, err := matrix.HStack(blocks...)
	if err != nil {
		return nil, dummiesErrorf(opJoin, err)
	}

	return &Table{columns: cols, m: m}, nil
}

// Equal reports whether both tables have identical columns and cells.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.columns) != len(o.columns) {
		return false
	}
	for j := range t.columns {
		if t.columns[j] != o.columns[j] {
			return false
		}
	}

	return matrix.Equal(t.m, o.m)
}

// String renders the table with a header line, tab-aligned.
func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.columns, "\t"))

	cells := make([]string, t.Cols())
	for i := 0; i < t.Rows(); i++ {
		row, _ := t.m.Row(i)
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()

	return b.String()
}
