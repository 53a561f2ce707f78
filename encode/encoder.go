// SPDX-License-Identifier: MIT

// Package encode - Encoder: configuration-driven binning + expansion.
//
// Purpose:
//   - Resolve every structural problem (edges, labels, delimiters) in New,
//     before any record is read.
//   - Encode a batch column by column, concurrently, and join the blocks in
//     input column order.
//   - Keep per-record problems as Issues; only fail-fast mode or structural
//     errors abort a batch.

package encode

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcut/bins"
	"github.com/katalvlaran/lvcut/config"
	"github.com/katalvlaran/lvcut/dummies"
)

const (
	opNew    = "New"
	opFit    = "Fit"
	opEncode = "Encode"
)

// Encoder holds the binners built from a Config and any vocabularies frozen
// by Fit. It is safe for concurrent use.
type Encoder struct {
	cfg     config.Config
	binners map[string]*bins.Binner
	dopts   []dummies.Option
	logger  *slog.Logger

	mu     sync.RWMutex
	vocabs map[string]*dummies.Vocabulary
}

// New validates cfg and builds one Binner per numeric column.
// Implementation:
//   - Stage 1: cfg.Validate (enumerations, duplicate columns, edges, labels).
//   - Stage 2: build the Binner of every numeric column and check that its
//     labels can name indicator columns (non-empty and unique).
//   - Stage 3: translate the dummies options once.
//
// Errors: config.ErrInvalidConfig (wrapping bins/dummies sentinels).
func New(cfg config.Config, opts ...Option) (*Encoder, error) {
	o := gatherOptions(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, encodeErrorf(opNew, "", err)
	}

	e := &Encoder{
		cfg:     cfg,
		binners: make(map[string]*bins.Binner),
		vocabs:  make(map[string]*dummies.Vocabulary),
		logger:  o.logger.With("component", "encode"),
	}
	for _, col := range cfg.Columns {
		if !col.Numeric() {
			continue
		}
		bopts, err := cfg.BinOptions(col)
		if err != nil {
			return nil, encodeErrorf(opNew, col.Name, err)
		}
		b, err := bins.New(col.Edges, bopts...)
		if err != nil {
			return nil, encodeErrorf(opNew, col.Name, err)
		}
		if _, err := dummies.NewVocabulary(b.Labels()); err != nil {
			return nil, encodeErrorf(opNew, col.Name, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err))
		}
		e.binners[col.Name] = b
	}

	dopts, err := cfg.DummyOptions()
	if err != nil {
		return nil, encodeErrorf(opNew, "", err)
	}
	e.dopts = dopts

	return e, nil
}

// Config returns the configuration the encoder was built from.
func (e *Encoder) Config() config.Config { return e.cfg }

// Binner returns the binner of a configured numeric column.
func (e *Encoder) Binner(name string) (*bins.Binner, bool) {
	b, ok := e.binners[name]

	return b, ok
}

// Vocabulary returns the vocabulary frozen by Fit for a delimited column.
func (e *Encoder) Vocabulary(name string) (*dummies.Vocabulary, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vocabs[name]

	return v, ok
}

// Fit builds and freezes the vocabulary of every delimited column in cols,
// replacing vocabularies from earlier Fit calls. Numeric columns are checked
// but otherwise ignored: their columns are fixed by the configured edges.
// After Fit, Encode applies on_unknown_category to tokens the frozen
// vocabulary lacks, and every batch shares the same column layout.
func (e *Encoder) Fit(cols ...Column) error {
	kinds, err := e.checkColumns(cols, false)
	if err != nil {
		return encodeErrorf(opFit, "", err)
	}

	fitted := make(map[string]*dummies.Vocabulary)
	for k, col := range cols {
		if kinds[k] != KindDelimited {
			continue
		}
		cc := e.columnConfig(col.Name)
		v, err := dummies.BuildVocabulary(delimited(col), e.cfg.DelimiterFor(cc), e.dopts...)
		if err != nil {
			return encodeErrorf(opFit, col.Name, err)
		}
		fitted[col.Name] = v
		e.logger.Debug("vocabulary frozen", "column", col.Name, "categories", v.Len())
	}

	e.mu.Lock()
	for name, v := range fitted {
		e.vocabs[name] = v
	}
	e.mu.Unlock()

	return nil
}

// Encode encodes every column and joins the blocks in argument order.
// Implementation:
//   - Stage 1: check names, kinds and row counts.
//   - Stage 2: encode columns concurrently (errgroup, bounded by workers);
//     each goroutine writes only its own slot.
//   - Stage 3: collect issues in column order, join the tables.
//
// Errors:
//   - ErrEmptyColumnName, ErrDuplicateColumn, ErrNilObservation,
//     ErrMixedColumn, ErrKindMismatch, ErrNoEdges, ErrRowCountMismatch.
//   - Under fail_fast: the failure of the first failing column, wrapping
//     *bins.RecordError or *dummies.RecordError.
func (e *Encoder) Encode(cols ...Column) (*Result, error) {
	runID := uuid.New().String()
	logger := e.logger.With("run_id", runID)

	kinds, err := e.checkColumns(cols, true)
	if err != nil {
		return nil, encodeErrorf(opEncode, "", err)
	}

	tables := make([]*dummies.Table, len(cols))
	issues := make([][]Issue, len(cols))
	errs := make([]error, len(cols))

	var g errgroup.Group
	g.SetLimit(e.workers())
	for k := range cols {
		k := k
		g.Go(func() error {
			tables[k], issues[k], errs[k] = e.encodeColumn(cols[k], kinds[k])

			return nil
		})
	}
	_ = g.Wait()

	res := &Result{RunID: runID}
	for k, col := range cols {
		if errs[k] != nil {
			logger.Error("encode failed", "column", col.Name, "error", errs[k])

			return nil, encodeErrorf(opEncode, col.Name, errs[k])
		}
		logger.Debug("column encoded",
			"column", col.Name,
			"kind", kinds[k].String(),
			"rows", tables[k].Rows(),
			"indicators", tables[k].Cols())
		if n := len(issues[k]); n > 0 {
			logger.Warn("records with issues", "column", col.Name, "count", n)
		}
		res.Issues = append(res.Issues, issues[k]...)
	}

	if len(tables) == 0 {
		res.Table, err = dummies.FromCodes(nil, nil)
		if err != nil {
			return nil, encodeErrorf(opEncode, "", err)
		}

		return res, nil
	}
	res.Table, err = tables[0].Join(tables[1:]...)
	if err != nil {
		return nil, encodeErrorf(opEncode, "", err)
	}

	return res, nil
}

// encodeColumn produces the prefixed indicator block of one column.
func (e *Encoder) encodeColumn(col Column, kind Kind) (*dummies.Table, []Issue, error) {
	cc := e.columnConfig(col.Name)

	var (
		table  *dummies.Table
		issues []Issue
		err    error
	)
	switch kind {
	case KindNumeric:
		table, issues, err = e.encodeNumeric(col)
	default:
		table, issues, err = e.encodeDelimited(col, e.cfg.DelimiterFor(cc))
	}
	if err != nil {
		return nil, nil, err
	}

	return table.WithPrefix(e.cfg.PrefixFor(cc), e.cfg.PrefixSeparator), issues, nil
}

func (e *Encoder) encodeNumeric(col Column) (*dummies.Table, []Issue, error) {
	b := e.binners[col.Name]
	values := make([]float64, len(col.Values))
	for i, v := range col.Values {
		values[i] = float64(v.(Number))
	}

	as, err := b.AssignAll(values)
	if err != nil {
		return nil, nil, err
	}
	var issues []Issue
	for _, a := range as {
		if a.Err != nil {
			issues = append(issues, Issue{Column: col.Name, Index: a.Record, Err: a.Err})
		}
	}

	table, err := dummies.FromCodes(bins.Codes(as), b.Labels(), e.dopts...)
	if err != nil {
		return nil, nil, err
	}

	return table, issues, nil
}

func (e *Encoder) encodeDelimited(col Column, delim string) (*dummies.Table, []Issue, error) {
	records := delimited(col)

	vocab, frozen := e.Vocabulary(col.Name)
	if !frozen {
		_, table, err := dummies.Expand(records, delim, e.dopts...)

		return table, nil, err
	}

	table, results, err := vocab.Expand(records, delim, e.dopts...)
	if err != nil {
		return nil, nil, err
	}
	var issues []Issue
	for _, r := range results {
		if r.Err != nil {
			issues = append(issues, Issue{Column: col.Name, Index: r.Record, Err: r.Err})
		}
	}

	return table, issues, nil
}

// checkColumns validates names and resolves kinds. With sameLength, every
// column must have the same number of values.
func (e *Encoder) checkColumns(cols []Column, sameLength bool) ([]Kind, error) {
	kinds := make([]Kind, len(cols))
	seen := make(map[string]struct{}, len(cols))
	for k, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d: %w", k, ErrEmptyColumnName)
		}
		if _, dup := seen[col.Name]; dup {
			return nil, fmt.Errorf("%q: %w", col.Name, ErrDuplicateColumn)
		}
		seen[col.Name] = struct{}{}

		kind, err := e.kindOf(col)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", col.Name, err)
		}
		kinds[k] = kind

		if sameLength && len(col.Values) != len(cols[0].Values) {
			return nil, fmt.Errorf("%q has %d values, %q has %d: %w",
				col.Name, len(col.Values), cols[0].Name, len(cols[0].Values), ErrRowCountMismatch)
		}
	}

	return kinds, nil
}

// kindOf resolves the kind of col from its values and its configuration.
// An empty column takes the configured kind.
func (e *Encoder) kindOf(col Column) (Kind, error) {
	_, configured := e.binners[col.Name]

	var numbers, records int
	for i, v := range col.Values {
		switch v.(type) {
		case Number:
			numbers++
		case Delimited:
			records++
		default:
			return 0, fmt.Errorf("value %d: %w", i, ErrNilObservation)
		}
	}

	switch {
	case numbers > 0 && records > 0:
		return 0, ErrMixedColumn
	case numbers > 0 && !configured:
		return 0, ErrNoEdges
	case records > 0 && configured:
		return 0, ErrKindMismatch
	case configured:
		return KindNumeric, nil
	default:
		return KindDelimited, nil
	}
}

// columnConfig returns the configured column, or a bare one named name.
func (e *Encoder) columnConfig(name string) config.ColumnConfig {
	if cc, ok := e.cfg.Column(name); ok {
		return cc
	}

	return config.ColumnConfig{Name: name}
}

// workers bounds the per-column fan-out.
func (e *Encoder) workers() int {
	if e.cfg.Workers > 0 {
		return e.cfg.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// delimited extracts the records of a delimited column.
func delimited(col Column) []string {
	out := make([]string, len(col.Values))
	for i, v := range col.Values {
		out[i] = string(v.(Delimited))
	}

	return out
}
