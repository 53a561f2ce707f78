package encode_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcut/bins"
	"github.com/katalvlaran/lvcut/config"
	"github.com/katalvlaran/lvcut/dummies"
	"github.com/katalvlaran/lvcut/encode"
)

// ageConfig returns a configuration with one labelled numeric column.
func ageConfig() config.Config {
	cfg := config.Default()
	cfg.Columns = []config.ColumnConfig{{
		Name:   "age",
		Edges:  []float64{18, 25, 35, 60, 100},
		Labels: []string{"Youth", "YoungAdult", "MiddleAged", "Senior"},
	}}

	return cfg
}

func mustEncoder(t *testing.T, cfg config.Config, opts ...encode.Option) *encode.Encoder {
	t.Helper()
	enc, err := encode.New(cfg, opts...)
	require.NoError(t, err)

	return enc
}

func rows(t *testing.T, tb *dummies.Table) [][]float64 {
	t.Helper()
	out := make([][]float64, tb.Rows())
	for i := range out {
		r, err := tb.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// TestEncode_Combined bins a numeric column and expands a delimited one.
func TestEncode_Combined(t *testing.T) {
	enc := mustEncoder(t, ageConfig())

	res, err := enc.Encode(
		encode.Numbers("age", 22, 27, 61),
		encode.Records("genres", "Action|Comedy", "Comedy", "Drama|Action"),
	)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)
	assert.NotEmpty(t, res.RunID)

	assert.Equal(t, []string{
		"age_Youth", "age_YoungAdult", "age_MiddleAged", "age_Senior",
		"genres_Action", "genres_Comedy", "genres_Drama",
	}, res.Table.Columns())
	assert.Equal(t, [][]float64{
		{1, 0, 0, 0, 1, 1, 0},
		{0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 1, 1, 0, 1},
	}, rows(t, res.Table))

	sums, err := res.Table.RowSums()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 3}, sums)
}

// TestEncode_Deterministic checks that repeated runs and worker counts agree.
func TestEncode_Deterministic(t *testing.T) {
	cols := []encode.Column{
		encode.Numbers("age", 19, 25, 25.0001, 35, 99.5, 100),
		encode.Records("genres", "Drama|Action", "", "Comedy||Comedy", "Western", "Action", "Drama"),
		encode.Records("tags", "a,b", "b", "c", "a", "", "b,c"),
	}
	cfg := ageConfig()
	cfg.Columns = append(cfg.Columns, config.ColumnConfig{Name: "tags", Delimiter: ","})

	var first *dummies.Table
	for _, workers := range []int{1, 2, 8} {
		cfg.Workers = workers
		enc := mustEncoder(t, cfg)
		for run := 0; run < 3; run++ {
			res, err := enc.Encode(cols...)
			require.NoError(t, err)
			if first == nil {
				first = res.Table
				continue
			}
			assert.True(t, first.Equal(res.Table), "workers=%d run=%d", workers, run)
		}
	}

	age, err := first.Column("age_Youth")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0, 0, 0}, age)
	yadult, err := first.Column("age_YoungAdult")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1, 0, 0}, yadult)
}

// TestEncode_OutOfRange covers the three out-of-range policies.
func TestEncode_OutOfRange(t *testing.T) {
	t.Run("fail collects issues", func(t *testing.T) {
		enc := mustEncoder(t, ageConfig())
		res, err := enc.Encode(encode.Numbers("age", 10, 30, 150))
		require.NoError(t, err)

		require.Len(t, res.Issues, 2)
		assert.Equal(t, "age", res.Issues[0].Column)
		assert.Equal(t, 0, res.Issues[0].Index)
		assert.Equal(t, 2, res.Issues[1].Index)
		assert.ErrorIs(t, res.Issues[0].Err, bins.ErrOutOfRange)
		assert.Equal(t, [][]float64{{0, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}}, rows(t, res.Table))
	})

	t.Run("drop is silent", func(t *testing.T) {
		cfg := ageConfig()
		cfg.OnOutOfRange = "drop"
		res, err := mustEncoder(t, cfg).Encode(encode.Numbers("age", 10, 30))
		require.NoError(t, err)
		assert.Empty(t, res.Issues)
		assert.Equal(t, [][]float64{{0, 0, 0, 0}, {0, 1, 0, 0}}, rows(t, res.Table))
	})

	t.Run("clamp", func(t *testing.T) {
		cfg := ageConfig()
		cfg.OnOutOfRange = "clamp"
		res, err := mustEncoder(t, cfg).Encode(encode.Numbers("age", 10, 150))
		require.NoError(t, err)
		assert.Empty(t, res.Issues)
		assert.Equal(t, [][]float64{{1, 0, 0, 0}, {0, 0, 0, 1}}, rows(t, res.Table))
	})

	t.Run("fail fast", func(t *testing.T) {
		cfg := ageConfig()
		cfg.FailFast = true
		_, err := mustEncoder(t, cfg).Encode(encode.Numbers("age", 30, 10, 5))
		require.Error(t, err)
		assert.ErrorIs(t, err, bins.ErrOutOfRange)

		var rerr *bins.RecordError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, 1, rerr.Index)
		assert.Contains(t, err.Error(), `column "age"`)
	})
}

// TestFit freezes a vocabulary and applies the unknown-category policy.
func TestFit(t *testing.T) {
	t.Run("fail", func(t *testing.T) {
		enc := mustEncoder(t, config.Default())
		require.NoError(t, enc.Fit(encode.Records("genres", "Action|Comedy")))

		v, ok := enc.Vocabulary("genres")
		require.True(t, ok)
		assert.Equal(t, []string{"Action", "Comedy"}, v.Categories())

		res, err := enc.Encode(encode.Records("genres", "Drama", "Comedy"))
		require.NoError(t, err)
		assert.Equal(t, []string{"genres_Action", "genres_Comedy"}, res.Table.Columns())
		assert.Equal(t, [][]float64{{0, 0}, {0, 1}}, rows(t, res.Table))
		require.Len(t, res.Issues, 1)
		assert.Equal(t, 0, res.Issues[0].Index)
		assert.ErrorIs(t, res.Issues[0].Err, dummies.ErrUnknownCategory)
	})

	t.Run("drop", func(t *testing.T) {
		cfg := config.Default()
		cfg.OnUnknownCategory = "drop"
		enc := mustEncoder(t, cfg)
		require.NoError(t, enc.Fit(encode.Records("genres", "Action|Comedy")))

		res, err := enc.Encode(encode.Records("genres", "Drama|Action"))
		require.NoError(t, err)
		assert.Empty(t, res.Issues)
		assert.Equal(t, [][]float64{{1, 0}}, rows(t, res.Table))
	})

	t.Run("unfitted column builds its own vocabulary", func(t *testing.T) {
		enc := mustEncoder(t, config.Default())
		_, ok := enc.Vocabulary("genres")
		assert.False(t, ok)

		res, err := enc.Encode(encode.Records("genres", "Drama"))
		require.NoError(t, err)
		assert.Equal(t, []string{"genres_Drama"}, res.Table.Columns())
	})

	t.Run("numeric columns are ignored", func(t *testing.T) {
		enc := mustEncoder(t, ageConfig())
		require.NoError(t, enc.Fit(encode.Numbers("age", 20)))
		_, ok := enc.Vocabulary("age")
		assert.False(t, ok)
	})
}

// TestEncode_Prefix applies per-column prefixes and a custom separator.
func TestEncode_Prefix(t *testing.T) {
	cfg := config.Default()
	cfg.PrefixSeparator = ":"
	cfg.Columns = []config.ColumnConfig{{Name: "genres", Prefix: "g", Delimiter: ";"}}

	res, err := mustEncoder(t, cfg).Encode(encode.Records("genres", "a;b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"g:a", "g:b"}, res.Table.Columns())
}

// TestEncode_AutoLabels uses interval notation when no labels are given.
func TestEncode_AutoLabels(t *testing.T) {
	cfg := config.Default()
	cfg.Columns = []config.ColumnConfig{{Name: "x", Edges: []float64{0, 1.5, 3}}}

	res, err := mustEncoder(t, cfg).Encode(encode.Numbers("x", 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"x_(0, 1.5]", "x_(1.5, 3]"}, res.Table.Columns())
}

// TestEncode_Empty covers empty batches.
func TestEncode_Empty(t *testing.T) {
	enc := mustEncoder(t, ageConfig())

	res, err := enc.Encode()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Table.Rows())
	assert.Equal(t, 0, res.Table.Cols())

	res, err = enc.Encode(encode.Numbers("age"), encode.Records("genres"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Table.Rows())
	assert.Equal(t, 4, res.Table.Cols())
}

// TestEncode_ColumnErrors covers structural problems of the input columns.
func TestEncode_ColumnErrors(t *testing.T) {
	tests := []struct {
		name    string
		cols    []encode.Column
		wantErr error
	}{
		{"empty name", []encode.Column{encode.Records("", "a")}, encode.ErrEmptyColumnName},
		{"duplicate", []encode.Column{encode.Records("g", "a"), encode.Records("g", "b")}, encode.ErrDuplicateColumn},
		{"mixed", []encode.Column{{Name: "m", Values: []encode.Observation{encode.Number(1), encode.Delimited("a")}}}, encode.ErrMixedColumn},
		{"nil value", []encode.Column{{Name: "n", Values: []encode.Observation{nil}}}, encode.ErrNilObservation},
		{"no edges", []encode.Column{encode.Numbers("weight", 70)}, encode.ErrNoEdges},
		{"kind mismatch", []encode.Column{encode.Records("age", "old")}, encode.ErrKindMismatch},
		{"row mismatch", []encode.Column{encode.Numbers("age", 20, 30), encode.Records("g", "a")}, encode.ErrRowCountMismatch},
	}

	enc := mustEncoder(t, ageConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Encode(tt.cols...)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == encode.ErrRowCountMismatch {
				assert.NoError(t, enc.Fit(tt.cols...), "Fit accepts columns of different lengths")
				return
			}
			assert.ErrorIs(t, enc.Fit(tt.cols...), tt.wantErr)
		})
	}
}

// TestNew_Errors covers configuration rejected before any record is read.
func TestNew_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.ClosedSide = "middle"
	_, err := encode.New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Columns = []config.ColumnConfig{{Name: "a", Edges: []float64{0, 1, 2}, Labels: []string{"x"}}}
	_, err = encode.New(cfg)
	assert.ErrorIs(t, err, bins.ErrLabelCountMismatch)

	cfg.Columns = []config.ColumnConfig{{Name: "a", Edges: []float64{0, 1, 2}, Labels: []string{"x", "x"}}}
	_, err = encode.New(cfg)
	assert.ErrorIs(t, err, dummies.ErrDuplicateCategory)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	assert.Panics(t, func() { encode.WithLogger(nil) })
}

// TestEncode_Logging checks the component and run_id attributes.
func TestEncode_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	enc := mustEncoder(t, ageConfig(), encode.WithLogger(logger))

	res, err := enc.Encode(encode.Numbers("age", 10, 20))
	require.NoError(t, err)

	var sawWarn bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, "encode", rec["component"])
		assert.Equal(t, res.RunID, rec["run_id"])
		if rec["level"] == "WARN" {
			sawWarn = true
			assert.Equal(t, float64(1), rec["count"])
		}
	}
	assert.True(t, sawWarn)
}

// TestEncode_Concurrent runs Encode and Fit from several goroutines.
func TestEncode_Concurrent(t *testing.T) {
	enc := mustEncoder(t, ageConfig())
	require.NoError(t, enc.Fit(encode.Records("genres", "a|b|c")))

	done := make(chan *dummies.Table, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			_ = enc.Fit(encode.Records("genres", "a|b|c"))
			res, err := enc.Encode(encode.Numbers("age", 20, 40), encode.Records("genres", "a", "b|c"))
			if err != nil {
				done <- nil
				return
			}
			done <- res.Table
		}()
	}

	var first *dummies.Table
	for i := 0; i < cap(done); i++ {
		tb := <-done
		require.NotNil(t, tb)
		if first == nil {
			first = tb
			continue
		}
		assert.True(t, first.Equal(tb))
	}
}
