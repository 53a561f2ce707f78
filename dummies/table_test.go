package dummies_test

import (
	"testing"

	"github.com/katalvlaran/lvcut/dummies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_PrefixAndJoin namespaces two tables and joins them.
func TestTable_PrefixAndJoin(t *testing.T) {
	_, g, err := dummies.Expand(genres, "|")
	require.NoError(t, err)
	age, err := dummies.FromCodes([]int{0, 1, 1}, []string{"Youth", "Adult"})
	require.NoError(t, err)

	joined, err := g.WithPrefix("genre", "_").Join(age.WithPrefix("age", "_"))
	require.NoError(t, err)
	assert.Equal(t, []string{"genre_Action", "genre_Comedy", "genre_Drama", "age_Youth", "age_Adult"}, joined.Columns())

	row, err := joined.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1, 0, 1}, row)

	// WithPrefix never touches the original.
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, g.Columns())
}

// TestTable_JoinErrors covers row mismatches and column collisions.
func TestTable_JoinErrors(t *testing.T) {
	_, g, err := dummies.Expand(genres, "|")
	require.NoError(t, err)
	short, err := dummies.FromCodes([]int{0}, []string{"x"})
	require.NoError(t, err)

	_, err = g.Join(short)
	assert.ErrorIs(t, err, dummies.ErrRowCountMismatch)

	_, err = g.Join(g)
	assert.ErrorIs(t, err, dummies.ErrDuplicateColumn)
}

// TestTable_ColumnUnknown reports missing columns.
func TestTable_ColumnUnknown(t *testing.T) {
	_, g, err := dummies.Expand(genres, "|")
	require.NoError(t, err)

	_, err = g.Column("Western")
	assert.ErrorIs(t, err, dummies.ErrUnknownCategory)
}

// TestTable_MatrixIsCopy ensures callers cannot mutate a table.
func TestTable_MatrixIsCopy(t *testing.T) {
	_, g, err := dummies.Expand(genres, "|")
	require.NoError(t, err)

	m := g.Matrix()
	require.NoError(t, m.Set(1, 0, 1))

	v, err := g.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestTable_EqualAndString covers comparison and rendering.
func TestTable_EqualAndString(t *testing.T) {
	_, a, err := dummies.Expand(genres, "|")
	require.NoError(t, err)
	_, b, err := dummies.Expand(genres, "|", dummies.WithOrder(dummies.Sorted))
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b), "sorted order equals first-seen order for this data")
	assert.False(t, a.Equal(a.WithPrefix("g", "_")))
	assert.False(t, a.Equal(nil))

	want := "Action  Comedy  Drama\n" +
		"1       1       0\n" +
		"0       1       0\n" +
		"1       0       1\n"
	assert.Equal(t, want, a.String())
}
