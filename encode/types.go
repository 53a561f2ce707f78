package encode

import "github.com/katalvlaran/lvcut/dummies"

// Observation is one input value. The set of kinds is closed: only Number
// and Delimited implement it.
type Observation interface {
	isObservation()
}

// Number is a numeric observation, classified by the column's bins.
type Number float64

// Delimited is a delimiter-joined categorical record, e.g. "Action|Comedy".
type Delimited string

func (Number) isObservation()    {}
func (Delimited) isObservation() {}

// Kind is the resolved kind of a column.
type Kind int

const (
	// KindNumeric columns are binned.
	KindNumeric Kind = iota
	// KindDelimited columns are expanded into one indicator per category.
	KindDelimited
)

// String returns "numeric" or "delimited".
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindDelimited:
		return "delimited"
	default:
		return "unknown"
	}
}

// Column is a named sequence of observations; all values share one kind.
type Column struct {
	Name   string
	Values []Observation
}

// Numbers builds a numeric column.
func Numbers(name string, values ...float64) Column {
	obs := make([]Observation, len(values))
	for i, v := range values {
		obs[i] = Number(v)
	}

	return Column{Name: name, Values: obs}
}

// Records builds a delimited column.
func Records(name string, records ...string) Column {
	obs := make([]Observation, len(records))
	for i, r := range records {
		obs[i] = Delimited(r)
	}

	return Column{Name: name, Values: obs}
}

// Issue is a per-record problem that did not abort the batch.
//
// Fields:
//   - Column: input column name.
//   - Index:  record index within the batch.
//   - Err:    wraps bins.ErrOutOfRange or dummies.ErrUnknownCategory.
type Issue struct {
	Column string
	Index  int
	Err    error
}

// Result is the outcome of one Encode call.
//
// Table holds the combined indicator columns in input column order. Issues
// lists per-record problems ordered by column, then record. The rows of
// records with an issue are zero within the offending column's block.
type Result struct {
	RunID  string
	Table  *dummies.Table
	Issues []Issue
}
