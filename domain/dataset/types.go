package dataset

import (
	"strings"

	"scenery/domain/core"
)

// MissingLabel is the sentinel category substituted for absent values
// before any categorical aggregation.
const MissingLabel = "Missing"

// Table is the raw, untyped tabular input handed over by an ingestion
// adapter: a header row plus string cells. The ingestion contract
// guarantees unique, whitespace-trimmed column names, no fully-empty
// columns and no duplicate rows; NewTable enforces shape only.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// NewTable validates the basic shape of a raw table. Rows narrower than
// the header are padded with empty cells (trailing blanks are routinely
// dropped by spreadsheet readers); rows wider than the header are a
// malformed input and the single hard failure of the pipeline.
func NewTable(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, core.ErrEmptyHeader
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, core.NewRaggedRowError(i + 1)
		}
		padded := make([]string, len(header))
		copy(padded, row)
		out[i] = padded
	}
	return &Table{Header: header, Rows: out}, nil
}

// ColumnKind tags the column union
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// NumericColumn holds parsed numeric values. Values and Missing are
// parallel to the table rows; Values[i] is meaningless where Missing[i].
type NumericColumn struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	Missing []bool    `json:"missing"`
}

// Present returns the non-missing values in row order.
func (c *NumericColumn) Present() []float64 {
	out := make([]float64, 0, len(c.Values))
	for i, v := range c.Values {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// MissingCount returns how many cells are missing.
func (c *NumericColumn) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// CategoricalColumn holds string values. TextLike marks long free-text
// columns that should not feed category-frequency charts.
type CategoricalColumn struct {
	Name     string   `json:"name"`
	Values   []string `json:"values"`
	Missing  []bool   `json:"missing"`
	TextLike bool     `json:"text_like"`
}

// Label returns the value at row i with the Missing sentinel applied.
func (c *CategoricalColumn) Label(i int) string {
	if c.Missing[i] {
		return MissingLabel
	}
	return c.Values[i]
}

// MissingCount returns how many cells are missing.
func (c *CategoricalColumn) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// Column is a tagged union: exactly one of Numeric or Categorical is set,
// decided once during classification and carried through the pipeline so
// downstream consumers never re-inspect cell contents.
type Column struct {
	Kind        ColumnKind         `json:"kind"`
	Numeric     *NumericColumn     `json:"numeric,omitempty"`
	Categorical *CategoricalColumn `json:"categorical,omitempty"`
}

// Name returns the column name regardless of kind.
func (c Column) Name() string {
	switch c.Kind {
	case KindNumeric:
		return c.Numeric.Name
	case KindCategorical:
		return c.Categorical.Name
	}
	return ""
}

// MissingCount returns the missing-cell count regardless of kind.
func (c Column) MissingCount() int {
	switch c.Kind {
	case KindNumeric:
		return c.Numeric.MissingCount()
	case KindCategorical:
		return c.Categorical.MissingCount()
	}
	return 0
}

// Frame is the typed dataset the engine consumes: an ordered sequence of
// classified columns. Frames are never mutated after construction.
type Frame struct {
	Columns []Column `json:"columns"`
	RowsN   int      `json:"rows"`
}

// Rows returns the row count.
func (f *Frame) Rows() int {
	return f.RowsN
}

// Numeric looks up a numeric column by name.
func (f *Frame) Numeric(name string) (*NumericColumn, bool) {
	for _, col := range f.Columns {
		if col.Kind == KindNumeric && col.Numeric.Name == name {
			return col.Numeric, true
		}
	}
	return nil, false
}

// Categorical looks up a categorical column by name.
func (f *Frame) Categorical(name string) (*CategoricalColumn, bool) {
	for _, col := range f.Columns {
		if col.Kind == KindCategorical && col.Categorical.Name == name {
			return col.Categorical, true
		}
	}
	return nil, false
}

// MissingCells returns the total missing-cell count across all columns.
func (f *Frame) MissingCells() int {
	total := 0
	for _, col := range f.Columns {
		total += col.MissingCount()
	}
	return total
}

// Classification splits column names into three disjoint sets. TextLike
// columns are also categorical in kind but are excluded from
// category-frequency charts.
type Classification struct {
	Numeric     []string `json:"numeric"`
	Categorical []string `json:"categorical"`
	TextLike    []string `json:"text_like"`
}

// IsNumeric reports whether name is in the numeric set.
func (c Classification) IsNumeric(name string) bool {
	return contains(c.Numeric, name)
}

// IsCategorical reports whether name is in the categorical set
// (excluding text-like columns).
func (c Classification) IsCategorical(name string) bool {
	return contains(c.Categorical, name)
}

// IsTextLike reports whether name is in the text-like set.
func (c Classification) IsTextLike(name string) bool {
	return contains(c.TextLike, name)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// FirstNumeric returns the default primary numeric column, or "" when
// the dataset has no numeric columns.
func (c Classification) FirstNumeric() string {
	if len(c.Numeric) == 0 {
		return ""
	}
	return c.Numeric[0]
}

// NormalizeName trims surrounding whitespace from a column name, the
// same normalization the ingestion contract applies.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
