package dataset

import (
	"errors"
	"reflect"
	"testing"

	"scenery/domain/core"
)

func TestNewTablePadsShortRows(t *testing.T) {
	table, err := NewTable([]string{"a", "b"}, [][]string{{"1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"1", ""}) {
		t.Errorf("expected padded row, got %v", table.Rows[0])
	}
}

func TestNewTableRejectsWideRows(t *testing.T) {
	_, err := NewTable([]string{"a"}, [][]string{{"1", "2"}})
	if !errors.Is(err, core.ErrRaggedRow) {
		t.Fatalf("expected ragged row error, got %v", err)
	}
	if !errors.Is(err, core.ErrMalformedTable) {
		t.Fatalf("expected ragged row to be malformed input, got %v", err)
	}
}

func TestNewTableDoesNotMutateInput(t *testing.T) {
	short := []string{"1"}
	rows := [][]string{short}

	table, err := NewTable([]string{"a", "b"}, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rows[0], []string{"1"}) {
		t.Errorf("caller's rows were mutated: %v", rows[0])
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"1", ""}) {
		t.Errorf("expected padded copy, got %v", table.Rows[0])
	}
}

func TestNewTableRejectsEmptyHeader(t *testing.T) {
	_, err := NewTable(nil, nil)
	if !errors.Is(err, core.ErrEmptyHeader) {
		t.Fatalf("expected empty header error, got %v", err)
	}
}

func TestCategoricalLabelSentinel(t *testing.T) {
	col := &CategoricalColumn{
		Name:    "c",
		Values:  []string{"x", ""},
		Missing: []bool{false, true},
	}
	if col.Label(0) != "x" {
		t.Errorf("expected x, got %q", col.Label(0))
	}
	if col.Label(1) != MissingLabel {
		t.Errorf("expected %q, got %q", MissingLabel, col.Label(1))
	}
}

func TestNumericPresent(t *testing.T) {
	col := &NumericColumn{
		Name:    "n",
		Values:  []float64{1, 0, 3},
		Missing: []bool{false, true, false},
	}
	if !reflect.DeepEqual(col.Present(), []float64{1, 3}) {
		t.Errorf("expected [1 3], got %v", col.Present())
	}
	if col.MissingCount() != 1 {
		t.Errorf("expected 1 missing, got %d", col.MissingCount())
	}
}

func TestFrameLookupIsKindAware(t *testing.T) {
	frame := &Frame{
		Columns: []Column{
			{Kind: KindNumeric, Numeric: &NumericColumn{Name: "n", Values: []float64{1}, Missing: []bool{false}}},
			{Kind: KindCategorical, Categorical: &CategoricalColumn{Name: "c", Values: []string{"x"}, Missing: []bool{false}}},
		},
		RowsN: 1,
	}

	if _, ok := frame.Numeric("c"); ok {
		t.Error("categorical column must not resolve as numeric")
	}
	if _, ok := frame.Categorical("n"); ok {
		t.Error("numeric column must not resolve as categorical")
	}
	if _, ok := frame.Numeric("n"); !ok {
		t.Error("numeric lookup failed")
	}
}
