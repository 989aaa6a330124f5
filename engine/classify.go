package engine

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"scenery/domain/dataset"
)

// numericThreshold is the share of non-missing cells that must parse as
// numbers for a column to be treated as numeric. Stray non-numeric
// tokens in a numeric column become missing values instead of demoting
// the whole column.
const numericThreshold = 0.8

// textLikeMeanLength is the mean string length (runes) at which a
// categorical column is considered long free text and excluded from
// category-frequency charts.
const textLikeMeanLength = 30

// Classify inspects every column of a raw table once and produces the
// typed Frame plus the name sets downstream consumers dispatch on. An
// empty table yields an empty frame and three empty sets.
func Classify(table *dataset.Table) (*dataset.Frame, dataset.Classification) {
	frame := &dataset.Frame{
		Columns: make([]dataset.Column, 0, len(table.Header)),
		RowsN:   len(table.Rows),
	}
	class := dataset.Classification{
		Numeric:     []string{},
		Categorical: []string{},
		TextLike:    []string{},
	}

	for j, name := range table.Header {
		cells := make([]string, len(table.Rows))
		for i, row := range table.Rows {
			cells[i] = row[j]
		}

		if isNumericColumn(cells) {
			col := buildNumericColumn(name, cells)
			frame.Columns = append(frame.Columns, dataset.Column{
				Kind:    dataset.KindNumeric,
				Numeric: col,
			})
			class.Numeric = append(class.Numeric, name)
			continue
		}

		col := buildCategoricalColumn(name, cells)
		frame.Columns = append(frame.Columns, dataset.Column{
			Kind:        dataset.KindCategorical,
			Categorical: col,
		})
		if col.TextLike {
			class.TextLike = append(class.TextLike, name)
		} else {
			class.Categorical = append(class.Categorical, name)
		}
	}

	return frame, class
}

// isNumericColumn reports whether enough non-missing cells parse as
// numbers. A column with no non-missing cells is not numeric.
func isNumericColumn(cells []string) bool {
	present := 0
	parsed := 0
	for _, cell := range cells {
		s := strings.TrimSpace(cell)
		if s == "" {
			continue
		}
		present++
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			parsed++
		}
	}
	if present == 0 {
		return false
	}
	return float64(parsed)/float64(present) >= numericThreshold
}

func buildNumericColumn(name string, cells []string) *dataset.NumericColumn {
	col := &dataset.NumericColumn{
		Name:    name,
		Values:  make([]float64, len(cells)),
		Missing: make([]bool, len(cells)),
	}
	for i, cell := range cells {
		s := strings.TrimSpace(cell)
		if s == "" {
			col.Missing[i] = true
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			col.Missing[i] = true
			continue
		}
		col.Values[i] = v
	}
	return col
}

func buildCategoricalColumn(name string, cells []string) *dataset.CategoricalColumn {
	col := &dataset.CategoricalColumn{
		Name:    name,
		Values:  make([]string, len(cells)),
		Missing: make([]bool, len(cells)),
	}
	totalLength := 0
	present := 0
	for i, cell := range cells {
		s := strings.TrimSpace(cell)
		if s == "" {
			col.Missing[i] = true
			continue
		}
		col.Values[i] = s
		totalLength += utf8.RuneCountInString(s)
		present++
	}
	if present > 0 {
		mean := float64(totalLength) / float64(present)
		col.TextLike = mean >= textLikeMeanLength
	}
	return col
}
