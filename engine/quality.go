package engine

import (
	"sort"
	"strconv"

	"scenery/domain/dataset"
	"scenery/domain/report"
)

// QualityReport builds the per-column missingness/uniqueness table for
// every column regardless of type. Rows sort by missing count
// descending, then distinct-value count descending, then dataset column
// order, so the worst columns surface first.
func QualityReport(frame *dataset.Frame) []report.QualityRow {
	total := frame.Rows()

	rows := make([]report.QualityRow, 0, len(frame.Columns))
	for _, col := range frame.Columns {
		rows = append(rows, qualityRow(col, total))
	}

	position := make(map[string]int, len(rows))
	for i, row := range rows {
		position[row.Column] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MissingCount != rows[j].MissingCount {
			return rows[i].MissingCount > rows[j].MissingCount
		}
		if rows[i].UniqueValues != rows[j].UniqueValues {
			return rows[i].UniqueValues > rows[j].UniqueValues
		}
		return position[rows[i].Column] < position[rows[j].Column]
	})
	return rows
}

func qualityRow(col dataset.Column, totalRows int) report.QualityRow {
	row := report.QualityRow{
		Column:       col.Name(),
		MissingCount: col.MissingCount(),
	}
	if totalRows > 0 {
		row.MissingPercent = round2(float64(row.MissingCount) / float64(totalRows) * 100)
	}

	counts := valueCounts(columnLabels(col))
	row.UniqueValues = len(counts)
	if len(counts) > 0 {
		row.TopValue = counts[0].Label
		row.TopCount = int(counts[0].Value)
	}
	return row
}

// columnLabels renders every cell of a column as a label with the
// Missing sentinel applied, numeric columns included: the quality scan
// treats all columns alike.
func columnLabels(col dataset.Column) []string {
	switch col.Kind {
	case dataset.KindNumeric:
		labels := make([]string, len(col.Numeric.Values))
		for i, v := range col.Numeric.Values {
			if col.Numeric.Missing[i] {
				labels[i] = dataset.MissingLabel
				continue
			}
			labels[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return labels
	case dataset.KindCategorical:
		return categoryLabels(col.Categorical)
	}
	return nil
}
