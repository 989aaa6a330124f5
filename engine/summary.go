package engine

import (
	"github.com/montanaflynn/stats"

	"scenery/domain/dataset"
	"scenery/domain/report"
)

// topCategoriesShown is how many value/count pairs the categorical
// stats table carries per column.
const topCategoriesShown = 5

// ResolvePrimary returns the effective primary numeric column: the user
// choice when given, otherwise the first numeric column. Returns "" when
// neither resolves to an actual numeric column.
func ResolvePrimary(class dataset.Classification, chosen string) string {
	name := chosen
	if name == "" {
		name = class.FirstNumeric()
	}
	if name == "" || !class.IsNumeric(name) {
		return ""
	}
	return name
}

// BuildSummary computes the dataset-level KPI record. When the primary
// numeric column resolves but holds no non-missing values, every KPI
// field stays nil rather than reporting NaN.
func BuildSummary(frame *dataset.Frame, class dataset.Classification, primaryChoice string) report.Summary {
	summary := report.Summary{
		Rows:             frame.Rows(),
		NumericCount:     len(class.Numeric),
		CategoricalCount: len(class.Categorical) + len(class.TextLike),
		MissingCells:     frame.MissingCells(),
	}

	primary := ResolvePrimary(class, primaryChoice)
	if primary == "" {
		return summary
	}
	col, ok := frame.Numeric(primary)
	if !ok {
		return summary
	}

	summary.PrimaryNumericColumn = primary

	values := col.Present()
	if len(values) == 0 {
		return summary
	}

	summary.Mean = statPtr(stats.Mean(values))
	summary.Median = statPtr(stats.Median(values))
	summary.Min = statPtr(stats.Min(values))
	summary.Max = statPtr(stats.Max(values))
	summary.Sum = statPtr(stats.Sum(values))

	return summary
}

// NumericStatsTable computes the per-column numeric stats table in
// dataset column order.
func NumericStatsTable(frame *dataset.Frame) []report.NumericStatsRow {
	rows := make([]report.NumericStatsRow, 0)
	for _, col := range frame.Columns {
		if col.Kind != dataset.KindNumeric {
			continue
		}
		rows = append(rows, numericStatsRow(col.Numeric))
	}
	return rows
}

func numericStatsRow(col *dataset.NumericColumn) report.NumericStatsRow {
	row := report.NumericStatsRow{Column: col.Name}

	values := col.Present()
	row.Count = len(values)
	if len(values) == 0 {
		return row
	}

	// stats.Percentile rejects samples too small for the requested
	// quartile; those fields stay nil while the rest of the row fills.
	row.Mean = statPtr(stats.Mean(values))
	row.StdDev = statPtr(stats.StandardDeviation(values))
	row.Min = statPtr(stats.Min(values))
	row.P25 = statPtr(stats.Percentile(values, 25))
	row.Median = statPtr(stats.Median(values))
	row.P75 = statPtr(stats.Percentile(values, 75))
	row.Max = statPtr(stats.Max(values))

	return row
}

// CategoricalStatsTable computes the per-column categorical stats table
// in dataset column order. Text-like columns are included: they are
// still categorical, they only sit out of the frequency charts.
func CategoricalStatsTable(frame *dataset.Frame) []report.CategoricalStatsRow {
	rows := make([]report.CategoricalStatsRow, 0)
	for _, col := range frame.Columns {
		if col.Kind != dataset.KindCategorical {
			continue
		}
		rows = append(rows, categoricalStatsRow(col.Categorical))
	}
	return rows
}

func categoricalStatsRow(col *dataset.CategoricalColumn) report.CategoricalStatsRow {
	row := report.CategoricalStatsRow{Column: col.Name}

	counts := valueCounts(categoryLabels(col))
	row.UniqueValues = len(counts)
	if len(counts) == 0 {
		row.TopValues = []report.CategoryCount{}
		return row
	}

	row.TopValue = counts[0].Label
	row.TopCount = int(counts[0].Value)
	row.TopValues = truncate(counts, topCategoriesShown)
	return row
}
