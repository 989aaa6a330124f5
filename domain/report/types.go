package report

import (
	"scenery/domain/core"
	"scenery/domain/dataset"
)

// RadialMode selects the aggregation for the donut chart
type RadialMode string

const (
	RadialCount RadialMode = "count"
	RadialSum   RadialMode = "sum"
)

// DefaultMaxCategories is the truncation width applied to categorical
// breakdowns when the caller does not set one.
const DefaultMaxCategories = 20

// Choices carries the user-selected columns driving chart selection.
// Every field is optional; an absent or wrongly-typed reference makes
// the affected chart silently inapplicable, never an error.
type Choices struct {
	PrimaryNumeric   string     `json:"primary_numeric,omitempty"`
	ScatterX         string     `json:"scatter_x,omitempty"`
	ScatterY         string     `json:"scatter_y,omitempty"`
	CategoryVolume   string     `json:"category_volume,omitempty"`
	CategoryA        string     `json:"category_a,omitempty"`
	CategoryB        string     `json:"category_b,omitempty"`
	RadialCategory   string     `json:"radial_category_col,omitempty"`
	RadialCategories []string   `json:"radial_categories,omitempty"`
	RadialMode       RadialMode `json:"radial_mode,omitempty"`
	RadialValue      string     `json:"radial_value_col,omitempty"`
}

// Summary is the dataset-level KPI record. Pointer fields are nil when
// the statistic is not available (no primary column chosen, or the
// chosen column has no non-missing values) so JSON reports null rather
// than NaN.
type Summary struct {
	Rows                 int      `json:"rows"`
	NumericCount         int      `json:"numeric_count"`
	CategoricalCount     int      `json:"categorical_count"`
	MissingCells         int      `json:"missing_cells"`
	PrimaryNumericColumn string   `json:"primary_numeric_column,omitempty"`
	Mean                 *float64 `json:"mean"`
	Median               *float64 `json:"median"`
	Min                  *float64 `json:"min"`
	Max                  *float64 `json:"max"`
	Sum                  *float64 `json:"sum"`
}

// ChartKind tags the chart spec union
type ChartKind string

const (
	KindHistogram   ChartKind = "histogram"
	KindScatter     ChartKind = "scatter"
	KindCategoryBar ChartKind = "category_bar"
	KindHeatmap     ChartKind = "heatmap"
	KindDonut       ChartKind = "donut"
	KindLengthHist  ChartKind = "length_histogram"
)

// Stable chart name keys, so a UI can look up a specific chart.
const (
	ChartNumericDistribution = "numeric_distribution"
	ChartNumericScatter      = "numeric_scatter"
	ChartCategoryVolume      = "category_volume"
	ChartCategoryHeatmap     = "category_heatmap"
	ChartRadialDonut         = "radial_donut"
	ChartTextLength          = "text_length_distribution"
)

// CategoryCount is one label/value pair of an aggregated breakdown.
type CategoryCount struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScatterPoint is one x/y pair where both coordinates are present.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HistogramSpec carries raw values for a numeric distribution chart;
// binning is the renderer's decision.
type HistogramSpec struct {
	Column string    `json:"column"`
	Values []float64 `json:"values"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
}

// ScatterSpec carries paired points for a numeric comparison chart.
// Correlation is the Pearson coefficient of the plotted pairs, nil when
// fewer than two pairs survive.
type ScatterSpec struct {
	XColumn     string         `json:"x_column"`
	YColumn     string         `json:"y_column"`
	Points      []ScatterPoint `json:"points"`
	Correlation *float64       `json:"correlation"`
}

// CategoryVolumeSpec carries truncated value counts for a bar chart.
type CategoryVolumeSpec struct {
	Column  string          `json:"column"`
	Entries []CategoryCount `json:"entries"`
}

// HeatmapSpec carries a contingency table of two categorical columns.
// Each axis is truncated to its own top categories independently;
// out-of-window values are dropped, so cell totals may undercount the
// full dataset.
type HeatmapSpec struct {
	RowColumn string   `json:"row_column"`
	ColColumn string   `json:"col_column"`
	RowLabels []string `json:"row_labels"`
	ColLabels []string `json:"col_labels"`
	Counts    [][]int  `json:"counts"`
}

// RadialSpec carries aggregated slices for a donut chart, sorted by
// value descending with shades assigned in the same order.
type RadialSpec struct {
	Column      string          `json:"column"`
	Mode        RadialMode      `json:"mode"`
	ValueColumn string          `json:"value_column,omitempty"`
	ValueLabel  string          `json:"value_label"`
	Slices      []CategoryCount `json:"slices"`
	Hole        float64         `json:"hole"`
}

// LengthHistogramSpec carries per-value string lengths of a text-like
// column, which replaces the category charts such a column cannot feed.
type LengthHistogramSpec struct {
	Column  string    `json:"column"`
	Lengths []float64 `json:"lengths"`
}

// ChartSpec is a tagged variant: exactly one payload matching Kind is
// set. Colors is the palette assignment for the chart's series; a
// single-element palette acts as the accent color.
type ChartSpec struct {
	Kind     ChartKind `json:"kind"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Colors   []string  `json:"colors,omitempty"`

	Histogram       *HistogramSpec       `json:"histogram,omitempty"`
	Scatter         *ScatterSpec         `json:"scatter,omitempty"`
	CategoryVolume  *CategoryVolumeSpec  `json:"category_volume,omitempty"`
	Heatmap         *HeatmapSpec         `json:"heatmap,omitempty"`
	Radial          *RadialSpec          `json:"radial,omitempty"`
	LengthHistogram *LengthHistogramSpec `json:"length_histogram,omitempty"`
}

// NamedChart pairs a chart spec with its stable lookup key.
type NamedChart struct {
	Name string    `json:"name"`
	Spec ChartSpec `json:"spec"`
}

// NumericStatsRow is one row of the numeric stats table. Pointer fields
// are nil when the column has no non-missing values.
type NumericStatsRow struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	StdDev *float64 `json:"std"`
	Min    *float64 `json:"min"`
	P25    *float64 `json:"p25"`
	Median *float64 `json:"p50"`
	P75    *float64 `json:"p75"`
	Max    *float64 `json:"max"`
}

// CategoricalStatsRow is one row of the categorical stats table.
type CategoricalStatsRow struct {
	Column       string          `json:"column"`
	UniqueValues int             `json:"unique_values"`
	TopValue     string          `json:"top_value"`
	TopCount     int             `json:"top_count"`
	TopValues    []CategoryCount `json:"top_values"`
}

// QualityRow is one row of the data-quality table.
type QualityRow struct {
	Column         string  `json:"column"`
	MissingCount   int     `json:"missing_count"`
	MissingPercent float64 `json:"missing_percent"`
	UniqueValues   int     `json:"unique_values"`
	TopValue       string  `json:"top_value"`
	TopCount       int     `json:"top_count"`
}

// Report is the complete engine output: plain serializable data with no
// references back into the engine. Built fresh on every invocation and
// never persisted.
type Report struct {
	ID               core.ReportID          `json:"id"`
	ReportType       string                 `json:"report_type,omitempty"`
	GeneratedAt      core.Timestamp         `json:"generated_at"`
	Classification   dataset.Classification `json:"classification"`
	Summary          Summary                `json:"summary"`
	Charts           []NamedChart           `json:"charts"`
	NumericStats     []NumericStatsRow      `json:"numeric_stats"`
	CategoricalStats []CategoricalStatsRow  `json:"categorical_stats"`
	Quality          []QualityRow           `json:"quality"`
}

// Chart looks up a chart by its stable name key.
func (r *Report) Chart(name string) (ChartSpec, bool) {
	for _, nc := range r.Charts {
		if nc.Name == name {
			return nc.Spec, true
		}
	}
	return ChartSpec{}, false
}
