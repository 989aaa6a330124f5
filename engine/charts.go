package engine

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"scenery/domain/dataset"
	"scenery/domain/report"
)

// donutHole is the inner radius fraction of the radial breakdown.
const donutHole = 0.55

// Selector decides which charts are producible from a classified frame
// and the user's column choices. It holds only the palette base color;
// every Select call is pure.
type Selector struct {
	base RGB
}

// NewSelector creates a chart selector seeded with a palette base color.
func NewSelector(base RGB) *Selector {
	return &Selector{base: base}
}

// NewDefaultSelector creates a selector with the default base color.
func NewDefaultSelector() *Selector {
	return NewSelector(ParseHex(DefaultBaseColor))
}

// Select evaluates all chart kinds independently and returns the specs
// whose applicability predicate holds, keyed by stable names. A column
// reference that is absent or has the wrong type omits that chart and
// never errors: the caller renders "not enough data" instead. A frame
// with no data rows produces no charts at all.
func (s *Selector) Select(frame *dataset.Frame, class dataset.Classification, choices report.Choices, maxCategories int) []report.NamedChart {
	if maxCategories <= 0 {
		maxCategories = report.DefaultMaxCategories
	}
	if frame.Rows() == 0 {
		return []report.NamedChart{}
	}

	charts := make([]report.NamedChart, 0, 6)

	if spec, ok := s.buildHistogram(frame, class, choices); ok {
		charts = append(charts, report.NamedChart{Name: report.ChartNumericDistribution, Spec: spec})
	}
	if spec, ok := s.buildScatter(frame, class, choices); ok {
		charts = append(charts, report.NamedChart{Name: report.ChartNumericScatter, Spec: spec})
	}
	if spec, ok := s.buildCategoryVolume(frame, class, choices, maxCategories); ok {
		charts = append(charts, report.NamedChart{Name: report.ChartCategoryVolume, Spec: spec})
	}
	if spec, ok := s.buildTextLength(frame, class, choices); ok {
		charts = append(charts, report.NamedChart{Name: report.ChartTextLength, Spec: spec})
	}
	if spec, ok := s.buildHeatmap(frame, class, choices, maxCategories); ok {
		charts = append(charts, report.NamedChart{Name: report.ChartCategoryHeatmap, Spec: spec})
	}
	if spec, ok := s.buildRadial(frame, class, choices, maxCategories); ok {
		charts = append(charts, report.NamedChart{Name: report.ChartRadialDonut, Spec: spec})
	}

	return charts
}

// buildHistogram passes the primary numeric column through untouched;
// binning is the renderer's decision.
func (s *Selector) buildHistogram(frame *dataset.Frame, class dataset.Classification, choices report.Choices) (report.ChartSpec, bool) {
	primary := ResolvePrimary(class, choices.PrimaryNumeric)
	if primary == "" {
		return report.ChartSpec{}, false
	}
	col, ok := frame.Numeric(primary)
	if !ok {
		return report.ChartSpec{}, false
	}

	return report.ChartSpec{
		Kind:     report.KindHistogram,
		Title:    fmt.Sprintf("Distribution of %s", primary),
		Subtitle: "Frequency of values across the dataset",
		Colors:   []string{s.base.Hex()},
		Histogram: &report.HistogramSpec{
			Column: primary,
			Values: col.Present(),
			XLabel: primary,
			YLabel: "Frequency",
		},
	}, true
}

func (s *Selector) buildScatter(frame *dataset.Frame, class dataset.Classification, choices report.Choices) (report.ChartSpec, bool) {
	x, y := choices.ScatterX, choices.ScatterY
	if x == "" || y == "" || x == y {
		return report.ChartSpec{}, false
	}
	if !class.IsNumeric(x) || !class.IsNumeric(y) {
		return report.ChartSpec{}, false
	}
	xCol, okX := frame.Numeric(x)
	yCol, okY := frame.Numeric(y)
	if !okX || !okY {
		return report.ChartSpec{}, false
	}

	points := make([]report.ScatterPoint, 0, frame.Rows())
	xs := make([]float64, 0, frame.Rows())
	ys := make([]float64, 0, frame.Rows())
	for i := 0; i < frame.Rows(); i++ {
		if xCol.Missing[i] || yCol.Missing[i] {
			continue
		}
		points = append(points, report.ScatterPoint{X: xCol.Values[i], Y: yCol.Values[i]})
		xs = append(xs, xCol.Values[i])
		ys = append(ys, yCol.Values[i])
	}

	spec := &report.ScatterSpec{
		XColumn: x,
		YColumn: y,
		Points:  points,
	}
	if len(points) >= 2 {
		if r := stat.Correlation(xs, ys, nil); !math.IsNaN(r) {
			spec.Correlation = ptr(round2(r))
		}
	}

	return report.ChartSpec{
		Kind:    report.KindScatter,
		Title:   fmt.Sprintf("%s vs. %s", y, x),
		Colors:  []string{s.base.Hex()},
		Scatter: spec,
	}, true
}

func (s *Selector) buildCategoryVolume(frame *dataset.Frame, class dataset.Classification, choices report.Choices, maxCategories int) (report.ChartSpec, bool) {
	name := choices.CategoryVolume
	if name == "" || !class.IsCategorical(name) {
		return report.ChartSpec{}, false
	}
	col, ok := frame.Categorical(name)
	if !ok {
		return report.ChartSpec{}, false
	}

	entries := truncate(valueCounts(categoryLabels(col)), maxCategories)

	return report.ChartSpec{
		Kind:   report.KindCategoryBar,
		Title:  fmt.Sprintf("Category Distribution: %s", name),
		Colors: Shades(s.base, len(entries)),
		CategoryVolume: &report.CategoryVolumeSpec{
			Column:  name,
			Entries: entries,
		},
	}, true
}

// buildTextLength replaces the category-volume chart when the chosen
// column is long free text: category frequencies on such a column are
// noise, value lengths still have a shape.
func (s *Selector) buildTextLength(frame *dataset.Frame, class dataset.Classification, choices report.Choices) (report.ChartSpec, bool) {
	name := choices.CategoryVolume
	if name == "" || !class.IsTextLike(name) {
		return report.ChartSpec{}, false
	}
	col, ok := frame.Categorical(name)
	if !ok {
		return report.ChartSpec{}, false
	}

	lengths := make([]float64, 0, len(col.Values))
	for i := range col.Values {
		if col.Missing[i] {
			continue
		}
		lengths = append(lengths, float64(utf8.RuneCountInString(col.Values[i])))
	}

	return report.ChartSpec{
		Kind:     report.KindLengthHist,
		Title:    fmt.Sprintf("Text Length Distribution: %s", name),
		Subtitle: "Length in characters of each value",
		Colors:   []string{s.base.Hex()},
		LengthHistogram: &report.LengthHistogramSpec{
			Column:  name,
			Lengths: lengths,
		},
	}, true
}

// buildHeatmap cross-tabulates two categorical columns. Each axis is
// truncated to its own top categories first; values outside either
// window are dropped from the matrix, not merged into an "Other"
// bucket, so cell totals may undercount the full dataset.
func (s *Selector) buildHeatmap(frame *dataset.Frame, class dataset.Classification, choices report.Choices, maxCategories int) (report.ChartSpec, bool) {
	a, b := choices.CategoryA, choices.CategoryB
	if a == "" || b == "" || a == b {
		return report.ChartSpec{}, false
	}
	if !class.IsCategorical(a) || !class.IsCategorical(b) {
		return report.ChartSpec{}, false
	}
	aCol, okA := frame.Categorical(a)
	bCol, okB := frame.Categorical(b)
	if !okA || !okB {
		return report.ChartSpec{}, false
	}

	aLabels := categoryLabels(aCol)
	bLabels := categoryLabels(bCol)

	rowLabels := topLabels(aLabels, maxCategories)
	colLabels := topLabels(bLabels, maxCategories)

	rowIndex := indexOf(rowLabels)
	colIndex := indexOf(colLabels)

	counts := make([][]int, len(rowLabels))
	for i := range counts {
		counts[i] = make([]int, len(colLabels))
	}
	for i := 0; i < frame.Rows(); i++ {
		ri, okR := rowIndex[aLabels[i]]
		ci, okC := colIndex[bLabels[i]]
		if !okR || !okC {
			continue
		}
		counts[ri][ci]++
	}

	return report.ChartSpec{
		Kind:   report.KindHeatmap,
		Title:  fmt.Sprintf("Category Relationship: %s vs. %s", a, b),
		Colors: Shades(s.base, 2),
		Heatmap: &report.HeatmapSpec{
			RowColumn: a,
			ColColumn: b,
			RowLabels: rowLabels,
			ColLabels: colLabels,
			Counts:    counts,
		},
	}, true
}

func (s *Selector) buildRadial(frame *dataset.Frame, class dataset.Classification, choices report.Choices, maxCategories int) (report.ChartSpec, bool) {
	name := choices.RadialCategory
	if name == "" || !class.IsCategorical(name) {
		return report.ChartSpec{}, false
	}
	col, ok := frame.Categorical(name)
	if !ok {
		return report.ChartSpec{}, false
	}

	labels := categoryLabels(col)
	allowed := allowSet(choices.RadialCategories)

	var slices []report.CategoryCount
	valueLabel := "Count"
	title := fmt.Sprintf("Category Breakdown: %s", name)
	mode := report.RadialCount
	valueColumn := ""

	sumCol, sumOK := frame.Numeric(choices.RadialValue)
	if choices.RadialMode == report.RadialSum && choices.RadialValue != "" && class.IsNumeric(choices.RadialValue) && sumOK {
		mode = report.RadialSum
		valueColumn = choices.RadialValue
		valueLabel = fmt.Sprintf("Total %s", valueColumn)
		title = fmt.Sprintf("Category Breakdown by Total %s", valueColumn)
		slices = groupSums(labels, sumCol, allowed)
	} else {
		filtered := make([]string, 0, len(labels))
		for _, label := range labels {
			if allowed != nil && !allowed[label] {
				continue
			}
			filtered = append(filtered, label)
		}
		slices = valueCounts(filtered)
	}

	slices = truncate(slices, maxCategories)

	return report.ChartSpec{
		Kind:   report.KindDonut,
		Title:  title,
		Colors: Shades(s.base, len(slices)),
		Radial: &report.RadialSpec{
			Column:      name,
			Mode:        mode,
			ValueColumn: valueColumn,
			ValueLabel:  valueLabel,
			Slices:      slices,
			Hole:        donutHole,
		},
	}, true
}

// groupSums aggregates a numeric column by category label, skipping
// missing numeric cells. The allow-list filters rows before
// aggregation; categories whose numeric values are all missing still
// appear with a zero sum.
func groupSums(labels []string, col *dataset.NumericColumn, allowed map[string]bool) []report.CategoryCount {
	sums := make(map[string]float64)
	order := make([]string, 0)
	for i, label := range labels {
		if allowed != nil && !allowed[label] {
			continue
		}
		if _, seen := sums[label]; !seen {
			order = append(order, label)
			sums[label] = 0
		}
		if !col.Missing[i] {
			sums[label] += col.Values[i]
		}
	}

	entries := make([]report.CategoryCount, 0, len(order))
	for _, label := range order {
		entries = append(entries, report.CategoryCount{Label: label, Value: sums[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// topLabels returns the k most frequent labels in descending count
// order, ties kept in first-encounter order.
func topLabels(labels []string, k int) []string {
	counts := truncate(valueCounts(labels), k)
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Label
	}
	return out
}

func indexOf(labels []string) map[string]int {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	return index
}

// allowSet converts an allow-list to a set; nil means no filtering.
func allowSet(categories []string) map[string]bool {
	if len(categories) == 0 {
		return nil
	}
	set := make(map[string]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}
