// Package engine is the summarization-and-chart-selection core: pure,
// synchronous transforms from a classified tabular frame to a report.
// It performs no I/O, keeps no state between calls, and never mutates
// its input; the only declared transforms are top-K category
// truncation and missing-value substitution with the Missing sentinel.
package engine

import (
	"scenery/domain/core"
	"scenery/domain/dataset"
	"scenery/domain/report"
)

// Engine bundles the selector with its palette base color. All methods
// are safe to call concurrently across independent frames.
type Engine struct {
	selector *Selector
}

// New creates an engine with the given palette base color.
func New(baseHex string) *Engine {
	return &Engine{selector: NewSelector(ParseHex(baseHex))}
}

// NewDefault creates an engine with the default base color.
func NewDefault() *Engine {
	return New(DefaultBaseColor)
}

// Selector exposes the chart selector for callers that only want charts.
func (e *Engine) Selector() *Selector {
	return e.selector
}

// BuildReport runs the full pipeline on a raw table: classification,
// summary, stats tables, chart selection and the quality report. The
// reportType label is carried through opaquely; all report types
// receive the same analysis for now. The only error path is a
// malformed table rejected by dataset.NewTable upstream; a well-formed
// empty table produces an empty report, not an error.
func (e *Engine) BuildReport(table *dataset.Table, reportType string, choices report.Choices, maxCategories int) *report.Report {
	frame, class := Classify(table)
	return e.BuildFrameReport(frame, class, reportType, choices, maxCategories)
}

// BuildFrameReport is BuildReport for callers that already hold a
// classified frame.
func (e *Engine) BuildFrameReport(frame *dataset.Frame, class dataset.Classification, reportType string, choices report.Choices, maxCategories int) *report.Report {
	return &report.Report{
		ID:               core.ReportID(core.NewID()),
		ReportType:       reportType,
		GeneratedAt:      core.Now(),
		Classification:   class,
		Summary:          BuildSummary(frame, class, choices.PrimaryNumeric),
		Charts:           e.selector.Select(frame, class, choices, maxCategories),
		NumericStats:     NumericStatsTable(frame),
		CategoricalStats: CategoricalStatsTable(frame),
		Quality:          QualityReport(frame),
	}
}
