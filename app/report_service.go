package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"scenery/domain/core"
	"scenery/domain/dataset"
	"scenery/domain/report"
	"scenery/engine"
	"scenery/internal"
)

// ReportService orchestrates a full report build. The engine sections
// are pure and share only the immutable frame, so the service fans them
// out across goroutines; the engine itself stays synchronous.
type ReportService struct {
	engine        *engine.Engine
	maxCategories int
	logger        *internal.Logger
}

// NewReportService creates a report service with the default truncation
// width applied when a request does not set one.
func NewReportService(eng *engine.Engine, maxCategories int, logger *internal.Logger) *ReportService {
	if maxCategories <= 0 {
		maxCategories = report.DefaultMaxCategories
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{
		engine:        eng,
		maxCategories: maxCategories,
		logger:        logger,
	}
}

// Build classifies the table once and computes summary, stats tables,
// charts and the quality report in parallel sections.
func (s *ReportService) Build(ctx context.Context, table *dataset.Table, reportType string, choices report.Choices, maxCategories int) (*report.Report, error) {
	if maxCategories <= 0 {
		maxCategories = s.maxCategories
	}

	frame, class := engine.Classify(table)
	s.logger.Debug("classified %d columns: %d numeric, %d categorical, %d text-like",
		len(frame.Columns), len(class.Numeric), len(class.Categorical), len(class.TextLike))

	result := &report.Report{
		ID:             core.ReportID(core.NewID()),
		ReportType:     reportType,
		GeneratedAt:    core.Now(),
		Classification: class,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Summary = engine.BuildSummary(frame, class, choices.PrimaryNumeric)
		result.NumericStats = engine.NumericStatsTable(frame)
		result.CategoricalStats = engine.CategoricalStatsTable(frame)
		return nil
	})
	g.Go(func() error {
		result.Charts = s.engine.Selector().Select(frame, class, choices, maxCategories)
		return nil
	})
	g.Go(func() error {
		result.Quality = engine.QualityReport(frame)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("report %s built: %d rows, %d charts", result.ID, frame.Rows(), len(result.Charts))
	return result, nil
}
