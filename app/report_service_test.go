package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenery/domain/report"
	"scenery/engine"
	"scenery/internal/testkit"
)

func TestReportServiceBuild(t *testing.T) {
	gen := testkit.NewDatasetGenerator(testkit.DefaultGeneratorConfig())
	table := gen.GenerateTable()

	service := NewReportService(engine.NewDefault(), 0, nil)

	result, err := service.Build(context.Background(), table, "demo", report.Choices{
		PrimaryNumeric: "revenue",
		ScatterX:       "units",
		ScatterY:       "revenue",
		CategoryVolume: "region",
		CategoryA:      "region",
		CategoryB:      "product",
		RadialCategory: "product",
		RadialMode:     report.RadialSum,
		RadialValue:    "revenue",
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, "demo", result.ReportType)
	assert.Equal(t, len(table.Rows), result.Summary.Rows)
	assert.NotNil(t, result.Summary.Mean, "revenue KPIs should be available")

	for _, name := range []string{
		report.ChartNumericDistribution,
		report.ChartNumericScatter,
		report.ChartCategoryVolume,
		report.ChartCategoryHeatmap,
		report.ChartRadialDonut,
	} {
		_, ok := result.Chart(name)
		assert.Truef(t, ok, "expected chart %s", name)
	}

	// The remark column is long free text: it feeds the quality table
	// and categorical stats but never the frequency charts.
	assert.Contains(t, result.Classification.TextLike, "remark")
	assert.Len(t, result.Quality, len(table.Header))
}

func TestReportServiceBuildDeterministic(t *testing.T) {
	gen := testkit.NewDatasetGenerator(testkit.DefaultGeneratorConfig())
	table := gen.GenerateTable()
	service := NewReportService(engine.NewDefault(), 0, nil)
	choices := report.Choices{PrimaryNumeric: "revenue", CategoryVolume: "region"}

	first, err := service.Build(context.Background(), table, "", choices, 10)
	require.NoError(t, err)
	second, err := service.Build(context.Background(), table, "", choices, 10)
	require.NoError(t, err)

	// IDs and timestamps differ per invocation; everything computed
	// from the data must not.
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Charts, second.Charts)
	assert.Equal(t, first.NumericStats, second.NumericStats)
	assert.Equal(t, first.CategoricalStats, second.CategoricalStats)
	assert.Equal(t, first.Quality, second.Quality)
}
