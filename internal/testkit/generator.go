package testkit

import (
	"fmt"
	"math/rand"

	"scenery/domain/dataset"
)

// GeneratorConfig configures the synthetic retail dataset generator
type GeneratorConfig struct {
	Rows        int     `json:"rows"`
	MissingRate float64 `json:"missing_rate"`
	Seed        int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for demo data
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Rows:        500,
		MissingRate: 0.06,
		Seed:        42,
	}
}

// DatasetGenerator produces a deterministic synthetic retail table used
// by the demo endpoint and as a realistic test fixture.
type DatasetGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewDatasetGenerator creates a generator seeded from the config.
func NewDatasetGenerator(config GeneratorConfig) *DatasetGenerator {
	return &DatasetGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var (
	regions  = []string{"North", "South", "East", "West"}
	products = []string{"Widget", "Gadget", "Doohickey", "Gizmo", "Contraption", "Sprocket"}
	remarks  = []string{
		"Delivered on time and matched the catalog description exactly as listed.",
		"Customer reported minor scuffing on the outer packaging but kept the item.",
		"Repeat buyer, requested gift wrapping and a handwritten note for the recipient.",
		"Returned once due to a sizing issue and re-ordered the larger variant the same week.",
		"Shipment delayed by the carrier; a discount voucher was issued as an apology.",
	}
)

// GenerateTable builds the raw table. Some region and revenue cells are
// blanked at MissingRate so missingness paths get exercised.
func (g *DatasetGenerator) GenerateTable() *dataset.Table {
	header := []string{"order_id", "region", "product", "units", "revenue", "remark"}

	rows := make([][]string, 0, g.config.Rows)
	for i := 0; i < g.config.Rows; i++ {
		units := g.rng.Intn(20) + 1
		revenue := float64(units) * (5.0 + g.rng.Float64()*45.0)

		region := regions[g.rng.Intn(len(regions))]
		if g.rng.Float64() < g.config.MissingRate {
			region = ""
		}
		revenueCell := fmt.Sprintf("%.2f", revenue)
		if g.rng.Float64() < g.config.MissingRate {
			revenueCell = ""
		}

		rows = append(rows, []string{
			fmt.Sprintf("ORD-%05d", i+1),
			region,
			products[g.rng.Intn(len(products))],
			fmt.Sprintf("%d", units),
			revenueCell,
			remarks[g.rng.Intn(len(remarks))],
		})
	}

	return &dataset.Table{Header: header, Rows: rows}
}
