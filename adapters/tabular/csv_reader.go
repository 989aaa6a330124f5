package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"scenery/domain/core"
	"scenery/domain/dataset"
)

// CSVReader parses comma-separated uploads into cleaned tables.
type CSVReader struct{}

// NewCSVReader creates a new CSV reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read parses the stream as CSV. Rows may have ragged trailing cells;
// the cleaning step pads them against the header.
func (r *CSVReader) Read(src io.Reader) (*dataset.Table, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, core.ErrNoDataRows
	}

	return CleanTable(records[0], records[1:])
}
