package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"scenery/domain/core"
	"scenery/domain/dataset"
)

// ExcelReader parses xlsx uploads into cleaned tables.
type ExcelReader struct{}

// NewExcelReader creates a new Excel reader.
func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// Read parses the first sheet of an xlsx workbook. Excelize drops
// trailing blank cells per row; the cleaning step pads them back
// against the header.
func (r *ExcelReader) Read(src io.Reader) (*dataset.Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, core.ErrNoDataRows
	}

	return CleanTable(rows[0], rows[1:])
}
