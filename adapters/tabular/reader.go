// Package tabular implements the ingestion collaborator: it owns the
// pre-cleaning contract (unique trimmed column names, no empty columns,
// no duplicate rows) so the engine can consume tables without
// re-validating them.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"scenery/domain/core"
	"scenery/ports"
)

// ReaderForFilename picks a reader by file extension.
func ReaderForFilename(filename string) (ports.DatasetReaderPort, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return NewCSVReader(), nil
	case ".xlsx":
		return NewExcelReader(), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, filename)
	}
}
