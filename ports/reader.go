package ports

import (
	"io"

	"scenery/domain/dataset"
)

// DatasetReaderPort parses an uploaded file into a cleaned raw table
// honoring the ingestion contract: unique whitespace-trimmed column
// names, no fully-empty columns, no exact duplicate rows. The engine
// relies on this contract and never re-checks it.
type DatasetReaderPort interface {
	Read(r io.Reader) (*dataset.Table, error)
}
