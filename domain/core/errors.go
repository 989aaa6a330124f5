package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Precondition errors - the only hard failures the engine raises
	ErrMalformedTable = errors.New("malformed tabular input")
	ErrEmptyHeader    = fmt.Errorf("%w: no header row", ErrMalformedTable)
	ErrRaggedRow      = fmt.Errorf("%w: row wider than header", ErrMalformedTable)

	// Ingestion errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoDataRows        = errors.New("file must have a header row and at least one data row")
)

// NewRaggedRowError reports the 1-based index of a row wider than the
// header.
func NewRaggedRowError(row int) error {
	return fmt.Errorf("%w: row %d", ErrRaggedRow, row)
}

// Error checking helpers
func IsMalformedTableError(err error) bool {
	return errors.Is(err, ErrMalformedTable)
}
