package tabular

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"scenery/domain/core"
)

func TestCSVReaderRead(t *testing.T) {
	src := strings.NewReader("amount, region\n10,North\n20,South\n10,North\n")

	table, err := NewCSVReader().Read(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(table.Header, []string{"amount", "region"}) {
		t.Errorf("unexpected header %v", table.Header)
	}
	// Duplicate row dropped by the cleaning contract.
	if len(table.Rows) != 2 {
		t.Errorf("expected 2 rows after dedupe, got %d", len(table.Rows))
	}
}

func TestCSVReaderRequiresDataRows(t *testing.T) {
	for _, src := range []string{"", "only,a,header\n"} {
		_, err := NewCSVReader().Read(strings.NewReader(src))
		if !errors.Is(err, core.ErrNoDataRows) {
			t.Errorf("input %q: expected ErrNoDataRows, got %v", src, err)
		}
	}
}

func TestCSVReaderRaggedRows(t *testing.T) {
	src := strings.NewReader("a,b,c\n1,2\n3,4,5\n")

	table, err := NewCSVReader().Read(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"1", "2", ""}) {
		t.Errorf("short CSV rows must pad against the header, got %v", table.Rows[0])
	}
}

func TestReaderForFilename(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"data.csv", false},
		{"DATA.CSV", false},
		{"book.xlsx", false},
		{"notes.txt", true},
		{"archive.zip", true},
	}
	for _, tt := range tests {
		_, err := ReaderForFilename(tt.filename)
		if tt.wantErr && !errors.Is(err, core.ErrUnsupportedFormat) {
			t.Errorf("%s: expected unsupported format error, got %v", tt.filename, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tt.filename, err)
		}
	}
}
