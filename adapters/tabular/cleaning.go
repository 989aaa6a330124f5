package tabular

import (
	"fmt"
	"strings"

	"scenery/domain/dataset"
)

// CleanTable applies the ingestion contract to freshly parsed cells:
// trims and uniquifies column names, drops fully-empty columns, and
// removes exact duplicate rows. The engine downstream assumes all of
// this has happened.
func CleanTable(header []string, rows [][]string) (*dataset.Table, error) {
	table, err := dataset.NewTable(header, rows)
	if err != nil {
		return nil, err
	}

	names := uniquifyNames(table.Header)
	keep := nonEmptyColumns(names, table.Rows)

	cleanHeader := make([]string, 0, len(keep))
	for _, j := range keep {
		cleanHeader = append(cleanHeader, names[j])
	}

	seen := make(map[string]bool)
	cleanRows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(keep))
		for _, j := range keep {
			cells = append(cells, row[j])
		}
		key := strings.Join(cells, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		cleanRows = append(cleanRows, cells)
	}

	return &dataset.Table{Header: cleanHeader, Rows: cleanRows}, nil
}

// uniquifyNames trims each name and suffixes repeats so every column
// name is unique. Blank names become "column_<n>".
func uniquifyNames(header []string) []string {
	used := make(map[string]bool, len(header))
	names := make([]string, len(header))
	for i, raw := range header {
		name := dataset.NormalizeName(raw)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		candidate := name
		for n := 2; used[candidate]; n++ {
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		used[candidate] = true
		names[i] = candidate
	}
	return names
}

// nonEmptyColumns returns the indexes of columns that hold at least one
// non-blank cell.
func nonEmptyColumns(names []string, rows [][]string) []int {
	keep := make([]int, 0, len(names))
	for j := range names {
		if len(rows) == 0 {
			keep = append(keep, j)
			continue
		}
		empty := true
		for _, row := range rows {
			if strings.TrimSpace(row[j]) != "" {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, j)
		}
	}
	return keep
}
