package engine

import (
	"math"
	"sort"

	"scenery/domain/dataset"
	"scenery/domain/report"
)

// round2 rounds to the fixed 2-decimal display precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}

// statPtr converts a stats result into a rounded optional field. Small
// samples make some estimators error out with NaN; those stay nil so
// the JSON output never carries NaN.
func statPtr(v float64, err error) *float64 {
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return ptr(round2(v))
}

// valueCounts aggregates labels into descending value counts. Ties keep
// first-encounter order: the sort is stable over the order labels were
// first seen, which makes truncation deterministic across runs.
func valueCounts(labels []string) []report.CategoryCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	entries := make([]report.CategoryCount, 0, len(order))
	for _, label := range order {
		entries = append(entries, report.CategoryCount{
			Label: label,
			Value: float64(counts[label]),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// categoryLabels returns one label per row with the Missing sentinel
// substituted for absent values.
func categoryLabels(col *dataset.CategoricalColumn) []string {
	labels := make([]string, len(col.Values))
	for i := range col.Values {
		labels[i] = col.Label(i)
	}
	return labels
}

// truncate limits a breakdown to its first k entries.
func truncate(entries []report.CategoryCount, k int) []report.CategoryCount {
	if k >= 0 && len(entries) > k {
		return entries[:k]
	}
	return entries
}
