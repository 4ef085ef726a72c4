package profiling

import (
	"strconv"

	"github.com/montanaflynn/stats"

	"projectpulse/domain/table"
)

// numericThreshold is the share of non-missing cells that must parse as
// numbers before a column gets numeric summary statistics.
const numericThreshold = 0.6

// ColumnSummary describes one column of a loaded dataset.
type ColumnSummary struct {
	Name          string  `json:"name"`
	DistinctCount int     `json:"distinct_count"`
	MissingCount  int     `json:"missing_count"`
	MissingRate   float64 `json:"missing_rate"`
	Numeric       bool    `json:"numeric"`
	Min           float64 `json:"min,omitempty"`
	Max           float64 `json:"max,omitempty"`
	Mean          float64 `json:"mean,omitempty"`
	Median        float64 `json:"median,omitempty"`
}

// TableSummary is the dataset profile shown after an upload.
type TableSummary struct {
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnSummary `json:"columns"`
}

// Summarize profiles every column of the table. Columns whose
// non-missing values are mostly numeric also get min/max/mean/median.
func Summarize(t *table.Table) TableSummary {
	summary := TableSummary{
		RowCount:    len(t.Rows),
		ColumnCount: len(t.Columns),
		Columns:     make([]ColumnSummary, 0, len(t.Columns)),
	}

	for _, col := range t.Columns {
		summary.Columns = append(summary.Columns, summarizeColumn(t, col))
	}
	return summary
}

func summarizeColumn(t *table.Table, col string) ColumnSummary {
	cs := ColumnSummary{Name: col}

	distinct := make(map[string]bool)
	var numbers []float64
	present := 0

	for _, row := range t.Rows {
		val := row[col]
		if val == "" {
			cs.MissingCount++
			continue
		}
		present++
		distinct[val] = true
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			numbers = append(numbers, n)
		}
	}

	cs.DistinctCount = len(distinct)
	if len(t.Rows) > 0 {
		cs.MissingRate = float64(cs.MissingCount) / float64(len(t.Rows))
	}

	if present == 0 || float64(len(numbers))/float64(present) < numericThreshold {
		return cs
	}

	cs.Numeric = true
	// stats errors only on empty input, which is excluded above
	cs.Min, _ = stats.Min(numbers)
	cs.Max, _ = stats.Max(numbers)
	cs.Mean, _ = stats.Mean(numbers)
	cs.Median, _ = stats.Median(numbers)
	return cs
}
