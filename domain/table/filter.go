package table

import (
	"sort"
	"strconv"
)

// Filter returns the subset of rows matching every non-empty constraint
// exactly. Constraints on columns the table does not have are ignored.
// Row order is preserved; the result is never nil.
func Filter(t *Table, constraints Constraints) *Table {
	filtered := &Table{
		Columns: t.Columns,
		Rows:    make([]Row, 0, len(t.Rows)),
	}

	active := make(Constraints)
	for col, val := range constraints {
		if val != "" && t.HasColumn(col) {
			active[col] = val
		}
	}

	for _, row := range t.Rows {
		if matches(row, active) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}

func matches(row Row, active Constraints) bool {
	for col, val := range active {
		if row[col] != val {
			return false
		}
	}
	return true
}

// Options returns the sorted, duplicate-free, non-missing values of the
// target column after applying the given constraints. An unknown target
// column yields an empty list.
func Options(t *Table, target string, constraints Constraints) []string {
	if !t.HasColumn(target) {
		return []string{}
	}

	filtered := Filter(t, constraints)

	seen := make(map[string]bool)
	values := make([]string, 0, len(filtered.Rows))
	for _, row := range filtered.Rows {
		val := row[target]
		if val == "" || seen[val] {
			continue
		}
		seen[val] = true
		values = append(values, val)
	}

	sort.Slice(values, func(i, j int) bool {
		return valueLess(values[i], values[j])
	})
	return values
}

// valueLess orders option values ascending by their natural type:
// numeric values sort numerically and ahead of non-numeric values,
// which sort lexically.
func valueLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
