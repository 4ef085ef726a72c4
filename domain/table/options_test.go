package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsUnconstrainedEqualsDistinctColumn(t *testing.T) {
	tbl := trackingTable()

	opts := Options(tbl, ColumnWeek, Constraints{})
	assert.Equal(t, []string{"W1", "W2", "W3"}, opts)

	opts = Options(tbl, ColumnAccount, Constraints{})
	assert.Equal(t, []string{"Acme", "Umbrella"}, opts)
}

func TestOptionsCascadeNarrows(t *testing.T) {
	tbl := trackingTable()

	opts := Options(tbl, ColumnClient, Constraints{ColumnWeek: "W2"})
	assert.Equal(t, []string{"Globex", "Soylent"}, opts)

	opts = Options(tbl, ColumnClient, Constraints{ColumnWeek: "W2", ColumnAccount: "Acme"})
	assert.Equal(t, []string{"Globex"}, opts)
}

func TestOptionsExcludesMissingValues(t *testing.T) {
	tbl := trackingTable()
	tbl.Rows[0][ColumnStatus] = ""
	tbl.Rows[3][ColumnStatus] = ""

	opts := Options(tbl, ColumnStatus, Constraints{})
	assert.NotContains(t, opts, "")
	assert.Equal(t, []string{"At Risk", "Blocked", "Delayed", "On Track"}, opts)
}

func TestOptionsDeduplicates(t *testing.T) {
	tbl := trackingTable()

	opts := Options(tbl, ColumnProject, Constraints{ColumnProject: "Apollo"})
	assert.Equal(t, []string{"Apollo"}, opts)
}

func TestOptionsUnknownTargetColumn(t *testing.T) {
	tbl := trackingTable()

	opts := Options(tbl, "Region", Constraints{})
	assert.NotNil(t, opts)
	assert.Empty(t, opts)
}

func TestOptionsIgnoresConstraintsOnAbsentColumns(t *testing.T) {
	tbl := trackingTable()

	opts := Options(tbl, ColumnWeek, Constraints{"Region": "EMEA"})
	assert.Equal(t, []string{"W1", "W2", "W3"}, opts)
}

func TestOptionsNumericAwareSort(t *testing.T) {
	tbl := &Table{
		Columns: []string{"Sprint"},
		Rows: []Row{
			{"Sprint": "10"},
			{"Sprint": "2"},
			{"Sprint": "kickoff"},
			{"Sprint": "1"},
		},
	}

	opts := Options(tbl, "Sprint", Constraints{})
	assert.Equal(t, []string{"1", "2", "10", "kickoff"}, opts)
}
