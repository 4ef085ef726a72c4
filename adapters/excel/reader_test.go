package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectpulse/domain/table"
	"projectpulse/internal/errors"
	"projectpulse/internal/testkit"
)

func TestLoadTableCSV(t *testing.T) {
	demo := testkit.DemoTable()

	loaded, err := LoadTable("projects.csv", bytes.NewReader(testkit.CSVBytes(demo)))
	require.NoError(t, err)

	assert.Equal(t, demo.Columns, loaded.Columns)
	assert.Equal(t, demo.RowCount(), loaded.RowCount())
	assert.Equal(t, demo.Rows[0], loaded.Rows[0])
}

func TestLoadTableXLSX(t *testing.T) {
	demo := testkit.DemoTable()
	workbook, err := testkit.XLSXBytes(demo)
	require.NoError(t, err)

	loaded, err := LoadTable("projects.xlsx", bytes.NewReader(workbook))
	require.NoError(t, err)

	assert.Equal(t, demo.Columns, loaded.Columns)
	assert.Equal(t, demo.RowCount(), loaded.RowCount())
	assert.Equal(t, demo.Rows[0], loaded.Rows[0])
	assert.Equal(t, demo.Rows[demo.RowCount()-1], loaded.Rows[loaded.RowCount()-1])
}

func TestLoadTableTrimsHeaderWhitespace(t *testing.T) {
	csvData := "  Week , Account Name ,Project Status\nW1,Acme,On Track\n"

	loaded, err := LoadTable("report.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, []string{"Week", "Account Name", "Project Status"}, loaded.Columns)

	// Re-filtering by the trimmed name succeeds.
	filtered := table.Filter(loaded, table.Constraints{"Week": "W1"})
	assert.Equal(t, 1, filtered.RowCount())
	assert.Equal(t, "Acme", filtered.Rows[0]["Account Name"])
}

func TestLoadTableMalformedCSV(t *testing.T) {
	csvData := "Week,Account\n\"unterminated,Acme\n"

	loaded, err := LoadTable("broken.csv", strings.NewReader(csvData))
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.Equal(t, errors.CodeLoadFailed, errors.GetCode(err))
}

func TestLoadTableMalformedWorkbook(t *testing.T) {
	loaded, err := LoadTable("broken.xlsx", strings.NewReader("this is not a zip archive"))
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.Equal(t, errors.CodeLoadFailed, errors.GetCode(err))
}

func TestLoadTableEmptyInput(t *testing.T) {
	loaded, err := LoadTable("empty.csv", strings.NewReader(""))
	require.Error(t, err)
	assert.Nil(t, loaded)
}

func TestLoadTableHeaderOnly(t *testing.T) {
	loaded, err := LoadTable("header.csv", strings.NewReader("Week,Account Name\n"))
	require.NoError(t, err)
	assert.True(t, loaded.Empty())
	assert.Equal(t, []string{"Week", "Account Name"}, loaded.Columns)
}

func TestLoadTableDuplicateColumnsAfterTrim(t *testing.T) {
	loaded, err := LoadTable("dup.csv", strings.NewReader("Week, Week \nW1,W2\n"))
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.Equal(t, errors.CodeLoadFailed, errors.GetCode(err))
}

func TestLoadTableRaggedRows(t *testing.T) {
	csvData := "Week,Account Name,Project Status\nW1,Acme\nW2,Umbrella,On Track,extra\n"

	loaded, err := LoadTable("ragged.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 2, loaded.RowCount())

	// Short row: missing trailing cell; long row: overflow is dropped.
	assert.Equal(t, "", loaded.Rows[0]["Project Status"])
	assert.Equal(t, "On Track", loaded.Rows[1]["Project Status"])
}
