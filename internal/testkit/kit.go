package testkit

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"projectpulse/domain/table"
)

// DemoTable returns a deterministic project-tracking dataset. It backs
// the DEMO_DATA boot mode and the loader/pipeline tests.
func DemoTable() *table.Table {
	columns := []string{
		table.ColumnWeek,
		table.ColumnAccount,
		table.ColumnClient,
		table.ColumnProject,
		table.ColumnStatus,
		"Budget",
	}

	data := [][]string{
		{"W1", "Acme", "Globex", "Apollo", "On Track", "12000"},
		{"W1", "Acme", "Globex", "Borealis", "At Risk", "8000"},
		{"W1", "Acme", "Initech", "Cascade", "On Track", "15500"},
		{"W1", "Umbrella", "Initech", "Drift", "Delayed", "9000"},
		{"W1", "Umbrella", "Soylent", "Ember", "On Track", "4200"},
		{"W2", "Acme", "Globex", "Apollo", "At Risk", "12000"},
		{"W2", "Acme", "Initech", "Cascade", "Delayed", "15500"},
		{"W2", "Umbrella", "Soylent", "Ember", "On Track", "4200"},
		{"W2", "Umbrella", "Soylent", "Flare", "Blocked", ""},
		{"W3", "Acme", "Globex", "Borealis", "On Track", "8000"},
		{"W3", "Umbrella", "Initech", "Drift", "On Track", "9000"},
		{"W3", "Acme", "Soylent", "Glacier", "At Risk", "6700"},
	}

	rows := make([]table.Row, 0, len(data))
	for _, record := range data {
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return &table.Table{Columns: columns, Rows: rows}
}

// CSVBytes serializes a table as CSV, header row first.
func CSVBytes(t *table.Table) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(t.Columns)
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		_ = w.Write(record)
	}
	w.Flush()
	return buf.Bytes()
}

// XLSXBytes serializes a table as a single-sheet Excel workbook.
func XLSXBytes(t *table.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range t.Rows {
		record := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			record[j] = row[col]
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
