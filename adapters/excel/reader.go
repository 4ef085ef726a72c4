package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"projectpulse/domain/table"
	"projectpulse/internal/errors"

	"github.com/xuri/excelize/v2"
)

// spreadsheetExt is the one workbook format excelize reads (OOXML);
// everything else is read as delimited text. Legacy BIFF .xls is not
// supported.
const spreadsheetExt = ".xlsx"

// LoadTable parses an uploaded dataset stream into a Table. The file
// name's extension selects the parser: spreadsheet extensions go through
// excelize, anything else through the CSV reader. Column names are
// whitespace-trimmed. Malformed input yields a LOAD_FAILED error and no
// partial table.
func LoadTable(filename string, r io.Reader) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var rows [][]string
	var err error
	if ext == spreadsheetExt {
		rows, err = readSpreadsheetRows(r)
	} else {
		rows, err = readCSVRows(r)
	}
	if err != nil {
		log.Printf("[LoadTable] FAILED - Error parsing %s: %v", filename, err)
		return nil, errors.LoadFailed(filename, err)
	}

	t, err := buildTable(rows)
	if err != nil {
		log.Printf("[LoadTable] FAILED - Invalid table in %s: %v", filename, err)
		return nil, errors.LoadFailed(filename, err)
	}

	log.Printf("[LoadTable] Loaded %s (%d columns, %d rows)", filename, len(t.Columns), len(t.Rows))
	return t, nil
}

// readSpreadsheetRows reads the first sheet of an Excel workbook
func readSpreadsheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// readCSVRows reads delimited text, tolerating ragged records
func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return rows, nil
}

// buildTable converts raw string rows into a Table. The first row is the
// header; header cells are trimmed and must be unique after trimming.
func buildTable(rows [][]string) (*table.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file must have a header row")
	}

	headerRow := rows[0]
	headers := make([]string, 0, len(headerRow))
	seen := make(map[string]bool)
	for _, header := range headerRow {
		name := strings.TrimSpace(header)
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q after trimming", name)
		}
		seen[name] = true
		headers = append(headers, name)
	}

	dataRows := make([]table.Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(table.Row, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &table.Table{
		Columns: headers,
		Rows:    dataRows,
	}, nil
}
