package services

import (
	"html"
	"strings"

	"projectpulse/domain/table"
)

// StatusPalette is the fixed cycle of Project Status cell backgrounds:
// Green, Amber Green, Amber, Red Amber, Red. Cells are colored by row
// position in the rendered table, not by status value.
var StatusPalette = []string{"#4CAF50", "#FFC107", "#FF9800", "#8B0000", "#FF0000"}

// NoDataMessage is returned when a zero-row table is rendered.
const NoDataMessage = "<p>No data available.</p>"

const (
	cellStyle       = "border: 1px solid #ddd; padding: 8px;"
	headerCellStyle = "border: 1px solid #ddd; padding: 8px; text-align: left;"
)

// StatusColor returns the background color for the Project Status cell
// at the given row position in the filtered table.
func StatusColor(rowIndex int) string {
	return StatusPalette[rowIndex%len(StatusPalette)]
}

// RenderStatusTable converts a table into an HTML fragment with inline
// styles. The Project Status column's cells cycle through StatusPalette
// by row position; all other cells get the neutral border/padding style.
func RenderStatusTable(t *table.Table) string {
	if t.Empty() {
		return NoDataMessage
	}

	var buf strings.Builder
	buf.WriteString("<table style='width:100%; border-collapse: collapse;'>")

	buf.WriteString("<tr style='background-color: #f2f2f2;'>")
	for _, col := range t.Columns {
		buf.WriteString("<th style='" + headerCellStyle + "'>")
		buf.WriteString(html.EscapeString(col))
		buf.WriteString("</th>")
	}
	buf.WriteString("</tr>")

	for i, row := range t.Rows {
		buf.WriteString("<tr>")
		for _, col := range t.Columns {
			if col == table.ColumnStatus {
				buf.WriteString("<td style='" + cellStyle + " background-color: " + StatusColor(i) + "; color: white; font-weight: bold;'>")
			} else {
				buf.WriteString("<td style='" + cellStyle + "'>")
			}
			buf.WriteString(html.EscapeString(row[col]))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	}

	buf.WriteString("</table>")
	return buf.String()
}
