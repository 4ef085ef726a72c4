package table

// Row represents a single data row as column name → cell value.
// The empty string is a missing cell (both the CSV reader and excelize
// surface blanks that way).
type Row map[string]string

// Table represents an in-memory dataset: ordered column names plus rows.
// Column names are unique after whitespace trimming; every row only
// carries keys from Columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Empty reports whether the table has zero data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Constraints maps column name → selected value. An empty value means
// the column is unconstrained. Callers build a fresh set per request;
// constraint sets are never shared between calls.
type Constraints map[string]string

// CascadeConstraints builds the constraint set for the dashboard's
// Week → Account Name → Client Name → Project Name cascade.
func CascadeConstraints(week, account, client, project string) Constraints {
	return Constraints{
		ColumnWeek:    week,
		ColumnAccount: account,
		ColumnClient:  client,
		ColumnProject: project,
	}
}

// Dashboard cascade columns, in selection order.
const (
	ColumnWeek    = "Week"
	ColumnAccount = "Account Name"
	ColumnClient  = "Client Name"
	ColumnProject = "Project Name"
	ColumnStatus  = "Project Status"
)

// CascadeOrder lists the dropdown columns in the order the user walks
// them; each dropdown's options are resolved under the selections of the
// columns before it.
var CascadeOrder = []string{ColumnWeek, ColumnAccount, ColumnClient, ColumnProject}
