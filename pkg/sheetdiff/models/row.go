package models

// RowRecord is one data row of a table with its original position.
type RowRecord struct {
	// Position is the zero-based index of the row in the source table.
	Position int
	// Cells holds the row's values from the first column on.
	Cells []Value
}

// Cell returns the value at a zero-based column index, or empty when the
// row is shorter.
func (r RowRecord) Cell(idx int) Value {
	if idx < 0 || idx >= len(r.Cells) {
		return Value{}
	}
	return r.Cells[idx]
}

// Table is a header row followed by data rows.
type Table struct {
	// Header holds the column names from the first row.
	Header []string
	// Rows holds the data rows in source order.
	Rows []RowRecord
}
