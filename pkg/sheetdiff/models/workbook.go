package models

import "fmt"

// CellAccessor gives random access to one sheet's cell values.
// Rows and columns are 1-based.
type CellAccessor interface {
	Get(row, col int) (Value, error)
}

// Workbook exposes the sheets of an opened spreadsheet.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Sheet returns an accessor for the named sheet.
	Sheet(name string) (CellAccessor, error)
}

// Grid is an in-memory sheet. Grid[0][0] holds cell A1; positions outside
// the grid read as empty.
type Grid [][]Value

// Get implements CellAccessor.
func (g Grid) Get(row, col int) (Value, error) {
	if row < 1 || col < 1 {
		return Value{}, fmt.Errorf("invalid cell coordinates (%d, %d)", row, col)
	}
	if row > len(g) || col > len(g[row-1]) {
		return Value{}, nil
	}
	return g[row-1][col-1], nil
}

// MemWorkbook is a Workbook held entirely in memory.
type MemWorkbook struct {
	// Names lists the sheets in workbook order.
	Names []string
	// Sheets maps sheet name to its cells.
	Sheets map[string]Grid
}

// SheetNames implements Workbook.
func (w *MemWorkbook) SheetNames() []string {
	return w.Names
}

// Sheet implements Workbook.
func (w *MemWorkbook) Sheet(name string) (CellAccessor, error) {
	g, ok := w.Sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q does not exist", name)
	}
	return g, nil
}
