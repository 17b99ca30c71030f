package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Rectangle represents cell coordinate bounds for a comparison region.
type Rectangle struct {
	// Row is the top row (1-based).
	Row int `json:"row"`
	// Col is the left column (1-based).
	Col int `json:"col"`
	// Rows is the number of rows covered.
	Rows int `json:"rows"`
	// Cols is the number of columns covered.
	Cols int `json:"cols"`
}

// LastRow returns the bottom row (1-based, inclusive).
func (r Rectangle) LastRow() int {
	return r.Row + r.Rows - 1
}

// LastCol returns the right column (1-based, inclusive).
func (r Rectangle) LastCol() int {
	return r.Col + r.Cols - 1
}

// Validate checks that the rectangle is non-empty and lies inside the
// worksheet grid of excelize.TotalRows by excelize.MaxColumns cells.
func (r Rectangle) Validate() error {
	if r.Row < 1 || r.Col < 1 {
		return fmt.Errorf("start row and column must be >= 1, got row %d col %d", r.Row, r.Col)
	}
	if r.Rows < 1 || r.Cols < 1 {
		return fmt.Errorf("rows and cols must be >= 1, got %dx%d", r.Rows, r.Cols)
	}
	if r.Row > excelize.TotalRows || r.Rows > excelize.TotalRows-r.Row+1 {
		return fmt.Errorf("rows %d to %d+%d exceed the worksheet limit of %d rows", r.Row, r.Row, r.Rows-1, excelize.TotalRows)
	}
	if r.Col > excelize.MaxColumns || r.Cols > excelize.MaxColumns-r.Col+1 {
		return fmt.Errorf("columns %d to %d+%d exceed the worksheet limit of %d columns", r.Col, r.Col, r.Cols-1, excelize.MaxColumns)
	}
	return nil
}
