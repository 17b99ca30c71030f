// Package compare implements positional comparison of sheet data: a single
// rectangle, an offset row scan, and an ordered sequence of sheets.
package compare

import (
	"fmt"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/normalize"
	"github.com/xuri/excelize/v2"
)

// Region compares a rectangle of two sheets row by row and returns the first
// differing cell, or nil when every cell matches. No cell after the first
// mismatch is read.
func Region(manual, auto models.CellAccessor, r models.Rectangle) (*models.CellMismatch, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	for row := r.Row; row <= r.LastRow(); row++ {
		for col := r.Col; col <= r.LastCol(); col++ {
			mv, err := manual.Get(row, col)
			if err != nil {
				return nil, fmt.Errorf("read manual cell (%d, %d): %w", row, col, err)
			}
			av, err := auto.Get(row, col)
			if err != nil {
				return nil, fmt.Errorf("read auto cell (%d, %d): %w", row, col, err)
			}

			nm, na := normalize.Normalize(mv), normalize.Normalize(av)
			if nm != na {
				return newCellMismatch(row, col, nm, na, mv, av), nil
			}
		}
	}

	return nil, nil
}

func newCellMismatch(row, col int, nm, na string, mv, av models.Value) *models.CellMismatch {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	column, _ := excelize.ColumnNumberToName(col)
	return &models.CellMismatch{
		Cell:       cell,
		Row:        row,
		Col:        col,
		Column:     column,
		ManualNorm: nm,
		AutoNorm:   na,
		ManualRaw:  mv,
		AutoRaw:    av,
	}
}
