package parser

import (
	"fmt"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet as a header row followed by data rows. Rows after
// the last non-empty row are dropped; blank rows inside the data are kept.
func (b *Book) ReadTable(sheetName string) (models.Table, error) {
	acc, err := b.Sheet(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	rows, err := b.f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	lastRow, lastCol := findDataExtent(rows)
	if lastRow < 0 {
		return models.Table{}, nil
	}

	table := models.Table{Header: make([]string, lastCol+1)}
	copy(table.Header, rows[0])

	for rowIdx := 1; rowIdx <= lastRow; rowIdx++ {
		record := models.RowRecord{
			Position: rowIdx - 1,
			Cells:    make([]models.Value, lastCol+1),
		}
		for colIdx := 0; colIdx <= lastCol; colIdx++ {
			v, err := acc.Get(rowIdx+1, colIdx+1)
			if err != nil {
				return models.Table{}, fmt.Errorf("read %s row %d: %w", sheetName, rowIdx+1, err)
			}
			record.Cells[colIdx] = v
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// WriteTable overwrites the data rows of a sheet with the table's rows,
// starting under the header. The header row is left as it is.
func (b *Book) WriteTable(sheetName string, t models.Table) error {
	if _, err := b.Sheet(sheetName); err != nil {
		return err
	}

	width := len(t.Header)
	for _, r := range t.Rows {
		width = max(width, len(r.Cells))
	}

	for i, r := range t.Rows {
		values := make([]interface{}, width)
		for col := range values {
			values[col] = r.Cell(col).Native()
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := b.f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheetName, i+2, err)
		}
	}

	return nil
}

// SaveAs writes the workbook to path.
func (b *Book) SaveAs(path string) error {
	return b.f.SaveAs(path)
}

// findDataExtent finds the last row and column (0-based) holding a non-empty
// cell, or -1, -1 for an empty sheet.
func findDataExtent(rows [][]string) (lastRow, lastCol int) {
	lastRow, lastCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				lastRow = max(lastRow, rowIdx)
				lastCol = max(lastCol, colIdx)
			}
		}
	}

	return
}
