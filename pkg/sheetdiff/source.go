package sheetdiff

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/gsheets"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/parser"
)

// workbook is an opened comparison source that must be closed.
type workbook interface {
	models.Workbook
	io.Closer
}

// printAreas is implemented by workbooks that store print areas.
type printAreas interface {
	PrintArea(sheet string) (models.Rectangle, bool, error)
}

// printAreaRegion returns the print area defined for sheet.
func printAreaRegion(wb workbook, sheet string) (models.Rectangle, error) {
	pa, ok := wb.(printAreas)
	if !ok {
		return models.Rectangle{}, Usagef("workbook does not support print areas")
	}
	rect, found, err := pa.PrintArea(sheet)
	if err != nil {
		return models.Rectangle{}, &UsageError{Err: err}
	}
	if !found {
		return models.Rectangle{}, Usagef("no print area defined for sheet %q", sheet)
	}
	return rect, nil
}

// openWorkbook opens an xlsx file, or a Google spreadsheet for gsheet: paths.
// Failures are usage errors.
func openWorkbook(ctx context.Context, path string, src SourceOptions) (workbook, error) {
	if gsheets.IsSpreadsheetPath(path) {
		id, err := gsheets.SpreadsheetID(path)
		if err != nil {
			return nil, &UsageError{Err: err}
		}
		wb, err := gsheets.Open(ctx, id, src.GoogleCredentials, src.Retry)
		if err != nil {
			return nil, Usagef("error opening spreadsheet %s: %w", id, err)
		}
		return wb, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &UsageError{Err: fmt.Errorf("%w: %s", ErrFileNotFound, path)}
	}
	b, err := parser.Open(path)
	if err != nil {
		return nil, Usagef("error opening workbook %s: %w", path, err)
	}
	return b, nil
}
