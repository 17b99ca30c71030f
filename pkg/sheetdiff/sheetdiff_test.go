package sheetdiff

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/compare"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/grouping"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// writeBook saves an xlsx whose sheets are filled row by row from A1.
func writeBook(t *testing.T, name string, sheets map[string][][]interface{}, order ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet))
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for r, row := range sheets[sheet] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			values := row
			require.NoError(t, f.SetSheetRow(sheet, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func dataRows(n int, startID int) [][]interface{} {
	rows := make([][]interface{}, n)
	for i := range rows {
		rows[i] = []interface{}{startID + i, fmt.Sprintf("Item %d", i), 1234.5}
	}
	return rows
}

func TestCompareOffsetEndOfData(t *testing.T) {
	manualRows := append([][]interface{}{{"Report"}, {}, {"ID", "Name", "Amount"}}, dataRows(5, 1)...)
	autoRows := append([][]interface{}{{"id", "name", "amount"}}, dataRows(5, 1)...)
	// Formatting-only differences are tolerated.
	autoRows[2] = []interface{}{"2", " item 1 ", "1,234.50"}
	autoRows = append(autoRows, []interface{}{"trailing", "auto", "rows"})

	manual := writeBook(t, "manual.xlsx", map[string][][]interface{}{"Manual": manualRows}, "Manual")
	auto := writeBook(t, "auto.xlsx", map[string][][]interface{}{"Auto": autoRows}, "Auto")

	opts := DefaultOffsetOptions()
	opts.ManualPath, opts.ManualSheet = manual, "Manual"
	opts.AutoPath, opts.AutoSheet = auto, "Auto"
	opts.Scan.ManualStart = 4
	opts.Scan.NumCols = 3

	res, err := CompareOffset(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, models.ScanEndOfData, res.Outcome)
	assert.Equal(t, 5, res.PairsCompared)
	assert.Equal(t, 5, res.Offset)
}

func TestCompareOffsetMismatch(t *testing.T) {
	manual := writeBook(t, "manual.xlsx", map[string][][]interface{}{"S": dataRows(4, 1)}, "S")
	autoRows := dataRows(4, 1)
	autoRows[2][2] = 1234.49
	auto := writeBook(t, "auto.xlsx", map[string][][]interface{}{"S": autoRows}, "S")

	opts := DefaultOffsetOptions()
	opts.ManualPath, opts.ManualSheet = manual, "S"
	opts.AutoPath, opts.AutoSheet = auto, "S"
	opts.Scan = compare.ScanOptions{ManualStart: 1, AutoStart: 1, NumCols: 3}

	res, err := CompareOffset(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, models.ScanMismatch, res.Outcome)
	assert.Equal(t, 2, res.Offset)
	assert.Equal(t, []models.ColumnMismatch{{Col: 3, ManualNorm: "1234.50000", AutoNorm: "1234.49000"}}, res.Columns)
}

func TestCompareOffsetErrors(t *testing.T) {
	book := writeBook(t, "book.xlsx", map[string][][]interface{}{"S": dataRows(1, 1)}, "S")

	opts := DefaultOffsetOptions()
	opts.ManualPath, opts.ManualSheet = book, "S"
	opts.AutoPath, opts.AutoSheet = book, "Nope"
	opts.Scan.NumCols = 1

	_, err := CompareOffset(context.Background(), opts)
	var missing *MissingSheetError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, models.SideAuto, missing.Missing.Side)
	assert.Equal(t, []string{"S"}, missing.Missing.AutoAvailable)
	assert.Equal(t, ExitUsage, ExitCode(err))

	opts.AutoPath = filepath.Join(t.TempDir(), "missing.xlsx")
	opts.AutoSheet = "S"
	_, err = CompareOffset(context.Background(), opts)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, ExitUsage, ExitCode(err))

	opts.AutoPath = book
	opts.Scan.NumCols = 0
	_, err = CompareOffset(context.Background(), opts)
	var usage *UsageError
	assert.True(t, errors.As(err, &usage))
}

func TestCompareSheets(t *testing.T) {
	sheets := map[string][][]interface{}{
		"A": dataRows(3, 1),
		"B": dataRows(3, 10),
		"C": dataRows(3, 20),
	}
	manual := writeBook(t, "manual.xlsx", sheets, "A", "B", "C")
	auto := writeBook(t, "auto.xlsx", sheets, "C", "A", "B")

	opts := SheetsOptions{
		ManualPath: manual,
		AutoPath:   auto,
		Sheets:     []string{"A", "B", "C"},
		Region:     models.Rectangle{Row: 1, Col: 1, Rows: 3, Cols: 3},
	}
	res, err := CompareSheets(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, models.SequenceMatched, res.Outcome)
	assert.Equal(t, []string{"A", "B", "C"}, res.Matched)

	changed := map[string][][]interface{}{"A": dataRows(3, 1), "B": dataRows(3, 10)}
	changed["B"][1][1] = "Different"
	opts.AutoPath = writeBook(t, "auto2.xlsx", changed, "A", "B")

	res, err = CompareSheets(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, models.SequenceMismatch, res.Outcome)
	assert.Equal(t, []string{"A"}, res.Matched)
	assert.Equal(t, "B2", res.Mismatch.Cell)
	assert.Equal(t, "different", res.Mismatch.AutoNorm)

	opts.Sheets = []string{"A", "C"}
	opts.AutoPath = writeBook(t, "auto3.xlsx", changed, "A", "B")
	res, err = CompareSheets(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, models.SequenceMissing, res.Outcome)
	assert.Equal(t, []string{"A"}, res.Matched)
	assert.Equal(t, models.SideAuto, res.Missing.Side)

	opts.Region.Rows = 0
	_, err = CompareSheets(context.Background(), opts)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestSortWorkbook(t *testing.T) {
	sheets := map[string][][]interface{}{
		"Orders": {
			{"ID", "Broker"},
			{1, "FEDEX"},
			{2, "UPS"},
			{3, "ZETA"},
			{4, "DWM"},
			{5, "FEDEX"},
		},
		"Notes": {
			{"No broker here"},
			{"b"},
			{"a"},
		},
	}
	input := writeBook(t, "orders.xlsx", sheets, "Orders", "Notes")

	opts := DefaultSortOptions()
	opts.InputPath = input
	opts.Sheets = []string{"all"}

	report, err := SortWorkbook(opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputPath(input), report.Output)
	assert.Equal(t, []string{"Orders"}, report.Sorted)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Notes", report.Skipped[0].Sheet)

	f, err := excelize.OpenFile(report.Output)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Broker"},
		{"4", "DWM"},
		{"1", "FEDEX"},
		{"5", "FEDEX"},
		{"2", "UPS"},
		{"3", "ZETA"},
	}, rows)

	notes, err := f.GetRows("Notes")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"No broker here"}, {"b"}, {"a"}}, notes)
}

func TestSortWorkbookCustomPriority(t *testing.T) {
	input := writeBook(t, "in.xlsx", map[string][][]interface{}{
		"S": {{"carrier"}, {"B"}, {"A"}, {"C"}},
	}, "S")

	out := filepath.Join(t.TempDir(), "out.xlsx")
	report, err := SortWorkbook(SortOptions{
		InputPath:   input,
		OutputPath:  out,
		Sheet:       "0",
		GroupColumn: "Carrier",
		Priority:    []string{"C"},
	})
	require.NoError(t, err)
	assert.Equal(t, out, report.Output)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("S")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"carrier"}, {"C"}, {"A"}, {"B"}}, rows)
}

func TestSortWorkbookErrors(t *testing.T) {
	_, err := SortWorkbook(SortOptions{InputPath: filepath.Join(t.TempDir(), "none.xlsx")})
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, ExitUsage, ExitCode(err))

	input := writeBook(t, "in.xlsx", map[string][][]interface{}{"S": {{"Broker"}}}, "S")
	_, err = SortWorkbook(SortOptions{InputPath: input, Sheets: []string{"nope"}})
	assert.Equal(t, ExitNoTargets, ExitCode(err))
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "report-sorted.xlsx"), DefaultOutputPath(filepath.Join("dir", "report.xlsx")))
	assert.Equal(t, "noext-sorted", DefaultOutputPath("noext"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitMatched, ExitCode(nil))
	assert.Equal(t, ExitMismatch, ExitCode(fmt.Errorf("sheet A: %w", ErrMismatch)))
	assert.Equal(t, ExitUsage, ExitCode(Usagef("bad flag")))
	assert.Equal(t, ExitUsage, ExitCode(&MissingSheetError{}))
	assert.Equal(t, ExitWriteFailed, ExitCode(&SortError{Code: ExitWriteFailed, Err: errors.New("disk full")}))
}

func TestMissingSheetErrorMessage(t *testing.T) {
	err := &MissingSheetError{Missing: models.MissingSheet{
		Sheet: "B", Side: models.SideBoth,
		ManualAvailable: []string{"A"}, AutoAvailable: []string{"C"},
	}}
	assert.Equal(t, `sheet "B" not found in both workbook (manual available: ["A"]; auto available: ["C"])`, err.Error())
}

func TestDefaultSortOptions(t *testing.T) {
	opts := DefaultSortOptions()
	opts.Priority[0] = "CHANGED"
	assert.Equal(t, "DWM", grouping.DefaultPriority[0])
}
