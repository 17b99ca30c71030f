// Package sheetdiff compares spreadsheet data between a manually maintained
// workbook and an automatically produced one, and reorders rows of a
// workbook by group priority.
package sheetdiff

import (
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/compare"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/grouping"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/gsheets"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

// Default start rows of the offset comparison.
const (
	DefaultManualStart = 8
	DefaultAutoStart   = 2
)

// SourceOptions configures how workbooks are opened.
type SourceOptions struct {
	// GoogleCredentials is the service account file used for gsheet: paths.
	GoogleCredentials string
	// Retry controls Google Sheets API retries.
	Retry gsheets.RetryConfig
}

// OffsetOptions configures a row-by-row comparison with independent start rows.
type OffsetOptions struct {
	ManualPath  string
	ManualSheet string
	AutoPath    string
	AutoSheet   string
	// Scan holds start rows, offset and column count.
	Scan compare.ScanOptions
	// Source configures how the workbooks are opened.
	Source SourceOptions
}

// DefaultOffsetOptions returns offset options with the default start rows.
func DefaultOffsetOptions() OffsetOptions {
	return OffsetOptions{
		Scan: compare.ScanOptions{
			ManualStart:   DefaultManualStart,
			AutoStart:     DefaultAutoStart,
			ProgressEvery: compare.DefaultProgressEvery,
		},
	}
}

// SheetsOptions configures a rectangle comparison across several sheets.
type SheetsOptions struct {
	ManualPath string
	AutoPath   string
	// Sheets lists the sheet names to compare, in order.
	Sheets []string
	// Region is the rectangle compared on every sheet.
	Region models.Rectangle
	// UsePrintArea takes Region from the print area of the first listed
	// sheet of the manual workbook.
	UsePrintArea bool
	Source       SourceOptions
}

// SortOptions configures the priority sort of a workbook.
type SortOptions struct {
	InputPath string
	// OutputPath defaults to <input>-sorted.xlsx.
	OutputPath string
	// Sheet selects one sheet by name or 0-based index.
	Sheet string
	// Sheets selects sheets by name, index, comma list or "all"; it takes
	// precedence over Sheet.
	Sheets []string
	// GroupColumn is the header of the group-key column.
	GroupColumn string
	// Priority lists the groups placed first, in order.
	Priority []string
}

// DefaultSortOptions returns sort options with the default group column and priority.
func DefaultSortOptions() SortOptions {
	return SortOptions{
		GroupColumn: grouping.DefaultColumn,
		Priority:    append([]string(nil), grouping.DefaultPriority...),
	}
}
