package sheetdiff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/grouping"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/parser"
)

// SkippedSheet is a targeted sheet left unsorted.
type SkippedSheet struct {
	Sheet  string `json:"sheet"`
	Reason string `json:"reason"`
}

// SortReport summarizes a workbook sort.
type SortReport struct {
	// Output is the written workbook path.
	Output string `json:"output"`
	// Sorted lists the sheets rewritten in priority order.
	Sorted []string `json:"sorted"`
	// Skipped lists targeted sheets left unchanged.
	Skipped []SkippedSheet `json:"skipped,omitempty"`
	// Warnings holds sheet selectors that could not be resolved as given.
	Warnings []string `json:"warnings,omitempty"`
}

// DefaultOutputPath returns <dir>/<stem>-sorted<ext> for an input path.
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-sorted" + ext
}

// SortWorkbook reorders the rows of the selected sheets by group priority and
// writes the whole workbook, untouched sheets included, to the output path.
// A sheet without the group column is left unchanged with a warning.
func SortWorkbook(opts SortOptions) (*SortReport, error) {
	if _, err := os.Stat(opts.InputPath); err != nil {
		return nil, &SortError{Code: ExitUsage, Err: fmt.Errorf("%w: %s", ErrFileNotFound, opts.InputPath)}
	}
	if opts.GroupColumn == "" {
		opts.GroupColumn = grouping.DefaultColumn
	}
	if len(opts.Priority) == 0 {
		opts.Priority = grouping.DefaultPriority
	}

	b, err := parser.Open(opts.InputPath)
	if err != nil {
		return nil, &SortError{Code: ExitOpenFailed, Err: fmt.Errorf("failed to open Excel file: %w", err)}
	}
	defer b.Close()

	targets, warnings := grouping.ResolveSheets(opts.Sheets, opts.Sheet, b.SheetNames())
	for _, w := range warnings {
		log.Warn().Msg(w)
	}
	if len(targets) == 0 {
		return nil, &SortError{Code: ExitNoTargets, Err: errors.New("no matching sheets found to process")}
	}

	report := &SortReport{
		Output:   opts.OutputPath,
		Sorted:   []string{},
		Warnings: warnings,
	}
	if report.Output == "" {
		report.Output = DefaultOutputPath(opts.InputPath)
	}

	for _, name := range b.SheetNames() {
		if !slices.Contains(targets, name) {
			continue
		}
		if reason, err := sortSheet(b, name, opts); err != nil {
			log.Warn().Err(err).Str("sheet", name).Msg(reason)
			report.Skipped = append(report.Skipped, SkippedSheet{Sheet: name, Reason: err.Error()})
			continue
		}
		log.Info().Str("sheet", name).Msg("Sorted sheet")
		report.Sorted = append(report.Sorted, name)
	}

	if len(report.Sorted) == 0 {
		log.Warn().Msg("No sheets were sorted (group column missing or none matched); writing workbook unchanged")
	}

	if err := b.SaveAs(report.Output); err != nil {
		return nil, &SortError{Code: ExitWriteFailed, Err: fmt.Errorf("failed to write output Excel: %w", err)}
	}
	return report, nil
}

// sortSheet sorts one sheet in place. On failure it returns a log message
// describing what was left unchanged.
func sortSheet(b *parser.Book, name string, opts SortOptions) (string, error) {
	table, err := b.ReadTable(name)
	if err != nil {
		return "Failed to read sheet; copying as-is", err
	}

	sorted, err := grouping.SortTable(table, opts.GroupColumn, opts.Priority)
	if err != nil {
		return "Leaving sheet unchanged", err
	}

	if err := b.WriteTable(name, sorted); err != nil {
		return "Failed to write sorted rows", err
	}
	return "", nil
}
