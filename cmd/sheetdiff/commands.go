package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/config"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/grouping"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/output"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/parser"
)

func newOffsetCmd(cfg *config.Config) *cobra.Command {
	opts := sheetdiff.DefaultOffsetOptions()
	var report reportFlags

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Compare two sheets row by row from independent start rows",
		Long: `offset compares the first --num-cols columns of the manual and auto sheets
row by row. Row pairs are (manual-start + k, auto-start + k) for k from --offset.
The comparison succeeds when a manual row is entirely empty and stops at the
first differing row pair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Scan.ProgressEvery = cfg.ProgressEvery
			opts.Source = sourceOptions(cfg)

			res, err := sheetdiff.CompareOffset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := write(cmd.OutOrStdout(), report, res, output.WriteScan); err != nil {
				return err
			}
			if res.Outcome == models.ScanMismatch {
				return sheetdiff.ErrMismatch
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ManualPath, "manual-path", "", "Path to the manual workbook")
	f.StringVar(&opts.ManualSheet, "manual-sheet", "", "Sheet name in the manual workbook")
	f.StringVar(&opts.AutoPath, "auto-path", "", "Path to the auto workbook")
	f.StringVar(&opts.AutoSheet, "auto-sheet", "", "Sheet name in the auto workbook")
	f.IntVar(&opts.Scan.NumCols, "num-cols", 0, "Number of leading columns to compare")
	f.IntVar(&opts.Scan.ManualStart, "manual-start", sheetdiff.DefaultManualStart, "First manual data row (1-based)")
	f.IntVar(&opts.Scan.AutoStart, "auto-start", sheetdiff.DefaultAutoStart, "First auto data row (1-based)")
	f.IntVar(&opts.Scan.Offset, "offset", 0, "Zero-based offset to start from")
	report.register(cmd)

	for _, name := range []string{"manual-path", "manual-sheet", "auto-path", "auto-sheet", "num-cols"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSheetsCmd(cfg *config.Config) *cobra.Command {
	var (
		opts      sheetdiff.SheetsOptions
		region    models.Rectangle
		rangeStr  string
		report    reportFlags
		shapeFlag = []string{"rows", "cols", "start-row", "start-col"}
	)

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Compare the same rectangle across several sheets",
		Long: `sheets compares a fixed rectangle on each listed sheet, in order, and stops
at the first differing cell or at the first sheet missing from either workbook.
The rectangle is given either as --rows/--cols with optional start cell, as
an A1 range with --range, or taken from the manual workbook's print area with
--print-area.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case rangeStr != "" || opts.UsePrintArea:
				if rangeStr != "" && opts.UsePrintArea {
					return sheetdiff.Usagef("--range cannot be combined with --print-area")
				}
				for _, name := range shapeFlag {
					if cmd.Flags().Changed(name) {
						return sheetdiff.Usagef("--%s cannot be combined with --range or --print-area", name)
					}
				}
				if rangeStr != "" {
					r, err := parser.ParseRange(rangeStr)
					if err != nil {
						return &sheetdiff.UsageError{Err: err}
					}
					region = r
				}
			case !cmd.Flags().Changed("rows") || !cmd.Flags().Changed("cols"):
				return sheetdiff.Usagef("either --range, --print-area or both --rows and --cols are required")
			}
			opts.Region = region
			opts.Source = sourceOptions(cfg)

			res, err := sheetdiff.CompareSheets(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := write(cmd.OutOrStdout(), report, res, output.WriteSequence); err != nil {
				return err
			}

			switch res.Outcome {
			case models.SequenceMismatch:
				return fmt.Errorf("sheet %s: %w", res.Mismatch.Sheet, sheetdiff.ErrMismatch)
			case models.SequenceMissing:
				return &reportedError{err: &sheetdiff.MissingSheetError{Missing: *res.Missing, Matched: res.Matched}}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ManualPath, "manual-path", "", "Path to the manual workbook")
	f.StringVar(&opts.AutoPath, "auto-path", "", "Path to the auto workbook")
	f.StringArrayVar(&opts.Sheets, "sheets", nil, "Sheet name to compare; repeat for several sheets, compared in order")
	f.IntVar(&region.Rows, "rows", 0, "Number of rows in the rectangle")
	f.IntVar(&region.Cols, "cols", 0, "Number of columns in the rectangle")
	f.IntVar(&region.Row, "start-row", 1, "Top row of the rectangle (1-based)")
	f.IntVar(&region.Col, "start-col", 1, "Left column of the rectangle (1-based)")
	f.StringVar(&rangeStr, "range", "", "Rectangle as an A1 range, e.g. B2:H40")
	f.BoolVar(&opts.UsePrintArea, "print-area", false, "Use the print area of the first sheet in the manual workbook")
	report.register(cmd)

	for _, name := range []string{"manual-path", "auto-path", "sheets"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSortCmd(cfg *config.Config) *cobra.Command {
	var (
		opts         sheetdiff.SortOptions
		priorityFile string
		report       reportFlags
	)

	cmd := &cobra.Command{
		Use:   "sort [input.xlsx]",
		Short: "Reorder rows so priority groups come first",
		Long: `sort reorders the data rows of the selected sheets by the group column.
Groups named in the priority list come first, in list order; the remaining
groups follow alphabetically. Rows within a group keep their order. The header
row and unselected sheets are written unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InputPath = args[0]
			if err := applyPriority(cmd, cfg, &opts, priorityFile); err != nil {
				return err
			}

			rep, err := sheetdiff.SortWorkbook(opts)
			if err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), report, rep, writeSortReport)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.OutputPath, "output", "o", "", "Output file path (default: <input>-sorted.xlsx)")
	f.StringVar(&opts.Sheet, "sheet", "", "Sheet name or 0-based index to sort (default: first sheet)")
	f.StringSliceVar(&opts.Sheets, "sheets", nil, `Sheet names or indices to sort, or "all"`)
	f.StringSliceVar(&opts.Priority, "priority", nil, "Groups placed first, in order")
	f.StringVar(&priorityFile, "priority-file", "", "YAML file with group_column and priority")
	f.StringVar(&opts.GroupColumn, "group-column", "", "Header of the group column")
	report.register(cmd)
	return cmd
}

// applyPriority fills the group column and priority from flags, then the
// priority file, then the configuration.
func applyPriority(cmd *cobra.Command, cfg *config.Config, opts *sheetdiff.SortOptions, priorityFile string) error {
	var pf *grouping.PriorityFile
	if priorityFile != "" {
		loaded, err := grouping.LoadPriorityFile(priorityFile)
		if err != nil {
			return &sheetdiff.UsageError{Err: err}
		}
		pf = loaded
	}

	if !cmd.Flags().Changed("priority") {
		if pf != nil {
			opts.Priority = pf.Priority
		} else {
			opts.Priority = cfg.Priority
		}
	}
	if !cmd.Flags().Changed("group-column") {
		if pf != nil && pf.GroupColumn != "" {
			opts.GroupColumn = pf.GroupColumn
		} else {
			opts.GroupColumn = cfg.GroupColumn
		}
	}
	return nil
}

func writeSortReport(w io.Writer, rep *sheetdiff.SortReport) error {
	for _, s := range rep.Skipped {
		if _, err := fmt.Fprintf(w, "Skipped sheet '%s': %s\n", s.Sheet, s.Reason); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Saved sorted workbook to: %s\n", rep.Output)
	return err
}
