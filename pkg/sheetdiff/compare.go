package sheetdiff

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/compare"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/parser"
)

// CompareOffset compares two sheets row by row starting at independent rows
// and an extra offset, until the manual sheet runs out of data or a row pair
// differs. A missing sheet is reported as a *MissingSheetError.
func CompareOffset(ctx context.Context, opts OffsetOptions) (models.ScanResult, error) {
	if err := opts.Scan.Validate(); err != nil {
		return models.ScanResult{}, &UsageError{Err: err}
	}

	manual, err := openWorkbook(ctx, opts.ManualPath, opts.Source)
	if err != nil {
		return models.ScanResult{}, err
	}
	defer manual.Close()

	auto, err := openWorkbook(ctx, opts.AutoPath, opts.Source)
	if err != nil {
		return models.ScanResult{}, err
	}
	defer auto.Close()

	if !slices.Contains(manual.SheetNames(), opts.ManualSheet) {
		return models.ScanResult{}, &MissingSheetError{Missing: models.MissingSheet{
			Sheet:           opts.ManualSheet,
			Side:            models.SideManual,
			ManualAvailable: manual.SheetNames(),
		}}
	}
	if !slices.Contains(auto.SheetNames(), opts.AutoSheet) {
		return models.ScanResult{}, &MissingSheetError{Missing: models.MissingSheet{
			Sheet:         opts.AutoSheet,
			Side:          models.SideAuto,
			AutoAvailable: auto.SheetNames(),
		}}
	}

	ms, err := manual.Sheet(opts.ManualSheet)
	if err != nil {
		return models.ScanResult{}, err
	}
	as, err := auto.Sheet(opts.AutoSheet)
	if err != nil {
		return models.ScanResult{}, err
	}

	log.Info().
		Int("offset", opts.Scan.Offset).
		Int("manual_row", opts.Scan.ManualStart+opts.Scan.Offset).
		Int("auto_row", opts.Scan.AutoStart+opts.Scan.Offset).
		Int("num_cols", opts.Scan.NumCols).
		Msg("Starting comparison; numeric values are rounded to 5 decimal places (half up)")

	return compare.Scan(ms, as, opts.Scan)
}

// CompareSheets compares the same rectangle on each listed sheet in order,
// stopping at the first mismatch or missing sheet. A missing sheet is an
// outcome of the result, not an error. With UsePrintArea the rectangle is
// read from the manual workbook.
func CompareSheets(ctx context.Context, opts SheetsOptions) (models.SequenceResult, error) {
	if len(opts.Sheets) == 0 {
		return models.SequenceResult{}, Usagef("at least one sheet name is required")
	}
	if !opts.UsePrintArea {
		if err := opts.Region.Validate(); err != nil {
			return models.SequenceResult{}, &UsageError{Err: err}
		}
	}

	manual, err := openWorkbook(ctx, opts.ManualPath, opts.Source)
	if err != nil {
		return models.SequenceResult{}, err
	}
	defer manual.Close()

	auto, err := openWorkbook(ctx, opts.AutoPath, opts.Source)
	if err != nil {
		return models.SequenceResult{}, err
	}
	defer auto.Close()

	if opts.UsePrintArea {
		if opts.Region, err = printAreaRegion(manual, opts.Sheets[0]); err != nil {
			return models.SequenceResult{}, err
		}
		if err := opts.Region.Validate(); err != nil {
			return models.SequenceResult{}, &UsageError{Err: err}
		}
	}

	log.Info().
		Strs("sheets", opts.Sheets).
		Str("region", parser.FormatRange(opts.Region)).
		Msg("Comparing sheets")

	return compare.Sequence(manual, auto, opts.Sheets, opts.Region)
}
