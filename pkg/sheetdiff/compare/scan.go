package compare

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/normalize"
)

// DefaultProgressEvery is how many matched pairs pass between progress logs.
const DefaultProgressEvery = 10

// ScanOptions configures an offset scan.
type ScanOptions struct {
	// ManualStart is the first manual data row (1-based).
	ManualStart int
	// AutoStart is the first auto data row (1-based).
	AutoStart int
	// Offset is the zero-based logical offset to start from.
	Offset int
	// NumCols is the number of leading columns compared per row.
	NumCols int
	// ProgressEvery logs progress after this many matched pairs; 0 disables it.
	ProgressEvery int
}

// Validate checks the option bounds.
func (o ScanOptions) Validate() error {
	switch {
	case o.ManualStart < 1 || o.AutoStart < 1:
		return fmt.Errorf("start rows must be >= 1, got manual %d auto %d", o.ManualStart, o.AutoStart)
	case o.Offset < 0:
		return fmt.Errorf("offset must be >= 0, got %d", o.Offset)
	case o.NumCols < 1:
		return errors.New("num-cols must be >= 1")
	}
	return nil
}

// Cursor tracks the row pair under comparison. Both rows always equal their
// start plus Offset.
type Cursor struct {
	ManualStart int
	AutoStart   int
	Offset      int
}

// ManualRow returns the current manual row.
func (c Cursor) ManualRow() int { return c.ManualStart + c.Offset }

// AutoRow returns the current auto row.
func (c Cursor) AutoRow() int { return c.AutoStart + c.Offset }

// Advance moves both rows forward by one.
func (c *Cursor) Advance() { c.Offset++ }

// Scan walks both sheets in lockstep from their start rows plus the initial
// offset, comparing the first NumCols columns of each row pair.
//
// The scan ends successfully when the manual row is entirely empty; the auto
// side is not checked, since the manual sheet defines how many rows are
// expected. A differing row pair ends the scan with every mismatching column
// of that row reported.
func Scan(manual, auto models.CellAccessor, opts ScanOptions) (models.ScanResult, error) {
	if err := opts.Validate(); err != nil {
		return models.ScanResult{}, err
	}

	cur := Cursor{ManualStart: opts.ManualStart, AutoStart: opts.AutoStart, Offset: opts.Offset}
	pairs := 0

	log.Debug().
		Int("offset", cur.Offset).
		Int("manual_row", cur.ManualRow()).
		Int("auto_row", cur.AutoRow()).
		Int("num_cols", opts.NumCols).
		Msg("Starting offset scan")

	for {
		mvals, err := readRow(manual, cur.ManualRow(), opts.NumCols)
		if err != nil {
			return models.ScanResult{}, fmt.Errorf("read manual row %d: %w", cur.ManualRow(), err)
		}
		avals, err := readRow(auto, cur.AutoRow(), opts.NumCols)
		if err != nil {
			return models.ScanResult{}, fmt.Errorf("read auto row %d: %w", cur.AutoRow(), err)
		}

		result := models.ScanResult{
			PairsCompared: pairs,
			Offset:        cur.Offset,
			ManualRow:     cur.ManualRow(),
			AutoRow:       cur.AutoRow(),
			NumCols:       opts.NumCols,
		}

		if isEmptyRow(mvals) {
			result.Outcome = models.ScanEndOfData
			return result, nil
		}

		if cols := diffRow(mvals, avals); len(cols) > 0 {
			result.Outcome = models.ScanMismatch
			result.Columns = cols
			return result, nil
		}

		pairs++
		cur.Advance()

		if opts.ProgressEvery > 0 && pairs%opts.ProgressEvery == 0 {
			log.Info().Int("pairs", pairs).Int("offset", cur.Offset).Msg("Progress")
		}
	}
}

func readRow(acc models.CellAccessor, row, numCols int) ([]string, error) {
	out := make([]string, numCols)
	for col := 1; col <= numCols; col++ {
		v, err := acc.Get(row, col)
		if err != nil {
			return nil, err
		}
		out[col-1] = normalize.Normalize(v)
	}
	return out, nil
}

func isEmptyRow(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

func diffRow(mvals, avals []string) []models.ColumnMismatch {
	var cols []models.ColumnMismatch
	for i := range mvals {
		if mvals[i] != avals[i] {
			cols = append(cols, models.ColumnMismatch{
				Col:        i + 1,
				ManualNorm: mvals[i],
				AutoNorm:   avals[i],
			})
		}
	}
	return cols
}
