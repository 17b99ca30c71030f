package compare

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

// Sequence compares the same rectangle on each named sheet, in order,
// stopping at the first sheet that is missing from either workbook or that
// contains a mismatch. Sheets after the stopping point are never opened.
//
// Matched in the result only ever lists sheets whose whole rectangle matched.
func Sequence(manual, auto models.Workbook, sheets []string, r models.Rectangle) (models.SequenceResult, error) {
	result := models.SequenceResult{
		Matched: []string{},
		Region:  r,
	}
	if err := r.Validate(); err != nil {
		return result, err
	}

	manualNames := manual.SheetNames()
	autoNames := auto.SheetNames()

	for _, sheet := range sheets {
		if missing := findMissing(sheet, manualNames, autoNames); missing != nil {
			result.Outcome = models.SequenceMissing
			result.Missing = missing
			return result, nil
		}

		ms, err := manual.Sheet(sheet)
		if err != nil {
			return result, fmt.Errorf("open manual sheet %q: %w", sheet, err)
		}
		as, err := auto.Sheet(sheet)
		if err != nil {
			return result, fmt.Errorf("open auto sheet %q: %w", sheet, err)
		}

		log.Debug().
			Str("sheet", sheet).
			Int("start_row", r.Row).
			Int("last_row", r.LastRow()).
			Int("start_col", r.Col).
			Int("last_col", r.LastCol()).
			Msg("Comparing sheet")

		mismatch, err := Region(ms, as, r)
		if err != nil {
			return result, fmt.Errorf("compare sheet %q: %w", sheet, err)
		}
		if mismatch != nil {
			mismatch.Sheet = sheet
			result.Outcome = models.SequenceMismatch
			result.Mismatch = mismatch
			return result, nil
		}

		log.Info().Str("sheet", sheet).Msg("Sheet matched 100%")
		result.Matched = append(result.Matched, sheet)
	}

	result.Outcome = models.SequenceMatched
	return result, nil
}

func findMissing(sheet string, manualNames, autoNames []string) *models.MissingSheet {
	hasManual := slices.Contains(manualNames, sheet)
	hasAuto := slices.Contains(autoNames, sheet)
	if hasManual && hasAuto {
		return nil
	}

	m := &models.MissingSheet{Sheet: sheet}
	switch {
	case !hasManual && !hasAuto:
		m.Side = models.SideBoth
	case !hasManual:
		m.Side = models.SideManual
	default:
		m.Side = models.SideAuto
	}
	if !hasManual {
		m.ManualAvailable = slices.Clone(manualNames)
	}
	if !hasAuto {
		m.AutoAvailable = slices.Clone(autoNames)
	}
	return m
}
