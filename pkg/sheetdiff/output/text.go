package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

// WriteScan writes a human-readable offset scan report.
func WriteScan(w io.Writer, res models.ScanResult) error {
	var b strings.Builder

	switch res.Outcome {
	case models.ScanEndOfData:
		b.WriteString("Success! Reached end-of-data in manual sheet.\n")
		fmt.Fprintf(&b, "Compared %d row pair(s) with no mismatches.\n", res.PairsCompared)
		fmt.Fprintf(&b, "Final offset reached: %d\n", res.Offset)

	case models.ScanMismatch:
		b.WriteString("Mismatch detected!\n")
		fmt.Fprintf(&b, "Offset: %d\n", res.Offset)
		fmt.Fprintf(&b, "Manual Excel row: %d | Auto Excel row: %d\n", res.ManualRow, res.AutoRow)
		fmt.Fprintf(&b, "Columns compared: %d\n", res.NumCols)
		b.WriteString("Mismatching columns (1-based index, manual_value, auto_value):\n")
		for _, c := range res.Columns {
			fmt.Fprintf(&b, "  c%d: '%s' vs '%s'\n", c.Col, c.ManualNorm, c.AutoNorm)
		}
		fmt.Fprintf(&b, "Matching columns: %d / %d\n", res.NumCols-len(res.Columns), res.NumCols)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSequence writes a human-readable multi-sheet report.
func WriteSequence(w io.Writer, res models.SequenceResult) error {
	var b strings.Builder

	switch res.Outcome {
	case models.SequenceMatched:
		b.WriteString("All specified sheets matched 100%.\n")
		fmt.Fprintf(&b, "Sheets matched 100%%: %s\n", strings.Join(res.Matched, ", "))

	case models.SequenceMismatch:
		m := res.Mismatch
		b.WriteString("*** MISMATCH DETECTED ***\n")
		fmt.Fprintf(&b, "Failed sheet: %s at cell %s (row %d, col %d)\n", m.Sheet, m.Cell, m.Row, m.Col)
		fmt.Fprintf(&b, "Manual (normalized): '%s'   | Raw: %s\n", m.ManualNorm, rawText(m.ManualRaw))
		fmt.Fprintf(&b, "Auto   (normalized): '%s'   | Raw: %s\n", m.AutoNorm, rawText(m.AutoRaw))
		writeMatchedSoFar(&b, res.Matched, "failure")

	case models.SequenceMissing:
		m := res.Missing
		b.WriteString("*** SHEET NOT FOUND ***\n")
		if m.Side == models.SideManual || m.Side == models.SideBoth {
			fmt.Fprintf(&b, "Missing in manual workbook: '%s'\n", m.Sheet)
			fmt.Fprintf(&b, "Manual available sheets: %s\n", quoteList(m.ManualAvailable))
		}
		if m.Side == models.SideAuto || m.Side == models.SideBoth {
			fmt.Fprintf(&b, "Missing in auto workbook: '%s'\n", m.Sheet)
			fmt.Fprintf(&b, "Auto available sheets: %s\n", quoteList(m.AutoAvailable))
		}
		writeMatchedSoFar(&b, res.Matched, "error")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMatchedSoFar(b *strings.Builder, matched []string, event string) {
	if len(matched) > 0 {
		fmt.Fprintf(b, "Sheets matched 100%% before %s: %s\n", event, strings.Join(matched, ", "))
	} else {
		fmt.Fprintf(b, "No sheets fully matched before %s.\n", event)
	}
}

// rawText shows a raw value with its kind so that 1 and "1" are told apart.
func rawText(v models.Value) string {
	switch v.Kind() {
	case models.KindEmpty:
		return "<empty>"
	case models.KindText:
		return fmt.Sprintf("%q", v.String())
	default:
		return v.String()
	}
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
