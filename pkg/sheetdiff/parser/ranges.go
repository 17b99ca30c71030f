package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// ParseReference parses a range reference with an optional sheet prefix.
// Format: 'Sheet Name'!$A$1:$D$10, Sheet!A1:D10, A1:D10 or a single cell A1.
func ParseReference(ref string) (sheet string, rect models.Rectangle, err error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}
	rect, err = ParseRange(ref)
	return sheet, rect, err
}

// ParseRange parses a range string like $A$1:$D$10 into a Rectangle. The
// corners may be given in either order.
func ParseRange(rangeStr string) (models.Rectangle, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Rectangle{}, fmt.Errorf("invalid range %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Rectangle{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Rectangle{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	r1, r2 := min(startRow, endRow), max(startRow, endRow)
	c1, c2 := min(startCol, endCol), max(startCol, endCol)
	return models.Rectangle{
		Row:  r1,
		Col:  c1,
		Rows: r2 - r1 + 1,
		Cols: c2 - c1 + 1,
	}, nil
}

// FormatRange renders a rectangle in A1:B2 notation.
func FormatRange(r models.Rectangle) string {
	start, _ := excelize.CoordinatesToCellName(r.Col, r.Row)
	end, _ := excelize.CoordinatesToCellName(r.LastCol(), r.LastRow())
	return start + ":" + end
}

// PrintArea returns the first print area defined for sheet. Print areas are
// stored as the _xlnm.Print_Area defined name; a name listing several areas
// is comma-separated.
func (b *Book) PrintArea(sheet string) (models.Rectangle, bool, error) {
	for _, dn := range b.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		for _, part := range strings.Split(dn.RefersTo, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			name, rect, err := ParseReference(part)
			if err != nil {
				return models.Rectangle{}, false, fmt.Errorf("print area %q: %w", dn.RefersTo, err)
			}
			if name == sheet || (name == "" && dn.Scope == sheet) {
				return rect, true, nil
			}
		}
	}
	return models.Rectangle{}, false, nil
}
