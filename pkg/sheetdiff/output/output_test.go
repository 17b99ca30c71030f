package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

func TestWriteScan(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScan(&buf, models.ScanResult{
		Outcome:   models.ScanMismatch,
		Offset:    4,
		ManualRow: 12,
		AutoRow:   6,
		NumCols:   3,
		Columns:   []models.ColumnMismatch{{Col: 2, ManualNorm: "1.00000", AutoNorm: "2.00000"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Offset: 4")
	assert.Contains(t, out, "Manual Excel row: 12 | Auto Excel row: 6")
	assert.Contains(t, out, "c2: '1.00000' vs '2.00000'")
	assert.Contains(t, out, "Matching columns: 2 / 3")

	buf.Reset()
	require.NoError(t, WriteScan(&buf, models.ScanResult{Outcome: models.ScanEndOfData, PairsCompared: 5, Offset: 5}))
	assert.Contains(t, buf.String(), "Compared 5 row pair(s)")
	assert.Contains(t, buf.String(), "Final offset reached: 5")
}

func TestWriteSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSequence(&buf, models.SequenceResult{
		Outcome: models.SequenceMissing,
		Matched: []string{"A"},
		Missing: &models.MissingSheet{Sheet: "B", Side: models.SideAuto, AutoAvailable: []string{"A", "C"}},
	}))
	out := buf.String()
	assert.Contains(t, out, "Missing in auto workbook: 'B'")
	assert.Contains(t, out, "Auto available sheets: ['A', 'C']")
	assert.NotContains(t, out, "Missing in manual workbook")
	assert.Contains(t, out, "Sheets matched 100% before error: A")

	buf.Reset()
	require.NoError(t, WriteSequence(&buf, models.SequenceResult{
		Outcome: models.SequenceMismatch,
		Matched: []string{},
		Mismatch: &models.CellMismatch{
			Sheet: "B", Cell: "C4", Row: 4, Col: 3,
			ManualNorm: "1.00000", AutoNorm: "1",
			ManualRaw: models.Int(1), AutoRaw: models.Text("1 "),
		},
	}))
	out = buf.String()
	assert.Contains(t, out, "Failed sheet: B at cell C4 (row 4, col 3)")
	assert.Contains(t, out, `Raw: "1 "`)
	assert.Contains(t, out, "No sheets fully matched before failure.")
}

func TestToJSON(t *testing.T) {
	res := models.SequenceResult{
		Outcome: models.SequenceMismatch,
		Matched: []string{"A"},
		Mismatch: &models.CellMismatch{
			Sheet: "B", Cell: "A1", Row: 1, Col: 1, Column: "A",
			ManualRaw: models.Float(1.5), AutoRaw: models.Empty(),
		},
	}

	data, err := ToJSON(res, false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "mismatch", decoded["outcome"])
	mismatch := decoded["mismatch"].(map[string]interface{})
	assert.Equal(t, 1.5, mismatch["manual_raw"])
	assert.Nil(t, mismatch["auto_raw"])

	pretty, err := ToJSON(res, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"outcome\"")
}
