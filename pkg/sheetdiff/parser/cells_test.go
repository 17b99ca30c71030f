package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/normalize"
	"github.com/xuri/excelize/v2"
)

// saveFixture writes an xlsx built by fill into a temp dir and returns its path.
func saveFixture(t *testing.T, fill func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	fill(f)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path), "Failed to save test file")
	return path
}

func TestSheetGet(t *testing.T) {
	path := saveFixture(t, func(f *excelize.File) {
		sheetName := "Sheet1"
		f.SetCellValue(sheetName, "A1", "Header1")
		f.SetCellValue(sheetName, "B1", 100)
		f.SetCellValue(sheetName, "C1", 200.5)
		f.SetCellValue(sheetName, "D1", true)
		f.SetCellValue(sheetName, "E1", "1,234.5")
		f.SetCellValue(sheetName, "F1", 0.1)
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	acc, err := b.Sheet("Sheet1")
	require.NoError(t, err)

	get := func(col int) models.Value {
		v, err := acc.Get(1, col)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, models.KindText, get(1).Kind())
	assert.Equal(t, "Header1", get(1).String())

	assert.Equal(t, models.KindNumber, get(2).Kind())
	assert.Equal(t, "100.00000", normalize.Normalize(get(2)))

	assert.Equal(t, models.KindNumber, get(3).Kind())
	assert.Equal(t, "200.50000", normalize.Normalize(get(3)))

	assert.Equal(t, models.KindBool, get(4).Kind())
	assert.Equal(t, "true", normalize.Normalize(get(4)))

	assert.Equal(t, models.KindText, get(5).Kind())
	assert.Equal(t, "1234.50000", normalize.Normalize(get(5)))

	assert.Equal(t, "0.1", get(6).String())

	// Beyond the data everything is empty.
	assert.True(t, get(30).IsEmpty())
}

func TestBookSheetNotFound(t *testing.T) {
	path := saveFixture(t, func(f *excelize.File) {
		f.NewSheet("Data")
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, []string{"Sheet1", "Data"}, b.SheetNames())

	_, err = b.Sheet("Missing")
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestOpenInvalidFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		typ      excelize.CellType
		raw      string
		kind     models.Kind
		expected string
	}{
		{excelize.CellTypeUnset, "", models.KindEmpty, ""},
		{excelize.CellTypeUnset, "123", models.KindNumber, "123"},
		{excelize.CellTypeNumber, "-100", models.KindNumber, "-100"},
		{excelize.CellTypeUnset, "123.45", models.KindNumber, "123.45"},
		{excelize.CellTypeUnset, "0.30000000000000004", models.KindNumber, "0.30000000000000004"},
		{excelize.CellTypeUnset, "12345678901234567890", models.KindNumber, "12345678901234567890"},
		{excelize.CellTypeUnset, "1E-3", models.KindNumber, "0.001"},
		{excelize.CellTypeSharedString, "123", models.KindText, "123"},
		{excelize.CellTypeInlineString, "hello", models.KindText, "hello"},
		{excelize.CellTypeFormula, "abc", models.KindText, "abc"},
		{excelize.CellTypeBool, "1", models.KindBool, "true"},
		{excelize.CellTypeBool, "0", models.KindBool, "false"},
		{excelize.CellTypeUnset, "hello", models.KindText, "hello"},
	}

	for _, tt := range tests {
		result := parseValue(tt.typ, tt.raw)
		if result.Kind() != tt.kind || result.String() != tt.expected {
			t.Errorf("parseValue(%v, %q) = %v (kind: %v), expected %v (kind: %v)",
				tt.typ, tt.raw, result, result.Kind(), tt.expected, tt.kind)
		}
	}
}
