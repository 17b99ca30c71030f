// Package parser provides the xlsx side of the comparison and sorting tools:
// typed cell access, table reading and writing through excelize.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

var integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

// Book is an opened xlsx workbook.
type Book struct {
	f    *excelize.File
	path string
}

// Open opens an xlsx workbook for reading.
func Open(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Book{f: f, path: path}, nil
}

// Path returns the file the workbook was opened from.
func (b *Book) Path() string {
	return b.path
}

// Close releases the underlying file.
func (b *Book) Close() error {
	return b.f.Close()
}

// SheetNames returns the sheet names in workbook order.
func (b *Book) SheetNames() []string {
	return b.f.GetSheetList()
}

// Sheet returns a typed cell accessor for the named sheet.
func (b *Book) Sheet(name string) (models.CellAccessor, error) {
	if !slices.Contains(b.SheetNames(), name) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return &Sheet{f: b.f, name: name}, nil
}

// Sheet reads cells of one worksheet.
type Sheet struct {
	f    *excelize.File
	name string
}

// Get returns the cached value of a cell. Formula cells yield their last
// computed result.
func (s *Sheet) Get(row, col int) (models.Value, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Value{}, err
	}
	typ, err := s.f.GetCellType(s.name, cell)
	if err != nil {
		return models.Value{}, err
	}
	raw, err := s.f.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Value{}, err
	}
	return parseValue(typ, raw), nil
}

// parseValue converts a raw cell string into a typed value according to the
// cell type recorded in the sheet XML.
func parseValue(typ excelize.CellType, raw string) models.Value {
	if raw == "" {
		return models.Empty()
	}
	switch typ {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return models.Text(raw)
	default:
		return parseNumber(raw)
	}
}

// parseNumber reads a stored number. Integers keep every digit; other values
// go through float64 so that the stored binary value renders as its shortest
// decimal, the way a spreadsheet displays it.
func parseNumber(raw string) models.Value {
	if integerPattern.MatchString(raw) {
		if d, err := decimal.NewFromString(raw); err == nil {
			return models.Decimal(d)
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.Float(f)
	}
	return models.Text(raw)
}
