// Package gsheets reads Google Sheets spreadsheets as comparison workbooks.
package gsheets

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Scheme prefixes a spreadsheet ID given in place of a file path.
const Scheme = "gsheet:"

// IsSpreadsheetPath reports whether path names a Google spreadsheet.
func IsSpreadsheetPath(path string) bool {
	return strings.HasPrefix(path, Scheme)
}

// SpreadsheetID extracts the spreadsheet ID from a gsheet: path.
func SpreadsheetID(path string) (string, error) {
	id := strings.TrimSpace(strings.TrimPrefix(path, Scheme))
	if !IsSpreadsheetPath(path) || id == "" {
		return "", fmt.Errorf("invalid spreadsheet path %q (want %s<id>)", path, Scheme)
	}
	return id, nil
}

// valuesAPI is the part of the Sheets API the workbook uses.
type valuesAPI interface {
	SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	Values(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
}

type serviceAPI struct {
	service *sheets.Service
}

func (s serviceAPI) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	resp, err := s.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	titles := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (s serviceAPI) Values(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return resp.Values, nil
}

// Workbook is a Google spreadsheet opened for comparison. Each sheet is
// fetched in a single request when first requested.
type Workbook struct {
	// ctx bounds every API call made on behalf of this workbook; it is scoped
	// to one comparison run.
	ctx    context.Context
	api    valuesAPI
	id     string
	titles []string
	retry  RetryConfig
}

// Open connects to the Sheets API with a service account credentials file
// and reads the spreadsheet's sheet titles.
func Open(ctx context.Context, spreadsheetID, credentialsFile string, retry RetryConfig) (*Workbook, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return open(ctx, serviceAPI{service: service}, spreadsheetID, retry)
}

func open(ctx context.Context, api valuesAPI, spreadsheetID string, retry RetryConfig) (*Workbook, error) {
	titles, err := withRetry(ctx, retry, func(ctx context.Context) ([]string, error) {
		return api.SheetTitles(ctx, spreadsheetID)
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("spreadsheet", spreadsheetID).Int("sheets", len(titles)).Msg("Opened spreadsheet")
	return &Workbook{ctx: ctx, api: api, id: spreadsheetID, titles: titles, retry: retry}, nil
}

// SheetNames implements models.Workbook.
func (w *Workbook) SheetNames() []string {
	return w.titles
}

// Sheet implements models.Workbook.
func (w *Workbook) Sheet(name string) (models.CellAccessor, error) {
	if !slices.Contains(w.titles, name) {
		return nil, fmt.Errorf("sheet %q not found in spreadsheet %s", name, w.id)
	}
	readRange := quoteSheetName(name)
	values, err := withRetry(w.ctx, w.retry, func(ctx context.Context) ([][]interface{}, error) {
		return w.api.Values(ctx, w.id, readRange)
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("sheet", name).Int("rows", len(values)).Msg("Fetched sheet values")
	return toGrid(values), nil
}

// Close is a no-op; it lets the workbook be released like a file-backed one.
func (w *Workbook) Close() error {
	return nil
}

func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// toGrid converts unformatted API values into cell values. The API returns
// numbers as float64, booleans as bool and everything else as strings.
func toGrid(values [][]interface{}) models.Grid {
	grid := make(models.Grid, len(values))
	for i, row := range values {
		grid[i] = make([]models.Value, len(row))
		for j, cell := range row {
			grid[i][j] = toValue(cell)
		}
	}
	return grid
}

func toValue(cell interface{}) models.Value {
	switch v := cell.(type) {
	case nil:
		return models.Empty()
	case float64:
		return models.Float(v)
	case bool:
		return models.Bool(v)
	case string:
		if v == "" {
			return models.Empty()
		}
		return models.Text(v)
	default:
		return models.Text(fmt.Sprint(v))
	}
}
