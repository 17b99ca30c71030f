// Package grouping reorders table rows by a group key according to an
// explicit priority list.
package grouping

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

// DefaultColumn is the header of the group-key column.
const DefaultColumn = "Broker"

// DefaultPriority is the group order used when none is configured.
var DefaultPriority = []string{"DWM", "FEDEX", "DHLE", "POL", "UPS"}

// GroupColumnNotFoundError is returned when no header matches the group column.
type GroupColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *GroupColumnNotFoundError) Error() string {
	return fmt.Sprintf("could not find a %q column (case-insensitive); available columns: %q", e.Column, e.Available)
}

// FindColumn returns the zero-based index of the header equal to name,
// ignoring case and surrounding whitespace.
func FindColumn(header []string, name string) (int, error) {
	want := strings.TrimSpace(name)
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), want) {
			return i, nil
		}
	}
	return -1, &GroupColumnNotFoundError{Column: name, Available: slices.Clone(header)}
}

// Tiers of the sort key, in output order.
const (
	tierPriority = iota
	tierNamed
	tierBlank
)

// sortKey orders priority groups first, in list order, then the remaining
// named groups alphabetically, then rows without a group; position keeps rows
// of a group in source order.
type sortKey struct {
	tier        int
	rank        int
	alpha       string
	position    int
}

func compareKeys(a, b sortKey) int {
	if c := cmp.Compare(a.tier, b.tier); c != 0 {
		return c
	}
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	if c := strings.Compare(a.alpha, b.alpha); c != 0 {
		return c
	}
	return cmp.Compare(a.position, b.position)
}

// SortByPriority returns rows ordered by group: groups named in priority come
// first in that order, all other groups follow alphabetically by key, and
// rows with a blank key come last. Rows of
// the same group keep their relative input order. The input slice is not
// modified.
func SortByPriority(rows []models.RowRecord, keyOf func(models.RowRecord) string, priority []string) []models.RowRecord {
	rank := make(map[string]int, len(priority))
	for i, p := range priority {
		if _, seen := rank[p]; !seen {
			rank[p] = i
		}
	}

	type keyed struct {
		key sortKey
		row models.RowRecord
	}
	items := make([]keyed, len(rows))
	for i, row := range rows {
		group := strings.TrimSpace(keyOf(row))
		k := sortKey{position: i}
		if r, ok := rank[group]; ok {
			k.rank = r
		} else if group == "" {
			k.tier = tierBlank
		} else {
			k.tier = tierNamed
			k.alpha = group
		}
		items[i] = keyed{key: k, row: row}
	}

	slices.SortFunc(items, func(a, b keyed) int {
		return compareKeys(a.key, b.key)
	})

	out := make([]models.RowRecord, len(items))
	for i, it := range items {
		out[i] = it.row
	}
	return out
}

// ColumnKey returns a key function reading the display text of a column.
func ColumnKey(idx int) func(models.RowRecord) string {
	return func(r models.RowRecord) string {
		return r.Cell(idx).String()
	}
}

// SortTable sorts a table's rows by the named group column. Rows keep their
// original Position.
func SortTable(t models.Table, column string, priority []string) (models.Table, error) {
	idx, err := FindColumn(t.Header, column)
	if err != nil {
		return t, err
	}
	sorted := SortByPriority(t.Rows, ColumnKey(idx), priority)
	return models.Table{Header: t.Header, Rows: sorted}, nil
}
