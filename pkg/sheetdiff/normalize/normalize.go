// Package normalize converts raw cell values into canonical strings used
// for tolerant equality.
//
// Numbers (and text that looks like a number) are rounded half away from
// zero to five decimal places and rendered with exactly five fractional
// digits. Everything else is trimmed and lowercased. Two values are
// considered equal when their canonical strings are equal.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/sheetdiff-go/pkg/sheetdiff/models"
)

// Places is the number of fractional digits kept for numeric values.
const Places = 5

// Zero is the canonical form of every value that rounds to zero.
const Zero = "0.00000"

// MaxIntegerDigits is the largest number of integer digits a value may have
// to be compared as a number. Rounded values keep at most 28 significant
// digits; anything larger is compared as text.
const MaxIntegerDigits = 28 - Places

// thousandsSep is stripped from numeric-looking text before parsing.
const thousandsSep = ","

var numericPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

// Normalize returns the canonical comparable form of v.
func Normalize(v models.Value) string {
	if d, ok := AsDecimal(v); ok {
		return formatDecimal(d)
	}
	switch v.Kind() {
	case models.KindEmpty:
		return ""
	default:
		return strings.ToLower(strings.TrimSpace(v.String()))
	}
}

// Row normalizes every value of a row.
func Row(values []models.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Normalize(v)
	}
	return out
}

// IsNumeric reports whether v is compared as a number.
func IsNumeric(v models.Value) bool {
	_, ok := AsDecimal(v)
	return ok
}

// AsDecimal returns the decimal v denotes when it is numeric or numeric-like
// text. Booleans are never numeric.
func AsDecimal(v models.Value) (decimal.Decimal, bool) {
	switch v.Kind() {
	case models.KindNumber:
		d, ok := v.Number()
		if !ok || integerDigits(d) > MaxIntegerDigits {
			return decimal.Zero, false
		}
		return d, true
	case models.KindText:
		s, _ := v.Str()
		s = strings.ReplaceAll(strings.TrimSpace(s), thousandsSep, "")
		if s == "" || !numericPattern.MatchString(s) {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil || integerDigits(d) > MaxIntegerDigits {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// integerDigits returns n such that |d| < 10^n. It is negative for values
// below 0.1.
func integerDigits(d decimal.Decimal) int64 {
	coef := d.Coefficient()
	digits := len(coef.Text(10))
	if coef.Sign() < 0 {
		digits--
	}
	return int64(digits) + int64(d.Exponent())
}

func formatDecimal(d decimal.Decimal) string {
	// below 10^-(Places+1) it rounds to zero without rescaling the exponent
	if integerDigits(d) <= -(Places + 1) {
		return Zero
	}
	q := d.Round(Places)
	if q.IsZero() {
		return Zero
	}
	return q.StringFixed(Places)
}
