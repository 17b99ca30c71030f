// Package models defines data structures shared by the comparison and sorting tools.
package models

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindEmpty is an absent or blank cell.
	KindEmpty Kind = iota
	// KindNumber is a numeric cell (integer, float or fixed-point decimal).
	KindNumber
	// KindText is a string cell.
	KindText
	// KindBool is a boolean cell.
	KindBool
)

// String returns the kind name used in reports.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "empty"
	}
}

// Value is a raw cell value as read from a workbook.
// The zero Value is empty.
type Value struct {
	kind Kind
	num  decimal.Decimal
	text string
	b    bool
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a numeric value holding an integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: decimal.NewFromInt(i)}
}

// Float returns a numeric value holding the shortest decimal that
// round-trips to f. NaN and infinities have no decimal form and are kept
// as text.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Text(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return Value{kind: KindNumber, num: decimal.NewFromFloat(f)}
}

// Decimal returns a numeric value holding d.
func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether v is the empty value.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Number returns the decimal held by a numeric value.
func (v Value) Number() (decimal.Decimal, bool) {
	if v.kind != KindNumber {
		return decimal.Zero, false
	}
	return v.num, true
}

// Str returns the string held by a text value.
func (v Value) Str() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Boolean returns the flag held by a boolean value.
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// String renders the value as it would be displayed without formatting.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindText:
		return v.text
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Native converts the value into the Go type a spreadsheet writer expects:
// nil, float64, string or bool.
func (v Value) Native() interface{} {
	switch v.kind {
	case KindNumber:
		if v.num.IsInteger() && v.num.Abs().LessThan(decimal.New(1, 15)) {
			return v.num.IntPart()
		}
		f, _ := v.num.Float64()
		return f
	case KindText:
		return v.text
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// MarshalJSON renders the value the way it would appear in a report: numbers
// as JSON numbers, text as strings, empty as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return []byte(v.num.String()), nil
	case KindText:
		return json.Marshal(v.text)
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	default:
		return []byte("null"), nil
	}
}
