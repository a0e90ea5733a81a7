// Package models defines the normalized workbook data model.
package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind is the inferred semantic kind of a column.
type Kind string

const (
	// KindNumeric holds floating point values, possibly cleaned from
	// currency-formatted text.
	KindNumeric Kind = "numeric"
	// KindBoolean holds booleans normalized from textual encodings.
	// Boolean cells are never null; missing values are false.
	KindBoolean Kind = "boolean"
	// KindTemporal holds date/time values. Cells that fail to parse are null.
	KindTemporal Kind = "temporal"
	// KindText is the fallback kind. Text cells are never null; missing
	// values are the empty string.
	KindText Kind = "text"
)

// Value is a single normalized cell. Its Kind always matches the owning
// column's Kind after normalization. Valid is false only for null cells in
// Numeric and Temporal columns; Boolean and Text values are always valid.
type Value struct {
	Kind  Kind
	Num   float64
	Bool  bool
	Time  time.Time
	Str   string
	Valid bool
}

// Numeric returns a numeric cell value.
func Numeric(f float64) Value { return Value{Kind: KindNumeric, Num: f, Valid: true} }

// NullNumeric returns a null numeric cell (empty or unparseable source).
func NullNumeric() Value { return Value{Kind: KindNumeric} }

// Boolean returns a boolean cell value.
func Boolean(b bool) Value { return Value{Kind: KindBoolean, Bool: b, Valid: true} }

// Temporal returns a date/time cell value.
func Temporal(t time.Time) Value { return Value{Kind: KindTemporal, Time: t, Valid: true} }

// NullTemporal returns a null temporal cell.
func NullTemporal() Value { return Value{Kind: KindTemporal} }

// Text returns a text cell value.
func Text(s string) Value { return Value{Kind: KindText, Str: s, Valid: true} }

// String renders the cell for delimited export: numerics as plain decimal,
// booleans as true/false, temporals as RFC 3339, nulls as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumeric:
		if !v.Valid {
			return ""
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindTemporal:
		if !v.Valid {
			return ""
		}
		return v.Time.Format(time.RFC3339)
	default:
		return v.Str
	}
}

// MarshalJSON encodes the cell as its native JSON scalar, or null for
// invalid numeric/temporal cells.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumeric:
		if !v.Valid {
			return []byte("null"), nil
		}
		return json.Marshal(v.Num)
	case KindBoolean:
		return json.Marshal(v.Bool)
	case KindTemporal:
		if !v.Valid {
			return []byte("null"), nil
		}
		return json.Marshal(v.Time.Format(time.RFC3339))
	default:
		return json.Marshal(v.Str)
	}
}
