package data

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for DATE values
const DateLayout = "2006-01-02"

// Kind identifies which member of the value union is populated
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindText
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "str"
	case KindDate:
		return "date"
	default:
		return "none"
	}
}

// Value is a single typed cell value.
// It is comparable, so it can be used directly as an index key.
// The zero Value has KindNone and represents "no value".
type Value struct {
	kind Kind
	i    int64
	s    string
	d    time.Time
}

// Int returns an integer value
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Text returns a text value
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Date returns a date value holding the calendar date of t.
// The time of day and location are dropped so equal dates compare equal.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, d: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string into a date value
func ParseDate(s string) (Value, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil || !InDateRange(t) {
		return Value{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date(t), nil
}

// InDateRange reports whether t falls in years 1 through 9999, the range
// DateLayout can write and read back
func InDateRange(t time.Time) bool {
	y := t.Year()
	return y >= 1 && y <= 9999
}

// Interface returns the payload as a plain Go value (int64, string or time.Time)
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindText:
		return v.s
	case KindDate:
		return v.d
	default:
		return nil
	}
}

// Equal reports whether both values have the same kind and payload
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindText:
		return v.s == other.s
	case KindDate:
		return v.d.Equal(other.d)
	default:
		return true
	}
}

// Compare orders values by kind first, then by payload.
// It returns -1, 0 or +1.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		if v.kind < other.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindInt:
		switch {
		case v.i < other.i:
			return -1
		case v.i > other.i:
			return 1
		}
	case KindText:
		return strings.Compare(v.s, other.s)
	case KindDate:
		return v.d.Compare(other.d)
	}
	return 0
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindText:
		return v.s
	case KindDate:
		return v.d.Format(DateLayout)
	default:
		return "NULL"
	}
}

// MarshalJSON encodes integers as numbers, text as strings and dates as YYYY-MM-DD strings
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindText:
		return json.Marshal(v.s)
	case KindDate:
		return json.Marshal(v.d.Format(DateLayout))
	default:
		return []byte("null"), nil
	}
}
