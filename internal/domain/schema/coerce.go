package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
)

// ValidateAndCoerce checks every key of input against the schema and converts
// each value to its column's declared type.
// - Unknown columns fail with SchemaError
// - Values that cannot be converted fail with TypeError
// - With requirePrimaryKey, a missing primary key fails with SchemaError
// The input map is never modified; the coerced row is returned.
func ValidateAndCoerce(s *TableSchema, input map[string]any, requirePrimaryKey bool) (data.Row, error) {
	row := make(data.Row, len(input))

	for name, raw := range input {
		col, ok := s.Column(name)
		if !ok {
			return nil, &errors.SchemaError{
				Table:  s.TableName,
				Column: name,
				Reason: "invalid column",
			}
		}

		val, err := CoerceValue(s.TableName, col, raw)
		if err != nil {
			return nil, err
		}
		row[name] = val
	}

	if requirePrimaryKey {
		if _, ok := row[s.PrimaryKey]; !ok {
			return nil, &errors.SchemaError{
				Table:  s.TableName,
				Column: s.PrimaryKey,
				Reason: "primary key is required",
			}
		}
	}

	return row, nil
}

// CoerceValue converts a single raw value to col's type
func CoerceValue(table string, col Column, raw any) (data.Value, error) {
	// Unwrap already-typed values so the rules below only see plain Go values
	if v, ok := raw.(data.Value); ok {
		raw = v.Interface()
	}

	switch col.Type {
	case ColumnTypeInt:
		if n, ok := toInt64(raw); ok {
			return data.Int(n), nil
		}
		return data.Value{}, typeMismatchError(table, col.Name, raw, "integer")

	case ColumnTypeText:
		return data.Text(toText(raw)), nil

	case ColumnTypeDate:
		switch v := raw.(type) {
		case time.Time:
			if !data.InDateRange(v) {
				return data.Value{}, typeMismatchError(table, col.Name, raw, "date between years 1 and 9999")
			}
			return data.Date(v), nil
		case string:
			d, err := data.ParseDate(v)
			if err != nil {
				return data.Value{}, typeMismatchError(table, col.Name, raw, "date (YYYY-MM-DD)")
			}
			return d, nil
		}
		return data.Value{}, typeMismatchError(table, col.Name, raw, "date (YYYY-MM-DD)")

	default:
		return data.Value{}, fmt.Errorf("unknown column type %q", col.Type)
	}
}

// toInt64 accepts Go integer kinds, integral floats (JSON numbers) and
// strings holding a base-10 integer
func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), true
		}
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func toText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(data.DateLayout)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func typeMismatchError(table, col string, val any, expected string) *errors.TypeError {
	return &errors.TypeError{
		Table:    table,
		Column:   col,
		Value:    val,
		Expected: expected,
	}
}
