package schema

import (
	"log/slog"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
)

// Insert validates input, checks primary key and unique constraints and appends the row.
// The caller's map is never stored; the coerced copy is returned.
func (t *Table) Insert(input map[string]any) (data.Row, error) {
	// 1. Coerce and validate (primary key required)
	row, err := ValidateAndCoerce(t.Schema, input, true)
	if err != nil {
		return nil, err
	}

	// 2. Primary key must be unique across all rows
	pk := t.Schema.PrimaryKey
	if t.findByPrimaryKey(row[pk]) >= 0 {
		return nil, errors.NewPrimaryKeyViolation(t.Name, pk, row[pk])
	}

	// 3. Unique columns must not repeat an existing value
	for _, col := range t.Schema.Uniques {
		val, ok := row[col]
		if !ok {
			continue
		}
		if t.findDuplicate(col, val, -1) >= 0 {
			return nil, errors.NewUniqueViolation(t.Name, col, val)
		}
	}

	// 4. Everything passed → safe to append and index the new position
	newRowPos := len(t.Rows)
	t.Rows = append(t.Rows, row)
	t.indexRow(newRowPos)

	slog.Debug("row inserted",
		slog.String("table", t.Name),
		slog.Int("position", newRowPos),
		slog.String("primary_key", keyOf(row, pk)))

	return row.Copy(), nil
}
