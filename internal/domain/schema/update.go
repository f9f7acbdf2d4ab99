package schema

import (
	"log/slog"

	"github.com/leengari/simple-rdbms/internal/domain/errors"
)

// Update changes the row identified by the primary key in where.
// The primary key itself can never be updated.
func (t *Table) Update(where, updates map[string]any) error {
	pos, err := t.locate(where, "update")
	if err != nil {
		return err
	}

	changes, err := ValidateAndCoerce(t.Schema, updates, false)
	if err != nil {
		return err
	}

	pk := t.Schema.PrimaryKey
	if _, ok := changes[pk]; ok {
		return &errors.SchemaError{Table: t.Name, Column: pk, Reason: "cannot update primary key"}
	}

	for _, col := range t.Schema.Uniques {
		val, ok := changes[col]
		if !ok {
			continue
		}
		if t.findDuplicate(col, val, pos) >= 0 {
			return errors.NewUniqueViolation(t.Name, col, val)
		}
	}

	// Validation done → apply column by column
	row := t.Rows[pos].Copy()
	for col, val := range changes {
		row[col] = val
	}
	t.Rows[pos] = row

	// Any indexed column may have changed
	t.RebuildIndexes()

	slog.Debug("row updated",
		slog.String("table", t.Name),
		slog.Int("position", pos),
		slog.Int("columns_changed", len(changes)))

	return nil
}

// locate finds the single row addressed by where.
// where must name the primary key; any other conditions must also hold for the row.
func (t *Table) locate(where map[string]any, op string) (int, error) {
	pk := t.Schema.PrimaryKey
	rawKey, ok := where[pk]
	if !ok {
		return -1, &errors.SchemaError{Table: t.Name, Column: pk, Reason: "primary key required for " + op}
	}

	filter, ok := t.coerceFilter(where)
	if !ok {
		return -1, errors.RowNotFound(t.Name, rawKey)
	}

	pos := t.findByPrimaryKey(filter[pk])
	if pos < 0 || !matches(t.Rows[pos], filter) {
		return -1, errors.RowNotFound(t.Name, filter[pk])
	}
	return pos, nil
}
