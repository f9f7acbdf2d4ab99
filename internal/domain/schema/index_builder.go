package schema

import (
	"log/slog"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
)

// installConstraintIndexes adds (and fills) indexes for the primary key and unique columns
func (t *Table) installConstraintIndexes() {
	t.Indexes[t.Schema.PrimaryKey] = data.NewIndex(t.Schema.PrimaryKey, true)
	for _, col := range t.Schema.Uniques {
		t.Indexes[col] = data.NewIndex(col, true)
	}
	t.RebuildIndexes()
}

// CreateIndex installs an index for column and builds it from the existing rows.
// Creating an index that already exists rebuilds it.
func (t *Table) CreateIndex(column string) error {
	if !t.Schema.HasColumn(column) {
		return &errors.SchemaError{Table: t.Name, Column: column, Reason: "invalid column"}
	}

	unique := column == t.Schema.PrimaryKey || t.Schema.IsUnique(column)
	idx := data.NewIndex(column, unique)
	fillIndex(idx, t.Rows)
	t.Indexes[column] = idx

	slog.Debug("index built",
		slog.String("table", t.Name),
		slog.String("column", column),
		slog.Int("distinct_values", len(idx.Data)),
		slog.Bool("unique_constraint", unique))

	return nil
}

// RebuildIndexes clears every index and re-scans all rows in order
func (t *Table) RebuildIndexes() {
	for _, idx := range t.Indexes {
		fillIndex(idx, t.Rows)
	}
}

// indexRow appends the row at pos to every index
func (t *Table) indexRow(pos int) {
	row := t.Rows[pos]
	for colName, idx := range t.Indexes {
		if val, exists := row[colName]; exists {
			idx.Add(val, pos)
		}
	}
}

// CheckConstraints verifies that the primary key is present and that the
// primary key and unique columns hold distinct values across all rows.
// It is used when rows come from outside the engine (loading from disk).
func (t *Table) CheckConstraints() error {
	pk := t.Schema.PrimaryKey
	seen := make(map[string]map[data.Value]bool)

	for _, row := range t.Rows {
		if _, ok := row[pk]; !ok {
			return &errors.SchemaError{Table: t.Name, Column: pk, Reason: "primary key is required"}
		}
	}

	for _, col := range append([]string{pk}, t.Schema.Uniques...) {
		seen[col] = make(map[data.Value]bool)
		for _, row := range t.Rows {
			val, ok := row[col]
			if !ok {
				continue
			}
			if seen[col][val] {
				if col == pk {
					return errors.NewPrimaryKeyViolation(t.Name, col, val)
				}
				return errors.NewUniqueViolation(t.Name, col, val)
			}
			seen[col][val] = true
		}
	}

	return nil
}

func fillIndex(idx *data.Index, rows []data.Row) {
	idx.Reset()
	for pos, row := range rows {
		if val, exists := row[idx.Column]; exists {
			idx.Add(val, pos)
		}
	}
}
