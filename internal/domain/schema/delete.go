package schema

import (
	"log/slog"

	"github.com/leengari/simple-rdbms/internal/domain/data"
)

// Delete removes the row identified by the primary key in where.
// Row positions shift, so every index is rebuilt.
func (t *Table) Delete(where map[string]any) error {
	pos, err := t.locate(where, "delete")
	if err != nil {
		return err
	}

	removed := t.Rows[pos]
	rows := make([]data.Row, 0, len(t.Rows)-1)
	rows = append(rows, t.Rows[:pos]...)
	rows = append(rows, t.Rows[pos+1:]...)
	t.Rows = rows

	t.RebuildIndexes()

	slog.Debug("row deleted",
		slog.String("table", t.Name),
		slog.String("primary_key", keyOf(removed, t.Schema.PrimaryKey)),
		slog.Int("remaining_rows", len(t.Rows)))

	return nil
}
