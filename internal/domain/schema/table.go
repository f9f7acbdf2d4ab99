package schema

import (
	"github.com/leengari/simple-rdbms/internal/domain/data"
)

// Table represents a database table with its schema, data, and indexes
type Table struct {
	Name    string
	Schema  *TableSchema
	Rows    []data.Row
	Indexes map[string]*data.Index
}

// NewTable creates an empty table with indexes on the primary key and every unique column
func NewTable(s *TableSchema) *Table {
	t := &Table{
		Name:    s.TableName,
		Schema:  s,
		Rows:    []data.Row{},
		Indexes: make(map[string]*data.Index),
	}
	t.installConstraintIndexes()
	return t
}

// keyOf renders the primary key of row for log attributes
func keyOf(row data.Row, pk string) string {
	return row[pk].String()
}

// findByPrimaryKey returns the position of the row with the given key, or -1.
// Rows are scanned so the answer never depends on index state.
func (t *Table) findByPrimaryKey(key data.Value) int {
	for i, row := range t.Rows {
		if row[t.Schema.PrimaryKey] == key {
			return i
		}
	}
	return -1
}

// findDuplicate returns the position of a row other than skip holding value in column, or -1
func (t *Table) findDuplicate(column string, value data.Value, skip int) int {
	for i, row := range t.Rows {
		if i == skip {
			continue
		}
		if existing, ok := row[column]; ok && existing == value {
			return i
		}
	}
	return -1
}
