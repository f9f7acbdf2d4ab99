package schema

import (
	"github.com/leengari/simple-rdbms/internal/domain/errors"
)

// TableSchema describes a table's columns and constraints
type TableSchema struct {
	TableName  string
	Columns    []Column
	PrimaryKey string
	Uniques    []string
}

// NewTableSchema validates a table definition.
// Column types may use any accepted alias and are stored in canonical form.
func NewTableSchema(name string, columns []Column, primaryKey string, uniques []string) (*TableSchema, error) {
	if name == "" {
		return nil, &errors.SchemaError{Table: name, Reason: "table name is required"}
	}
	if len(columns) == 0 {
		return nil, &errors.SchemaError{Table: name, Reason: "at least one column is required"}
	}

	s := &TableSchema{
		TableName:  name,
		Columns:    make([]Column, 0, len(columns)),
		PrimaryKey: primaryKey,
		Uniques:    make([]string, 0, len(uniques)),
	}

	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col.Name == "" {
			return nil, &errors.SchemaError{Table: name, Reason: "column name is required"}
		}
		if seen[col.Name] {
			return nil, &errors.SchemaError{Table: name, Column: col.Name, Reason: "duplicate column"}
		}
		seen[col.Name] = true

		typ, err := ParseColumnType(string(col.Type))
		if err != nil {
			return nil, &errors.SchemaError{Table: name, Column: col.Name, Reason: err.Error()}
		}
		s.Columns = append(s.Columns, Column{Name: col.Name, Type: typ})
	}

	if !seen[primaryKey] {
		return nil, &errors.SchemaError{Table: name, Column: primaryKey, Reason: "primary key must be a column"}
	}

	listed := make(map[string]bool, len(uniques))
	for _, u := range uniques {
		if !seen[u] {
			return nil, &errors.SchemaError{Table: name, Column: u, Reason: "unique column must be a column"}
		}
		if listed[u] {
			continue
		}
		listed[u] = true
		s.Uniques = append(s.Uniques, u)
	}

	return s, nil
}

// Column looks up a column by name
func (s *TableSchema) Column(name string) (Column, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

func (s *TableSchema) HasColumn(name string) bool {
	_, ok := s.Column(name)
	return ok
}

// ColumnNames returns column names in declaration order
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// IsUnique reports whether column carries a UNIQUE constraint
func (s *TableSchema) IsUnique(column string) bool {
	for _, u := range s.Uniques {
		if u == column {
			return true
		}
	}
	return false
}

// Copy returns a deep copy safe to hand to callers
func (s *TableSchema) Copy() *TableSchema {
	cp := &TableSchema{
		TableName:  s.TableName,
		Columns:    make([]Column, len(s.Columns)),
		PrimaryKey: s.PrimaryKey,
		Uniques:    make([]string, len(s.Uniques)),
	}
	copy(cp.Columns, s.Columns)
	copy(cp.Uniques, s.Uniques)
	return cp
}
