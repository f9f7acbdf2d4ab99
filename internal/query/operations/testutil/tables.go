package testutil

import (
	"testing"

	"github.com/leengari/simple-rdbms/internal/domain/schema"
)

// NewTable builds an empty table, failing the test on an invalid definition
func NewTable(t *testing.T, name string, columns []schema.Column, primaryKey string, uniques ...string) *schema.Table {
	t.Helper()
	s, err := schema.NewTableSchema(name, columns, primaryKey, uniques)
	if err != nil {
		t.Fatalf("invalid test table %s: %v", name, err)
	}
	return schema.NewTable(s)
}

// InsertRows inserts each row, failing the test on the first error
func InsertRows(t *testing.T, table *schema.Table, rows ...map[string]any) {
	t.Helper()
	for i, row := range rows {
		if _, err := table.Insert(row); err != nil {
			t.Fatalf("insert row %d into %s: %v", i, table.Name, err)
		}
	}
}

// CreateUsersTable creates a users table with sample data for testing
func CreateUsersTable(t *testing.T) *schema.Table {
	table := NewTable(t, "users",
		[]schema.Column{
			{Name: "id", Type: schema.ColumnTypeInt},
			{Name: "username", Type: schema.ColumnTypeText},
			{Name: "email", Type: schema.ColumnTypeText},
		},
		"id", "email")
	InsertRows(t, table,
		map[string]any{"id": 1, "username": "alice", "email": "alice@example.com"},
		map[string]any{"id": 2, "username": "bob", "email": "bob@example.com"},
		map[string]any{"id": 3, "username": "charlie", "email": "charlie@example.com"},
	)
	return table
}

// CreateOrdersTable creates an orders table with sample data for testing.
// Orders reference users through user_id; charlie (id 3) has no orders.
func CreateOrdersTable(t *testing.T) *schema.Table {
	table := NewTable(t, "orders",
		[]schema.Column{
			{Name: "order_id", Type: schema.ColumnTypeInt},
			{Name: "user_id", Type: schema.ColumnTypeInt},
			{Name: "product", Type: schema.ColumnTypeText},
			{Name: "placed", Type: schema.ColumnTypeDate},
		},
		"order_id")
	InsertRows(t, table,
		map[string]any{"order_id": 100, "user_id": 1, "product": "Laptop", "placed": "2024-01-13"},
		map[string]any{"order_id": 101, "user_id": 1, "product": "Mouse", "placed": "2024-02-01"},
		map[string]any{"order_id": 102, "user_id": 2, "product": "Keyboard", "placed": "2024-02-03"},
	)
	return table
}
