// Package database holds the explicit Database instance: the set of tables
// loaded from one JSON file, and the public engine operations over them.
// Every successful mutation is flushed to the file before returning.
package database

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
	"github.com/leengari/simple-rdbms/internal/domain/schema"
	"github.com/leengari/simple-rdbms/internal/query/operations"
	"github.com/leengari/simple-rdbms/internal/storage"
)

// Database represents a single database backed by one file on disk
type Database struct {
	Path   string // filesystem path of the JSON document
	Tables map[string]*schema.Table
}

// Open loads the database stored at path. A missing file yields an empty
// database; an unreadable or corrupted file is returned as an error.
func Open(path string) (*Database, error) {
	tables, err := storage.LoadDatabase(path)
	if err != nil {
		return nil, err
	}

	return &Database{
		Path:   path,
		Tables: tables,
	}, nil
}

// CreateTable adds an empty table with indexes on the primary key and unique columns
func (db *Database) CreateTable(name string, columns []schema.Column, primaryKey string, uniques []string) error {
	if _, exists := db.Tables[name]; exists {
		return &errors.SchemaError{Table: name, Reason: "table already exists"}
	}

	s, err := schema.NewTableSchema(name, columns, primaryKey, uniques)
	if err != nil {
		return err
	}

	db.Tables[name] = schema.NewTable(s)

	slog.Info("table created",
		slog.String("table", name),
		slog.Int("columns", len(s.Columns)),
		slog.String("primary_key", s.PrimaryKey),
	)

	return db.save()
}

// Insert adds row to table after coercion and constraint checks
func (db *Database) Insert(table string, row map[string]any) error {
	t, err := db.table(table)
	if err != nil {
		return err
	}

	if _, err := t.Insert(row); err != nil {
		return err
	}

	return db.save()
}

// Select returns copies of the rows of table matching every condition in where.
// A nil or empty where returns every row.
func (db *Database) Select(table string, where map[string]any) ([]data.Row, error) {
	t, err := db.table(table)
	if err != nil {
		return nil, err
	}

	return t.Select(where), nil
}

// Update applies updates to the single row identified by the primary key in where
func (db *Database) Update(table string, where, updates map[string]any) error {
	t, err := db.table(table)
	if err != nil {
		return err
	}

	if err := t.Update(where, updates); err != nil {
		return err
	}

	return db.save()
}

// Delete removes the single row identified by the primary key in where
func (db *Database) Delete(table string, where map[string]any) error {
	t, err := db.table(table)
	if err != nil {
		return err
	}

	if err := t.Delete(where); err != nil {
		return err
	}

	return db.save()
}

// CreateIndex builds a secondary index on column. Indexes are derived state,
// so nothing is written to disk.
func (db *Database) CreateIndex(table, column string) error {
	t, err := db.table(table)
	if err != nil {
		return err
	}

	return t.CreateIndex(column)
}

// Join performs an inner equality join of left and right on column
func (db *Database) Join(left, right, column string) ([]data.Row, error) {
	lt, err := db.table(left)
	if err != nil {
		return nil, err
	}
	rt, err := db.table(right)
	if err != nil {
		return nil, err
	}

	return operations.Join(lt, rt, column)
}

// ListTables returns the table names in sorted order
func (db *Database) ListTables() []string {
	names := make([]string, 0, len(db.Tables))
	for name := range db.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns a copy of the schema of the named table
func (db *Database) Table(name string) (*schema.TableSchema, error) {
	t, err := db.table(name)
	if err != nil {
		return nil, err
	}
	return t.Schema.Copy(), nil
}

func (db *Database) table(name string) (*schema.Table, error) {
	t, ok := db.Tables[name]
	if !ok {
		return nil, errors.TableNotFound(name)
	}
	return t, nil
}

// save flushes every table. The in-memory state keeps the mutation even when
// the write fails.
func (db *Database) save() error {
	if err := storage.SaveDatabase(db.Path, db.Tables); err != nil {
		return fmt.Errorf("failed to persist database: %w", err)
	}
	return nil
}
