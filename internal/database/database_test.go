package database

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/assert"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
	"github.com/leengari/simple-rdbms/internal/domain/schema"
)

func openTemp(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "database.json"))
	assert.NilError(t, err)
	return db
}

func cols(pairs ...string) []schema.Column {
	out := make([]schema.Column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, schema.Column{Name: pairs[i], Type: schema.ColumnType(pairs[i+1])})
	}
	return out
}

func TestOpenMissingFile(t *testing.T) {
	db := openTemp(t)
	assert.Equal(t, len(db.ListTables()), 0)

	_, err := os.Stat(db.Path)
	assert.Assert(t, os.IsNotExist(err), "opening must not create the file")
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	assert.NilError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path)
	var cerr *errors.CorruptionError
	assert.Assert(t, stderrors.As(err, &cerr), "expected CorruptionError, got %v", err)
}

func TestPersistenceRoundTrip(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("test", cols("id", "int"), "id", nil))
	assert.NilError(t, db.Insert("test", map[string]any{"id": 1}))

	reopened, err := Open(db.Path)
	assert.NilError(t, err)

	rows, err := reopened.Select("test", nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, rows, []data.Row{{"id": data.Int(1)}})
}

func TestOutOfRangeDateKeepsFileLoadable(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("t", cols("id", "int", "d", "date"), "id", nil))
	assert.NilError(t, db.Insert("t", map[string]any{"id": 1, "d": time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)}))

	err := db.Insert("t", map[string]any{"id": 2, "d": time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)})
	var terr *errors.TypeError
	assert.Assert(t, stderrors.As(err, &terr), "expected TypeError, got %v", err)

	reopened, err := Open(db.Path)
	assert.NilError(t, err)
	rows, err := reopened.Select("t", nil)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
}

func TestCreateTableErrors(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("users", cols("id", "int", "name", "str"), "id", []string{"name"}))

	tests := []struct {
		name    string
		table   string
		columns []schema.Column
		pk      string
		uniques []string
	}{
		{"existing table", "users", cols("id", "int"), "id", nil},
		{"pk not a column", "t", cols("id", "int"), "nope", nil},
		{"unique not a column", "t", cols("id", "int"), "id", []string{"nope"}},
		{"unknown type", "t", cols("id", "float"), "id", nil},
		{"repeated column", "t", cols("id", "int", "id", "str"), "id", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := db.CreateTable(tt.table, tt.columns, tt.pk, tt.uniques)
			var serr *errors.SchemaError
			assert.Assert(t, stderrors.As(err, &serr), "expected SchemaError, got %v", err)
		})
	}

	assert.DeepEqual(t, db.ListTables(), []string{"users"})
}

func TestInsertDuplicatePrimaryKey(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("users", cols("id", "int", "name", "str"), "id", nil))
	assert.NilError(t, db.Insert("users", map[string]any{"id": 1, "name": "Sam"}))

	err := db.Insert("users", map[string]any{"id": 1, "name": "Other"})
	var cerr *errors.ConstraintError
	assert.Assert(t, stderrors.As(err, &cerr), "expected ConstraintError, got %v", err)
	assert.Equal(t, cerr.Constraint, "primary_key")

	rows, err := db.Select("users", nil)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)

	// the failed insert must not reach the file either
	reopened, err := Open(db.Path)
	assert.NilError(t, err)
	rows, err = reopened.Select("users", nil)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
}

func TestInsertCoercionRoundTrip(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("people", cols("id", "int", "dob", "date"), "id", nil))
	assert.NilError(t, db.Insert("people", map[string]any{"id": "1", "dob": "2000-01-01"}))

	rows, err := db.Select("people", map[string]any{"id": 1})
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
	assert.Equal(t, rows[0]["id"], data.Int(1))
	assert.Equal(t, rows[0]["dob"], data.Date(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestUpdateAndDelete(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("users", cols("id", "int", "email", "str"), "id", []string{"email"}))
	assert.NilError(t, db.Insert("users", map[string]any{"id": 1, "email": "a@x.io"}))
	assert.NilError(t, db.Insert("users", map[string]any{"id": 2, "email": "b@x.io"}))

	assert.NilError(t, db.Update("users", map[string]any{"id": 1}, map[string]any{"email": "c@x.io"}))

	err := db.Update("users", map[string]any{"id": 1}, map[string]any{"id": 5})
	var serr *errors.SchemaError
	assert.Assert(t, stderrors.As(err, &serr), "expected SchemaError, got %v", err)

	err = db.Update("users", map[string]any{"id": 2}, map[string]any{"email": "c@x.io"})
	var cerr *errors.ConstraintError
	assert.Assert(t, stderrors.As(err, &cerr), "expected ConstraintError, got %v", err)

	err = db.Delete("users", map[string]any{"id": 9})
	var nerr *errors.NotFoundError
	assert.Assert(t, stderrors.As(err, &nerr), "expected NotFoundError, got %v", err)

	assert.NilError(t, db.Delete("users", map[string]any{"id": 2}))

	reopened, err := Open(db.Path)
	assert.NilError(t, err)
	rows, err := reopened.Select("users", nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, rows, []data.Row{{"id": data.Int(1), "email": data.Text("c@x.io")}})
}

func TestMissingTable(t *testing.T) {
	db := openTemp(t)

	calls := map[string]func() error{
		"insert": func() error { return db.Insert("ghost", map[string]any{"id": 1}) },
		"select": func() error { _, err := db.Select("ghost", nil); return err },
		"update": func() error { return db.Update("ghost", map[string]any{"id": 1}, map[string]any{"a": 1}) },
		"delete": func() error { return db.Delete("ghost", map[string]any{"id": 1}) },
		"index":  func() error { return db.CreateIndex("ghost", "id") },
		"join":   func() error { _, err := db.Join("ghost", "ghost", "id"); return err },
		"schema": func() error { _, err := db.Table("ghost"); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			var nerr *errors.NotFoundError
			err := call()
			assert.Assert(t, stderrors.As(err, &nerr), "expected NotFoundError, got %v", err)
			assert.Equal(t, nerr.Table, "ghost")
		})
	}
}

func TestJoin(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("users", cols("id", "int", "name", "str"), "id", nil))
	assert.NilError(t, db.CreateTable("orders", cols("order_id", "int", "id", "int"), "order_id", nil))
	assert.NilError(t, db.Insert("users", map[string]any{"id": 1, "name": "Sam"}))
	assert.NilError(t, db.Insert("orders", map[string]any{"order_id": 100, "id": 1}))

	rows, err := db.Join("users", "orders", "id")
	assert.NilError(t, err)
	assert.DeepEqual(t, rows, []data.Row{{
		"id":              data.Int(1),
		"name":            data.Text("Sam"),
		"orders_order_id": data.Int(100),
		"orders_id":       data.Int(1),
	}})

	_, err = db.Join("users", "missing", "id")
	var nerr *errors.NotFoundError
	assert.Assert(t, stderrors.As(err, &nerr))
}

func TestCreateIndexIsNotPersisted(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("users", cols("id", "int", "city", "str"), "id", nil))
	assert.NilError(t, db.Insert("users", map[string]any{"id": 1, "city": "Oslo"}))
	assert.NilError(t, db.CreateIndex("users", "city"))

	assert.DeepEqual(t, db.Tables["users"].Indexes["city"].Lookup(data.Text("Oslo")), []int{0})

	err := db.CreateIndex("users", "nope")
	var serr *errors.SchemaError
	assert.Assert(t, stderrors.As(err, &serr))

	reopened, err := Open(db.Path)
	assert.NilError(t, err)
	_, ok := reopened.Tables["users"].Indexes["city"]
	assert.Assert(t, !ok)
	_, ok = reopened.Tables["users"].Indexes["id"]
	assert.Assert(t, ok)
}

func TestTableReturnsCopy(t *testing.T) {
	db := openTemp(t)
	assert.NilError(t, db.CreateTable("users", cols("id", "int"), "id", nil))

	s, err := db.Table("users")
	assert.NilError(t, err)
	s.Columns[0].Name = "changed"

	assert.DeepEqual(t, db.Tables["users"].Schema.ColumnNames(), []string{"id"})
}
