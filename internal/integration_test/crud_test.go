package integration

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
	"github.com/leengari/simple-rdbms/internal/query/operations/testutil"
)

// TestCRUDOperations tests all CRUD operations against an isolated database file
func TestCRUDOperations(t *testing.T) {
	eng, path := setupTestEngine(t)

	t.Run("SelectAll", func(t *testing.T) {
		result := mustExec(t, eng, "SELECT * FROM users")
		testutil.AssertRowCount(t, len(result.Rows), 3, "users")

		// insertion order is preserved
		for i, want := range []int64{1, 2, 3} {
			testutil.AssertValue(t, result.Rows[i], "id", data.Int(want), "row order")
		}
	})

	t.Run("SelectWhere", func(t *testing.T) {
		result := mustExec(t, eng, "SELECT * FROM users WHERE username = guest")
		testutil.AssertRowCount(t, len(result.Rows), 1, "guest lookup")
		testutil.AssertColumnNotExists(t, result.Rows[0], "joined", "guest has no join date")
	})

	t.Run("SelectByDate", func(t *testing.T) {
		result := mustExec(t, eng, "SELECT * FROM users WHERE joined = '2023-02-01'")
		testutil.AssertRowCount(t, len(result.Rows), 1, "date filter")
		testutil.AssertValue(t, result.Rows[0], "username", data.Text("bob"), "date filter")
		testutil.AssertValue(t, result.Rows[0], "joined", data.Date(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)), "date filter")
	})

	t.Run("SelectUncoercibleFilter", func(t *testing.T) {
		result := mustExec(t, eng, "SELECT * FROM users WHERE id = abc")
		testutil.AssertRowCount(t, len(result.Rows), 0, "uncoercible filter")

		result = mustExec(t, eng, "SELECT * FROM users WHERE nope = 1")
		testutil.AssertRowCount(t, len(result.Rows), 0, "unknown column filter")
	})

	t.Run("InsertDuplicates", func(t *testing.T) {
		var cerr *errors.ConstraintError

		_, err := eng.Execute("INSERT INTO users (id, username, email) VALUES (1, zed, 'z@example.com')")
		if !stderrors.As(err, &cerr) || cerr.Constraint != "primary_key" {
			t.Errorf("Expected primary key violation, got %v", err)
		}

		_, err = eng.Execute("INSERT INTO users (id, username, email) VALUES (4, zed, 'alice@example.com')")
		if !stderrors.As(err, &cerr) || cerr.Column != "email" {
			t.Errorf("Expected unique violation on email, got %v", err)
		}

		result := mustExec(t, eng, "SELECT * FROM users")
		testutil.AssertRowCount(t, len(result.Rows), 3, "after rejected inserts")
	})

	t.Run("InsertTypeErrors", func(t *testing.T) {
		var terr *errors.TypeError
		_, err := eng.Execute("INSERT INTO users (id, username) VALUES (seven, zed)")
		if !stderrors.As(err, &terr) {
			t.Errorf("Expected TypeError for int column, got %v", err)
		}
		_, err = eng.Execute("INSERT INTO users (id, joined) VALUES (8, 'soon')")
		if !stderrors.As(err, &terr) {
			t.Errorf("Expected TypeError for date column, got %v", err)
		}

		var serr *errors.SchemaError
		_, err = eng.Execute("INSERT INTO users (username) VALUES (nobody)")
		if !stderrors.As(err, &serr) {
			t.Errorf("Expected SchemaError for missing primary key, got %v", err)
		}
	})

	t.Run("PersistsAcrossRestart", func(t *testing.T) {
		mustExec(t, eng, "INSERT INTO users (id, username, email) VALUES ('4', dave, 'dave@example.com');")

		restarted := openEngine(t, path)
		result := mustExec(t, restarted, "SELECT * FROM users WHERE id = 4")
		testutil.AssertRowCount(t, len(result.Rows), 1, "reloaded row")
		testutil.AssertRowEqual(t, result.Rows[0], data.Row{
			"id":       data.Int(4),
			"username": data.Text("dave"),
			"email":    data.Text("dave@example.com"),
		}, "reloaded row")

		result = mustExec(t, restarted, "SELECT * FROM users WHERE username = alice")
		testutil.AssertValue(t, result.Rows[0], "joined", data.Date(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)), "date round-trip")

		// constraints are enforced after reload through the rebuilt indexes
		_, err := restarted.Execute("INSERT INTO users (id, username, email) VALUES (5, dave, 'other@example.com')")
		testutil.AssertError(t, err, "unique constraint after reload")
	})
}

func TestCreateTableErrors(t *testing.T) {
	eng, _ := setupTestEngine(t)

	tests := []struct {
		name string
		sql  string
	}{
		{"duplicate table", "CREATE TABLE users (id int PRIMARY KEY)"},
		{"unknown type", "CREATE TABLE t (id float PRIMARY KEY)"},
		{"repeated column", "CREATE TABLE t (id int PRIMARY KEY, id str)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Execute(tt.sql)
			var serr *errors.SchemaError
			if !stderrors.As(err, &serr) {
				t.Errorf("Expected SchemaError, got %v", err)
			}
		})
	}

	_, err := eng.Execute("CREATE TABLE t (id int)")
	var perr *errors.ParseError
	if !stderrors.As(err, &perr) {
		t.Errorf("Expected ParseError without PRIMARY KEY, got %v", err)
	}

	tables, err := eng.ListTables()
	testutil.AssertNoError(t, err, "ListTables")
	if len(tables) != 2 || tables[0] != "orders" || tables[1] != "users" {
		t.Errorf("Expected [orders users], got %v", tables)
	}
}

func TestTypeAliases(t *testing.T) {
	eng, path := setupTestEngine(t)

	mustExec(t, eng,
		"CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT, title String, due Date)",
		"INSERT INTO notes (id, body, title, due) VALUES (1, 42, hello, 2024-12-31)",
	)

	result := mustExec(t, eng, "SELECT * FROM notes")
	testutil.AssertValue(t, result.Rows[0], "body", data.Text("42"), "integer literal into text column")

	restarted := openEngine(t, path)
	s, err := restarted.Database().Table("notes")
	testutil.AssertNoError(t, err, "schema lookup")
	for i, want := range []string{"int", "str", "str", "date"} {
		if string(s.Columns[i].Type) != want {
			t.Errorf("column %d: expected canonical type %s, got %s", i, want, s.Columns[i].Type)
		}
	}
}
