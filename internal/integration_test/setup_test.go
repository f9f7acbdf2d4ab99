package integration

import (
	"path/filepath"
	"testing"

	"github.com/leengari/simple-rdbms/internal/database"
	"github.com/leengari/simple-rdbms/internal/engine"
	"github.com/leengari/simple-rdbms/internal/executor"
)

// setupTestEngine opens a fresh database file in a temp dir and seeds it
// with users and orders
func setupTestEngine(t *testing.T) (*engine.Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testdb.json")
	eng := openEngine(t, path)

	mustExec(t, eng,
		"CREATE TABLE users (id int PRIMARY KEY, username str UNIQUE, email str UNIQUE, joined date);",
		"INSERT INTO users (id, username, email, joined) VALUES (1, alice, 'alice@example.com', 2023-01-15);",
		"INSERT INTO users (id, username, email, joined) VALUES (2, bob, 'bob@example.com', 2023-02-01);",
		"INSERT INTO users (id, username, email) VALUES (3, guest, 'guest@example.com');",
		"CREATE TABLE orders (order_id int PRIMARY KEY, user_id int, product str);",
		"INSERT INTO orders (order_id, user_id, product) VALUES (100, 1, 'Laptop');",
		"INSERT INTO orders (order_id, user_id, product) VALUES (101, 1, 'Mouse');",
		"INSERT INTO orders (order_id, user_id, product) VALUES (102, 2, 'Keyboard');",
		"INSERT INTO orders (order_id, user_id, product) VALUES (103, 9, 'Orphan');",
	)

	return eng, path
}

// openEngine loads the database at path as a fresh process would
func openEngine(t *testing.T, path string) *engine.Engine {
	t.Helper()
	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("Failed to load database: %v", err)
	}
	return engine.New(db)
}

func mustExec(t *testing.T, eng *engine.Engine, statements ...string) *executor.Result {
	t.Helper()
	var result *executor.Result
	for _, sql := range statements {
		var err error
		result, err = eng.Execute(sql)
		if err != nil {
			t.Fatalf("%s: %v", sql, err)
		}
	}
	return result
}
