package integration

import (
	stderrors "errors"
	"testing"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
	"github.com/leengari/simple-rdbms/internal/query/operations/testutil"
)

// TestJoinOnPrimaryKeyFallback joins orders.user_id against users, which has
// no user_id column, so users' primary key is compared instead
func TestJoinOnPrimaryKeyFallback(t *testing.T) {
	eng, _ := setupTestEngine(t)

	result := mustExec(t, eng, "JOIN orders users ON user_id;")
	testutil.AssertRowCount(t, len(result.Rows), 3, "orders with a user")

	expectedCols := []string{"order_id", "user_id", "product", "users_id", "users_username", "users_email", "users_joined"}
	if len(result.Columns) != len(expectedCols) {
		t.Fatalf("Expected columns %v, got %v", expectedCols, result.Columns)
	}
	for i, col := range expectedCols {
		if result.Columns[i] != col {
			t.Errorf("Column %d: expected %s, got %s", i, col, result.Columns[i])
		}
	}

	// left order first, right order second
	for i, want := range []int64{100, 101, 102} {
		testutil.AssertValue(t, result.Rows[i], "order_id", data.Int(want), "join order")
	}
	testutil.AssertValue(t, result.Rows[2], "users_username", data.Text("bob"), "joined user")

	for _, row := range result.Rows {
		testutil.AssertColumnExists(t, row, "users_email", "joined row")
	}
	// order 103 references a missing user and has no match
}

func TestJoinOnSharedColumn(t *testing.T) {
	eng, _ := setupTestEngine(t)

	mustExec(t, eng,
		"CREATE TABLE reviews (review_id int PRIMARY KEY, id int, stars int)",
		"INSERT INTO reviews (review_id, id, stars) VALUES (1, 1, 5)",
		"INSERT INTO reviews (review_id, id, stars) VALUES (2, 1, 3)",
		"INSERT INTO reviews (review_id, stars) VALUES (3, 4)",
	)

	result := mustExec(t, eng, "JOIN users reviews ON id")
	testutil.AssertRowCount(t, len(result.Rows), 2, "alice's reviews")
	for _, row := range result.Rows {
		testutil.AssertValue(t, row, "username", data.Text("alice"), "left side")
		testutil.AssertValue(t, row, "reviews_id", data.Int(1), "right side")
	}
	testutil.AssertValue(t, result.Rows[1], "reviews_stars", data.Int(3), "right order")
}

func TestJoinErrors(t *testing.T) {
	eng, _ := setupTestEngine(t)

	_, err := eng.Execute("JOIN users ghosts ON id")
	var nerr *errors.NotFoundError
	if !stderrors.As(err, &nerr) || nerr.Table != "ghosts" {
		t.Errorf("Expected NotFoundError for ghosts, got %v", err)
	}

	_, err = eng.Execute("JOIN users ON id")
	var perr *errors.ParseError
	if !stderrors.As(err, &perr) {
		t.Errorf("Expected ParseError, got %v", err)
	}
}

func TestJoinDoesNotMutate(t *testing.T) {
	eng, _ := setupTestEngine(t)

	before := mustExec(t, eng, "SELECT * FROM orders")
	mustExec(t, eng, "JOIN orders users ON user_id")
	after := mustExec(t, eng, "SELECT * FROM orders")

	testutil.AssertRowCount(t, len(after.Rows), len(before.Rows), "orders")
	for i := range before.Rows {
		testutil.AssertRowEqual(t, after.Rows[i], before.Rows[i], "orders row")
	}
}
