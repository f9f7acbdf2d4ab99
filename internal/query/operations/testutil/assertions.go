package testutil

import (
	"testing"

	"github.com/leengari/simple-rdbms/internal/domain/data"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a column exists in a row
func AssertColumnExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, exists := row[column]; !exists {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertColumnNotExists checks if a column does not exist in a row
func AssertColumnNotExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, exists := row[column]; exists {
		t.Errorf("%s: did not expect column '%s' to exist", context, column)
	}
}

// AssertValue checks a single cell
func AssertValue(t *testing.T, row data.Row, column string, expected data.Value, context string) {
	t.Helper()
	got, exists := row[column]
	if !exists {
		t.Errorf("%s: expected column '%s' to exist", context, column)
		return
	}
	if got != expected {
		t.Errorf("%s: expected %s=%v, got %v", context, column, expected, got)
	}
}

// AssertRowEqual checks that a row holds exactly the expected columns and values
func AssertRowEqual(t *testing.T, actual, expected data.Row, context string) {
	t.Helper()
	if !actual.Equal(expected) {
		t.Errorf("%s: expected row %v, got %v", context, expected, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
