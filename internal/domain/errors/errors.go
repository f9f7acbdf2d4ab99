// Package errors defines the error kinds returned by the storage engine and
// the command parser. Callers match them with errors.As.
package errors

import (
	"fmt"
	"strings"
)

// SchemaError reports an unknown table or column, a missing or invalid
// primary key, or an attempt to change a primary key
type SchemaError struct {
	Table  string
	Column string // empty if table-level
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema error in %s.%s: %s", e.Table, e.Column, e.Reason)
	}
	return fmt.Sprintf("schema error in %s: %s", e.Table, e.Reason)
}

// ConstraintError represents a violation of a primary key or unique constraint
type ConstraintError struct {
	Table      string // table name
	Column     string // column name
	Value      any    // offending value (may be nil)
	Constraint string // "primary_key" or "unique"
	Reason     string // human-readable explanation (optional)
}

func (e *ConstraintError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func NewPrimaryKeyViolation(table, column string, value any) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "primary_key",
		Reason:     "duplicate primary key",
	}
}

func NewUniqueViolation(table, column string, value any) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "unique",
		Reason:     "duplicate value",
	}
}

// NotFoundError reports a missing table or row
type NotFoundError struct {
	Table string
	Key   any // primary key searched for; nil when the table itself is missing
}

func (e *NotFoundError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("table not found: %s", e.Table)
	}
	return fmt.Sprintf("row not found in %s: primary key %v", e.Table, e.Key)
}

func TableNotFound(table string) *NotFoundError {
	return &NotFoundError{Table: table}
}

func RowNotFound(table string, key any) *NotFoundError {
	return &NotFoundError{Table: table, Key: key}
}

// TypeError reports a value that cannot be coerced to its column's type
type TypeError struct {
	Table    string
	Column   string
	Value    any
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error in %s.%s: expected %s, got %T (%v)", e.Table, e.Column, e.Expected, e.Value, e.Value)
}

// ParseError reports a statement that does not match any supported grammar
type ParseError struct {
	Reason string
	Line   int // 0 if unknown
	Column int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d, col %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

// NewParseError builds a ParseError with a formatted reason
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// CorruptionError reports a persisted database file that exists but cannot be loaded
type CorruptionError struct {
	Path   string
	Reason string
	Err    error
}

func (e *CorruptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("database file %s is corrupted: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("database file %s is corrupted: %s", e.Path, e.Reason)
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}
