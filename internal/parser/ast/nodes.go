package ast

import (
	"bytes"
	"strings"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents a standalone command (CREATE TABLE, SELECT, JOIN, etc.)
type Statement interface {
	Node
	statementNode()
}

// Identifier represents a column or table name
type Identifier struct {
	TokenLiteralValue string // The token literal (e.g. "users")
	Value             string // The value (e.g. "users")
}

func (i *Identifier) TokenLiteral() string { return i.TokenLiteralValue }
func (i *Identifier) String() string       { return i.Value }

// LiteralKind tells integer literals apart from text
type LiteralKind int

const (
	LiteralText LiteralKind = iota
	LiteralInt
)

// Literal represents a fixed value. Value holds an int64 for LiteralInt and
// a string for LiteralText; column types decide the final coercion.
type Literal struct {
	TokenLiteralValue string
	Value             any
	Kind              LiteralKind
}

func (l *Literal) TokenLiteral() string { return l.TokenLiteralValue }
func (l *Literal) String() string {
	if l.Kind == LiteralText {
		return "'" + l.TokenLiteralValue + "'"
	}
	return l.TokenLiteralValue
}

// Assignment is a "column = value" pair, used by WHERE conditions and SET lists
type Assignment struct {
	Column *Identifier
	Value  *Literal
}

func (a *Assignment) TokenLiteral() string { return "=" }
func (a *Assignment) String() string       { return a.Column.String() + " = " + a.Value.String() }

// Assignments converts a list of pairs into the map form the storage layer takes.
// A repeated column keeps its last value.
func Assignments(list []*Assignment) map[string]any {
	out := make(map[string]any, len(list))
	for _, a := range list {
		out[a.Column.Value] = a.Value.Value
	}
	return out
}

func joinAssignments(list []*Assignment, sep string) string {
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = a.String()
	}
	return strings.Join(parts, sep)
}

// ColumnDefinition: name type [PRIMARY KEY] [UNIQUE]
type ColumnDefinition struct {
	Name       *Identifier
	Type       string
	PrimaryKey bool
	Unique     bool
}

func (c *ColumnDefinition) TokenLiteral() string { return c.Name.TokenLiteral() }
func (c *ColumnDefinition) String() string {
	var out bytes.Buffer
	out.WriteString(c.Name.String())
	out.WriteString(" ")
	out.WriteString(c.Type)
	if c.PrimaryKey {
		out.WriteString(" PRIMARY KEY")
	}
	if c.Unique {
		out.WriteString(" UNIQUE")
	}
	return out.String()
}

// CreateTableStatement: CREATE TABLE name (col type [PRIMARY KEY|UNIQUE], ...)
type CreateTableStatement struct {
	TableName *Identifier
	Columns   []*ColumnDefinition
}

func (s *CreateTableStatement) statementNode()       {}
func (s *CreateTableStatement) TokenLiteral() string { return "CREATE" }
func (s *CreateTableStatement) String() string {
	var out bytes.Buffer
	out.WriteString("CREATE TABLE ")
	out.WriteString(s.TableName.String())
	out.WriteString(" (")
	for i, c := range s.Columns {
		out.WriteString(c.String())
		if i < len(s.Columns)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}

// PrimaryKey returns the name of the column marked PRIMARY KEY, or ""
func (s *CreateTableStatement) PrimaryKey() string {
	for _, c := range s.Columns {
		if c.PrimaryKey {
			return c.Name.Value
		}
	}
	return ""
}

// Uniques returns the names of the columns marked UNIQUE in declaration order
func (s *CreateTableStatement) Uniques() []string {
	var out []string
	for _, c := range s.Columns {
		if c.Unique {
			out = append(out, c.Name.Value)
		}
	}
	return out
}

// InsertStatement: INSERT INTO table (col1, col2) VALUES (val1, val2)
type InsertStatement struct {
	TableName *Identifier
	Columns   []*Identifier
	Values    []*Literal
}

func (s *InsertStatement) statementNode()       {}
func (s *InsertStatement) TokenLiteral() string { return "INSERT" }
func (s *InsertStatement) String() string {
	var out bytes.Buffer
	out.WriteString("INSERT INTO ")
	out.WriteString(s.TableName.String())
	out.WriteString(" (")
	for i, c := range s.Columns {
		out.WriteString(c.String())
		if i < len(s.Columns)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(") VALUES (")
	for i, v := range s.Values {
		out.WriteString(v.String())
		if i < len(s.Values)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}

// Row pairs columns with values. The parser guarantees equal lengths.
func (s *InsertStatement) Row() map[string]any {
	row := make(map[string]any, len(s.Columns))
	for i, c := range s.Columns {
		row[c.Value] = s.Values[i].Value
	}
	return row
}

// SelectStatement: SELECT * FROM table [WHERE c = v AND ...]
type SelectStatement struct {
	TableName *Identifier
	Where     []*Assignment // nil when there is no WHERE clause
}

func (s *SelectStatement) statementNode()       {}
func (s *SelectStatement) TokenLiteral() string { return "SELECT" }
func (s *SelectStatement) String() string {
	var out bytes.Buffer
	out.WriteString("SELECT * FROM ")
	out.WriteString(s.TableName.String())
	if len(s.Where) > 0 {
		out.WriteString(" WHERE ")
		out.WriteString(joinAssignments(s.Where, " AND "))
	}
	return out.String()
}

// UpdateStatement: UPDATE table SET c = v, ... WHERE c = v AND ...
type UpdateStatement struct {
	TableName *Identifier
	Set       []*Assignment
	Where     []*Assignment
}

func (s *UpdateStatement) statementNode()       {}
func (s *UpdateStatement) TokenLiteral() string { return "UPDATE" }
func (s *UpdateStatement) String() string {
	return "UPDATE " + s.TableName.String() +
		" SET " + joinAssignments(s.Set, ", ") +
		" WHERE " + joinAssignments(s.Where, " AND ")
}

// DeleteStatement: DELETE FROM table WHERE c = v AND ...
type DeleteStatement struct {
	TableName *Identifier
	Where     []*Assignment
}

func (s *DeleteStatement) statementNode()       {}
func (s *DeleteStatement) TokenLiteral() string { return "DELETE" }
func (s *DeleteStatement) String() string {
	return "DELETE FROM " + s.TableName.String() + " WHERE " + joinAssignments(s.Where, " AND ")
}

// JoinStatement: JOIN left right ON column
type JoinStatement struct {
	Left   *Identifier
	Right  *Identifier
	Column *Identifier
}

func (s *JoinStatement) statementNode()       {}
func (s *JoinStatement) TokenLiteral() string { return "JOIN" }
func (s *JoinStatement) String() string {
	return "JOIN " + s.Left.String() + " " + s.Right.String() + " ON " + s.Column.String()
}
