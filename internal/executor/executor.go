package executor

import (
	"fmt"

	"github.com/leengari/simple-rdbms/internal/database"
	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/statement"
	"github.com/leengari/simple-rdbms/internal/parser/ast"
)

type Result struct {
	Columns      []string
	Rows         []data.Row
	Message      string
	RowsAffected int
}

// ExecutionContext provides resources for execution
type ExecutionContext struct {
	Database  *database.Database
	Statement *statement.Statement // receives a Change per applied mutation; may be nil
}

// Execute maps one parsed statement onto one Database call
func Execute(stmt ast.Statement, ctx *ExecutionContext) (*Result, error) {
	if ctx == nil || ctx.Database == nil {
		return nil, fmt.Errorf("no database")
	}

	switch s := stmt.(type) {
	case *ast.CreateTableStatement:
		return executeCreateTable(s, ctx)
	case *ast.InsertStatement:
		return executeInsert(s, ctx)
	case *ast.SelectStatement:
		return executeSelect(s, ctx)
	case *ast.UpdateStatement:
		return executeUpdate(s, ctx)
	case *ast.DeleteStatement:
		return executeDelete(s, ctx)
	case *ast.JoinStatement:
		return executeJoin(s, ctx)
	default:
		return nil, fmt.Errorf("unsupported statement type: %T", stmt)
	}
}

func (ctx *ExecutionContext) record(changeType statement.ChangeType, table string, key any) {
	if ctx.Statement != nil {
		ctx.Statement.Record(changeType, table, key)
	}
}

// primaryKeyOf returns the primary key value found in values, or nil
func (ctx *ExecutionContext) primaryKeyOf(table string, values map[string]any) any {
	s, err := ctx.Database.Table(table)
	if err != nil {
		return nil
	}
	return values[s.PrimaryKey]
}
