package executor

import (
	"fmt"

	"github.com/leengari/simple-rdbms/internal/parser/ast"
	"github.com/leengari/simple-rdbms/internal/query/operations"
)

// executeJoin runs JOIN t1 t2 ON column. Result columns are the left table's
// columns followed by the right table's columns prefixed with its name.
func executeJoin(stmt *ast.JoinStatement, ctx *ExecutionContext) (*Result, error) {
	rows, err := ctx.Database.Join(stmt.Left.Value, stmt.Right.Value, stmt.Column.Value)
	if err != nil {
		return nil, err
	}

	left, err := ctx.Database.Table(stmt.Left.Value)
	if err != nil {
		return nil, err
	}
	right, err := ctx.Database.Table(stmt.Right.Value)
	if err != nil {
		return nil, err
	}

	return &Result{
		Columns: operations.JoinColumns(left, right),
		Rows:    rows,
		Message: fmt.Sprintf("Returned %d rows", len(rows)),
	}, nil
}
