package executor

import (
	"fmt"

	"github.com/leengari/simple-rdbms/internal/parser/ast"
)

func executeSelect(stmt *ast.SelectStatement, ctx *ExecutionContext) (*Result, error) {
	tableName := stmt.TableName.Value

	var where map[string]any
	if len(stmt.Where) > 0 {
		where = ast.Assignments(stmt.Where)
	}

	rows, err := ctx.Database.Select(tableName, where)
	if err != nil {
		return nil, err
	}

	s, err := ctx.Database.Table(tableName)
	if err != nil {
		return nil, err
	}

	return &Result{
		Columns: s.ColumnNames(),
		Rows:    rows,
		Message: fmt.Sprintf("Returned %d rows", len(rows)),
	}, nil
}
