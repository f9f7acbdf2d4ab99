package executor

import (
	"github.com/leengari/simple-rdbms/internal/domain/statement"
	"github.com/leengari/simple-rdbms/internal/parser/ast"
)

func executeUpdate(stmt *ast.UpdateStatement, ctx *ExecutionContext) (*Result, error) {
	tableName := stmt.TableName.Value
	where := ast.Assignments(stmt.Where)

	if err := ctx.Database.Update(tableName, where, ast.Assignments(stmt.Set)); err != nil {
		return nil, err
	}
	ctx.record(statement.ChangeUpdate, tableName, ctx.primaryKeyOf(tableName, where))

	return &Result{
		Message:      "UPDATE 1",
		RowsAffected: 1,
	}, nil
}
