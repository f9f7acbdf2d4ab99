package executor

import (
	"github.com/leengari/simple-rdbms/internal/domain/statement"
	"github.com/leengari/simple-rdbms/internal/parser/ast"
)

func executeDelete(stmt *ast.DeleteStatement, ctx *ExecutionContext) (*Result, error) {
	tableName := stmt.TableName.Value
	where := ast.Assignments(stmt.Where)

	if err := ctx.Database.Delete(tableName, where); err != nil {
		return nil, err
	}
	ctx.record(statement.ChangeDelete, tableName, ctx.primaryKeyOf(tableName, where))

	return &Result{
		Message:      "DELETE 1",
		RowsAffected: 1,
	}, nil
}
