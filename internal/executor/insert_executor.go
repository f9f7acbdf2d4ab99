package executor

import (
	"github.com/leengari/simple-rdbms/internal/domain/statement"
	"github.com/leengari/simple-rdbms/internal/parser/ast"
)

func executeInsert(stmt *ast.InsertStatement, ctx *ExecutionContext) (*Result, error) {
	tableName := stmt.TableName.Value
	row := stmt.Row()

	if err := ctx.Database.Insert(tableName, row); err != nil {
		return nil, err
	}
	ctx.record(statement.ChangeInsert, tableName, ctx.primaryKeyOf(tableName, row))

	return &Result{
		Message:      "INSERT 1",
		RowsAffected: 1,
	}, nil
}
