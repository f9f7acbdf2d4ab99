package executor

import (
	"fmt"

	"github.com/leengari/simple-rdbms/internal/domain/schema"
	"github.com/leengari/simple-rdbms/internal/domain/statement"
	"github.com/leengari/simple-rdbms/internal/parser/ast"
)

func executeCreateTable(stmt *ast.CreateTableStatement, ctx *ExecutionContext) (*Result, error) {
	tableName := stmt.TableName.Value

	columns := make([]schema.Column, len(stmt.Columns))
	for i, def := range stmt.Columns {
		columns[i] = schema.Column{Name: def.Name.Value, Type: schema.ColumnType(def.Type)}
	}

	if err := ctx.Database.CreateTable(tableName, columns, stmt.PrimaryKey(), stmt.Uniques()); err != nil {
		return nil, err
	}
	ctx.record(statement.ChangeCreateTable, tableName, nil)

	return &Result{
		Message: fmt.Sprintf("Table '%s' created", tableName),
	}, nil
}
