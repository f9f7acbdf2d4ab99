package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/schema"
)

// Join performs a nested-loop INNER JOIN of leftTable and rightTable on column.
//
// The right-hand value is rightRow[column] when column is declared on the right
// table; otherwise the right table's primary key is used, which allows joining a
// foreign key against a differently named primary key. The choice is made once
// per join from the schema.
//
// Each result holds the left row's columns unprefixed and every right column
// renamed to "<right table>_<column>". Results follow left row order, then right
// row order. No index is consulted.
func Join(leftTable, rightTable *schema.Table, column string) ([]data.Row, error) {
	if leftTable == nil {
		return nil, fmt.Errorf("left table is nil")
	}
	if rightTable == nil {
		return nil, fmt.Errorf("right table is nil")
	}

	rightColumn := RightJoinColumn(rightTable.Schema, column)

	slog.Debug("Starting INNER JOIN",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.String("left_column", column),
		slog.String("right_column", rightColumn),
		slog.Int("left_rows", len(leftTable.Rows)),
		slog.Int("right_rows", len(rightTable.Rows)),
	)

	results := make([]data.Row, 0)
	for _, leftRow := range leftTable.Rows {
		leftValue, exists := leftRow[column]
		if !exists {
			continue // absent values never match
		}

		for _, rightRow := range rightTable.Rows {
			rightValue, exists := rightRow[rightColumn]
			if !exists || rightValue != leftValue {
				continue
			}
			results = append(results, combineRows(leftRow, rightRow, rightTable.Name))
		}
	}

	slog.Debug("INNER JOIN completed",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.Int("result_rows", len(results)),
	)

	return results, nil
}

// RightJoinColumn returns the right-hand column compared by Join
func RightJoinColumn(right *schema.TableSchema, column string) string {
	if right.HasColumn(column) {
		return column
	}
	return right.PrimaryKey
}

// JoinColumns lists the result columns of a join in display order
func JoinColumns(left, right *schema.TableSchema) []string {
	cols := left.ColumnNames()
	for _, name := range right.ColumnNames() {
		cols = append(cols, prefixed(right.TableName, name))
	}
	return cols
}

// combineRows merges two rows, prefixing right-hand columns with the table name
func combineRows(leftRow, rightRow data.Row, rightTableName string) data.Row {
	joined := leftRow.Copy()
	for colName, value := range rightRow {
		joined[prefixed(rightTableName, colName)] = value
	}
	return joined
}

func prefixed(table, column string) string {
	return table + "_" + column
}
