package schema

import (
	"fmt"
	"strings"
)

type ColumnType string

const (
	ColumnTypeInt  ColumnType = "int"
	ColumnTypeText ColumnType = "str"
	ColumnTypeDate ColumnType = "date"
)

// columnTypeAliases maps accepted spellings to the canonical type name
var columnTypeAliases = map[string]ColumnType{
	"int":     ColumnTypeInt,
	"integer": ColumnTypeInt,
	"str":     ColumnTypeText,
	"text":    ColumnTypeText,
	"string":  ColumnTypeText,
	"date":    ColumnTypeDate,
}

// ParseColumnType resolves a case-insensitive type name
func ParseColumnType(name string) (ColumnType, error) {
	if t, ok := columnTypeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown column type %q", name)
}

type Column struct {
	Name string
	Type ColumnType
}
