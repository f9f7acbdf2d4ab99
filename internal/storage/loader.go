package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/leengari/simple-rdbms/internal/domain/data"
	"github.com/leengari/simple-rdbms/internal/domain/errors"
	"github.com/leengari/simple-rdbms/internal/domain/schema"
)

// LoadDatabase reads the document at path and rebuilds every table with its
// primary key and unique indexes.
// A missing file yields an empty database. A file that cannot be decoded, or
// whose contents break the schema rules, yields a CorruptionError.
func LoadDatabase(path string) (map[string]*schema.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No database file found, starting empty", slog.String("path", path))
			return make(map[string]*schema.Table), nil
		}
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}

	var doc DatabaseFile
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, &errors.CorruptionError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &errors.CorruptionError{Path: path, Reason: "trailing data after document"}
	}

	tables := make(map[string]*schema.Table, len(doc.Tables))
	rowCount := 0
	for name, tf := range doc.Tables {
		table, err := decodeTable(name, tf)
		if err != nil {
			return nil, &errors.CorruptionError{Path: path, Reason: fmt.Sprintf("table %s", name), Err: err}
		}
		tables[name] = table
		rowCount += len(table.Rows)
	}

	slog.Info("Database loaded successfully",
		slog.String("path", path),
		slog.Int("table_count", len(tables)),
		slog.Int("row_count", rowCount),
		slog.String("size", humanize.Bytes(uint64(len(raw)))),
	)

	return tables, nil
}

func decodeTable(name string, tf TableFile) (*schema.Table, error) {
	columns := make([]schema.Column, len(tf.Columns))
	for i, pair := range tf.Columns {
		columns[i] = schema.Column{Name: pair[0], Type: schema.ColumnType(pair[1])}
	}

	s, err := schema.NewTableSchema(name, columns, tf.PrimaryKey, tf.Uniques)
	if err != nil {
		return nil, err
	}

	table := schema.NewTable(s)
	for i, raw := range tf.Rows {
		row, err := decodeRow(s, raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		table.Rows = append(table.Rows, row)
	}

	if err := table.CheckConstraints(); err != nil {
		return nil, err
	}

	// Indexes are never stored; rebuild them from the loaded rows
	table.RebuildIndexes()

	slog.Debug("table loaded",
		slog.String("table", table.Name),
		slog.Int("rows", len(table.Rows)),
	)

	return table, nil
}

// decodeRow converts the JSON form of a row back into typed values.
// Ints arrive as json.Number and dates as YYYY-MM-DD strings.
func decodeRow(s *schema.TableSchema, raw map[string]any) (data.Row, error) {
	row := make(data.Row, len(raw))
	for name, v := range raw {
		col, ok := s.Column(name)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}

		switch col.Type {
		case schema.ColumnTypeInt:
			num, ok := v.(json.Number)
			if !ok {
				return nil, fmt.Errorf("column %s: expected number, got %T", name, v)
			}
			n, err := num.Int64()
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", name, err)
			}
			row[name] = data.Int(n)

		case schema.ColumnTypeText:
			str, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("column %s: expected string, got %T", name, v)
			}
			row[name] = data.Text(str)

		case schema.ColumnTypeDate:
			str, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("column %s: expected date string, got %T", name, v)
			}
			d, err := data.ParseDate(str)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", name, err)
			}
			row[name] = d
		}
	}
	return row, nil
}
