package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/leengari/simple-rdbms/internal/domain/schema"
)

// SaveDatabase writes every table to path as one JSON document, replacing the
// previous file. The document is written to a temp file and renamed over the
// old one, but the two steps are not fsynced; a crash can still lose the
// latest save.
func SaveDatabase(path string, tables map[string]*schema.Table) error {
	doc := DatabaseFile{Tables: make(map[string]TableFile, len(tables))}
	rowCount := 0

	for name, t := range tables {
		doc.Tables[name] = encodeTable(t)
		rowCount += len(t.Rows)
	}

	// encoding/json sorts map keys, so saves are deterministic
	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal database: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write temp database file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp → %s: %w", filepath.Base(path), err)
	}

	slog.Debug("Database saved",
		slog.String("path", path),
		slog.Int("table_count", len(tables)),
		slog.Int("row_count", rowCount),
		slog.String("size", humanize.Bytes(uint64(len(bytes)))),
	)

	return nil
}

func encodeTable(t *schema.Table) TableFile {
	tf := TableFile{
		Columns:    make([][2]string, len(t.Schema.Columns)),
		Rows:       make([]map[string]any, len(t.Rows)),
		PrimaryKey: t.Schema.PrimaryKey,
		Uniques:    make([]string, len(t.Schema.Uniques)),
	}

	for i, col := range t.Schema.Columns {
		tf.Columns[i] = [2]string{col.Name, string(col.Type)}
	}
	copy(tf.Uniques, t.Schema.Uniques)

	// data.Value marshals itself: ints as numbers, text as strings, dates as YYYY-MM-DD
	for i, row := range t.Rows {
		encoded := make(map[string]any, len(row))
		for col, val := range row {
			encoded[col] = val
		}
		tf.Rows[i] = encoded
	}

	return tf
}
