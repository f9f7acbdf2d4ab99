package storage

// DatabaseFile is the on-disk document: every table keyed by name.
// Indexes are derived state and are never written.
type DatabaseFile struct {
	Tables map[string]TableFile `json:"tables"`
}

// TableFile is one table inside DatabaseFile
type TableFile struct {
	Columns    [][2]string      `json:"columns"` // [name, type] pairs in declaration order
	Rows       []map[string]any `json:"rows"`
	PrimaryKey string           `json:"primary_key"`
	Uniques    []string         `json:"uniques"`
}
