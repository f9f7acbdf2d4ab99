package data

// Row represents a single table row
// Key = column name, Value = cell value
type Row map[string]Value

// Copy returns an independent copy of the row.
// Values are immutable, so a shallow map copy is enough.
func (r Row) Copy() Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

// Get returns the value stored for column
func (r Row) Get(column string) (Value, bool) {
	v, ok := r[column]
	return v, ok
}

// Equal reports whether both rows hold the same columns with equal values
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
