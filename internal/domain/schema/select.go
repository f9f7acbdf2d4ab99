package schema

import (
	"github.com/leengari/simple-rdbms/internal/domain/data"
)

// SelectAll returns copies of all rows in insertion order
func (t *Table) SelectAll() []data.Row {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return rows
}

// Select returns copies of the rows whose value equals where[col] for every key.
// Filter values are coerced to the column type; a filter on an undeclared column
// or with a value that cannot be coerced matches nothing.
func (t *Table) Select(where map[string]any) []data.Row {
	if len(where) == 0 {
		return t.SelectAll()
	}

	filter, ok := t.coerceFilter(where)
	if !ok {
		return []data.Row{}
	}

	result := []data.Row{}
	for _, pos := range t.candidates(filter) {
		row := t.Rows[pos]
		if matches(row, filter) {
			result = append(result, row.Copy())
		}
	}
	return result
}

// coerceFilter converts filter values to their column types.
// It reports false when no row can possibly match.
func (t *Table) coerceFilter(where map[string]any) (data.Row, bool) {
	filter := make(data.Row, len(where))
	for name, raw := range where {
		col, ok := t.Schema.Column(name)
		if !ok {
			return nil, false
		}
		val, err := CoerceValue(t.Name, col, raw)
		if err != nil {
			return nil, false
		}
		filter[name] = val
	}
	return filter, true
}

// candidates returns the row positions worth checking against filter, in row order.
// An index on any filtered column narrows the scan; otherwise every row is a candidate.
func (t *Table) candidates(filter data.Row) []int {
	for col, val := range filter {
		if idx, ok := t.Indexes[col]; ok {
			return idx.Lookup(val)
		}
	}

	all := make([]int, len(t.Rows))
	for i := range t.Rows {
		all[i] = i
	}
	return all
}

func matches(row, filter data.Row) bool {
	for col, want := range filter {
		got, ok := row[col]
		if !ok || got != want {
			return false
		}
	}
	return true
}
