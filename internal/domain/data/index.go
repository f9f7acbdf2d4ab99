package data

import "sort"

// Index is an in-memory index on a single column
type Index struct {
	Column string
	Data   map[Value][]int // value → row positions
	Unique bool
}

// NewIndex creates an empty index for column
func NewIndex(column string, unique bool) *Index {
	return &Index{
		Column: column,
		Data:   make(map[Value][]int),
		Unique: unique,
	}
}

// Add appends a row position to the bucket for value
func (idx *Index) Add(value Value, pos int) {
	idx.Data[value] = append(idx.Data[value], pos)
}

// Reset drops every bucket
func (idx *Index) Reset() {
	idx.Data = make(map[Value][]int)
}

// Lookup returns a copy of the row positions holding value
func (idx *Index) Lookup(value Value) []int {
	positions, ok := idx.Data[value]
	if !ok {
		return nil
	}
	out := make([]int, len(positions))
	copy(out, positions)
	return out
}

// Values returns the distinct indexed values in sorted order
func (idx *Index) Values() []Value {
	values := make([]Value, 0, len(idx.Data))
	for v := range idx.Data {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].Compare(values[j]) < 0
	})
	return values
}
