package statement

import (
	"time"

	"github.com/google/uuid"
)

// ChangeType represents the type of modification
type ChangeType string

const (
	ChangeCreateTable ChangeType = "CREATE_TABLE"
	ChangeInsert      ChangeType = "INSERT"
	ChangeUpdate      ChangeType = "UPDATE"
	ChangeDelete      ChangeType = "DELETE"
)

// Change records a single modification made by a statement
type Change struct {
	Type  ChangeType
	Table string
	Key   any // primary key of the affected row; nil for table-level changes
}

// Statement is the tracing context of one executed command. There is no
// rollback: changes are recorded after they have been applied and saved.
type Statement struct {
	ID        string    // UUID used to correlate lifecycle events
	Text      string    // source text as submitted
	Active    bool      // false once Close has been called
	StartTime time.Time // when execution began
	Changes   []Change  // modifications applied so far
}

// New creates a statement context with a fresh ID
func New(text string) *Statement {
	return &Statement{
		ID:        uuid.NewString(),
		Text:      text,
		Active:    true,
		StartTime: time.Now(),
		Changes:   make([]Change, 0),
	}
}

// Record appends a change
func (s *Statement) Record(changeType ChangeType, table string, key any) {
	s.Changes = append(s.Changes, Change{Type: changeType, Table: table, Key: key})
}

// Close marks the statement as finished
func (s *Statement) Close() {
	s.Active = false
}
