package engine

import "time"

// EventType represents different lifecycle phases in statement execution
type EventType string

const (
	EventLexStart   EventType = "lex_start"
	EventLexEnd     EventType = "lex_end"
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
	EventExecError  EventType = "exec_error"
)

// Event represents a lifecycle event in statement execution
type Event struct {
	Type        EventType   // Type of event
	StatementID string      // Statement ID for tracing
	Timestamp   time.Time   // When the event occurred
	Data        interface{} // Phase-specific data (e.g., SQL, token count, statement type, result)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
