package engine

import (
	"fmt"
	"time"

	"github.com/leengari/simple-rdbms/internal/database"
	"github.com/leengari/simple-rdbms/internal/domain/statement"
	"github.com/leengari/simple-rdbms/internal/executor"
	"github.com/leengari/simple-rdbms/internal/parser"
	"github.com/leengari/simple-rdbms/internal/parser/lexer"
)

// Engine is the main entry point for the database system
type Engine struct {
	db        *database.Database
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance
func New(db *database.Database) *Engine {
	return &Engine{
		db:        db,
		observers: make([]Observer, 0),
	}
}

// Database returns the database the engine executes against
func (e *Engine) Database() *database.Database {
	return e.db
}

// Execute processes a command string and returns the result.
// Errors keep their kind: callers can match them with errors.As.
func (e *Engine) Execute(sql string) (*executor.Result, error) {
	// 0. Start statement context
	st := statement.New(sql)
	defer st.Close()

	// 1. Tokenize
	e.notify(Event{Type: EventLexStart, StatementID: st.ID, Data: sql})
	tokens, err := lexer.Tokenize(sql)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventLexEnd, StatementID: st.ID, Data: len(tokens)})

	// 2. Parse
	e.notify(Event{Type: EventParseStart, StatementID: st.ID})
	stmt, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventParseEnd, StatementID: st.ID, Data: fmt.Sprintf("%T", stmt)})

	// 3. Ensure Database is Open
	if e.db == nil {
		return nil, fmt.Errorf("no database open")
	}

	// 4. Execute
	e.notify(Event{Type: EventExecStart, StatementID: st.ID, Data: stmt.String()})
	result, err := executor.Execute(stmt, &executor.ExecutionContext{Database: e.db, Statement: st})
	if err != nil {
		e.notify(Event{Type: EventExecError, StatementID: st.ID, Data: err.Error()})
		return nil, fmt.Errorf("execution error: %w", err)
	}
	e.notify(Event{Type: EventExecEnd, StatementID: st.ID, Data: map[string]interface{}{
		"rows_affected": result.RowsAffected,
		"rows_returned": len(result.Rows),
		"changes":       len(st.Changes),
		"elapsed":       time.Since(st.StartTime).String(),
	}})

	return result, nil
}

// ListTables returns the sorted table names of the open database
func (e *Engine) ListTables() ([]string, error) {
	if e.db == nil {
		return nil, fmt.Errorf("no database open")
	}
	return e.db.ListTables(), nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
