package integration

import (
	"testing"

	"github.com/leengari/simple-rdbms/internal/engine"
)

// MockObserver records every event it receives
type MockObserver struct {
	Events []engine.Event
}

func (m *MockObserver) OnEvent(event engine.Event) {
	m.Events = append(m.Events, event)
}

// TestStatementLifecycleEvents verifies the events emitted for a session of statements
func TestStatementLifecycleEvents(t *testing.T) {
	eng, _ := setupTestEngine(t)
	observer := &MockObserver{}
	eng.AddObserver(observer)

	statements := []string{
		"SELECT * FROM users",
		"UPDATE users SET email = 'a@b.c' WHERE id = 1",
		"JOIN orders users ON user_id",
	}
	ids := make(map[string]bool)

	for _, sql := range statements {
		observer.Events = nil
		mustExec(t, eng, sql)

		expected := []engine.EventType{
			engine.EventLexStart,
			engine.EventLexEnd,
			engine.EventParseStart,
			engine.EventParseEnd,
			engine.EventExecStart,
			engine.EventExecEnd,
		}
		if len(observer.Events) != len(expected) {
			t.Fatalf("%s: expected %d events, got %d", sql, len(expected), len(observer.Events))
		}
		for i, want := range expected {
			if observer.Events[i].Type != want {
				t.Errorf("%s: event %d expected %s, got %s", sql, i, want, observer.Events[i].Type)
			}
		}

		id := observer.Events[0].StatementID
		if ids[id] {
			t.Errorf("statement ID %s reused", id)
		}
		ids[id] = true
	}

	// UPDATE reports the one change it applied
	observer.Events = nil
	mustExec(t, eng, "UPDATE users SET email = 'c@d.e' WHERE id = 1")
	end := observer.Events[len(observer.Events)-1]
	stats, ok := end.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected stats map, got %T", end.Data)
	}
	if stats["changes"] != 1 || stats["rows_affected"] != 1 {
		t.Errorf("unexpected stats %v", stats)
	}
}

func TestRemovedObserverStopsReceiving(t *testing.T) {
	eng, _ := setupTestEngine(t)
	observer := &MockObserver{}
	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	mustExec(t, eng, "SELECT * FROM users")

	if len(observer.Events) != 0 {
		t.Errorf("Expected no events after removal, got %d", len(observer.Events))
	}
}
