// Package session exposes calculator engines over HTTP. Each session owns
// one engine; events are delivered one at a time per session, preserving
// the engine's single-threaded semantics under concurrent requests.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deskcalc/internal/calc"
	"deskcalc/internal/history"
	"deskcalc/internal/observability"
)

// Session is one live calculator: an engine plus the keystroke tape used to
// label recorded evaluations.
type Session struct {
	ID      string
	Created time.Time

	mu     sync.Mutex
	engine *calc.Engine
	tape   calc.Tape
}

// Display returns the session's current display text.
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Text()
}

// Manager owns the session registry and the optional history store.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	history  *history.Store
}

// NewManager returns an empty registry. store may be nil, in which case
// evaluations are not persisted and history reads return empty lists.
func NewManager(store *history.Store) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		history:  store,
	}
}

// Create registers a new session with a fresh engine showing "0".
func (m *Manager) Create() *Session {
	s := &Session{
		ID:      uuid.New().String(),
		Created: time.Now().UTC(),
		engine:  calc.New(nil),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close removes a session, reporting whether it existed.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok
}

// Apply delivers one event to the session's engine. Completed evaluations
// are labelled with the keystroke tape and recorded to the history store.
// The returned display is the text after the event; evaluated reports
// whether this event completed an evaluation.
func (m *Manager) Apply(ctx context.Context, s *Session, ev Event) (display string, evaluated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := ev.apply(s.engine)

	// Tape only events the engine acted on; inert events (a second decimal
	// point, an operator press mid-error) must not pollute the expression.
	if changed {
		switch ev.Type {
		case EventDigit:
			s.tape.Digit(*ev.Digit)
		case EventPoint:
			s.tape.Point()
		case EventOperator:
			if op, ok := calc.ParseOperator(ev.Operator); ok {
				s.tape.Op(op)
			}
		case EventUnary:
			if f, ok := calc.ParseUnary(ev.Function); ok {
				s.tape.Unary(f)
			}
		}
	}

	switch ev.Type {
	case EventEquals:
		evaluated = true
		expression := s.tape.String()
		s.tape.Reset()
		if m.history != nil && expression != "" && !s.engine.Erred() {
			if err := m.history.Record(ctx, s.ID, expression, s.engine.Text()); err != nil {
				observability.Logger.Warn("recording evaluation failed",
					zap.String("session_id", s.ID),
					zap.Error(err),
				)
			}
		}
	case EventClear:
		s.tape.Reset()
	}

	return s.engine.Text(), evaluated
}

// Recent returns up to limit recorded evaluations for the session, newest
// first. With no history store configured the list is always empty.
func (m *Manager) Recent(ctx context.Context, sessionID string, limit int) ([]history.Entry, error) {
	if m.history == nil {
		return nil, nil
	}
	return m.history.Recent(ctx, sessionID, limit)
}

// apply delivers ev to the engine, reporting whether the display changed.
// Unrecognized event types, operator glyphs and function names fall through
// untouched: they are silently ignored, never an error.
func (ev Event) apply(e *calc.Engine) bool {
	before := e.Text()

	switch ev.Type {
	case EventDigit:
		if ev.Digit != nil {
			e.Digit(*ev.Digit)
		}
	case EventPoint:
		e.Point()
	case EventOperator:
		if op, ok := calc.ParseOperator(ev.Operator); ok {
			e.Op(op)
		}
	case EventUnary:
		if f, ok := calc.ParseUnary(ev.Function); ok {
			e.Unary(f)
		}
	case EventEquals:
		e.Equals()
	case EventClear:
		e.Clear()
	}

	return e.Text() != before
}
