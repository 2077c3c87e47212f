// Package transport models the per-session lifecycle of the streamable
// HTTP transport. The MCP wire protocol itself is handled by the mcp-go
// server; this package only tracks protocol state (open/closed) per session
// so the surrounding HTTP layer and the analytics log agree on when a
// session existed.
package transport

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionClosed is returned by Send after Close.
var ErrSessionClosed = errors.New("transport session is closed")

// Message is an opaque MCP message payload passing through a session.
type Message []byte

// Session is a two-state machine: open until Close, closed forever after.
// It holds no queue -- a streamable HTTP exchange carries at most one
// in-flight request/response pair, so byte delivery stays with the owning
// HTTP response handler.
type Session struct {
	id string

	mu        sync.Mutex
	closed    bool
	onMessage func(Message)
	onClose   []func()
}

// NewSession creates an open session with the given identifier. An empty
// identifier gets a fresh UUID.
func NewSession(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	return &Session{id: id}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// OnMessage registers the inbound message callback.
func (s *Session) OnMessage(fn func(Message)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMessage = fn
}

// OnClose registers a close callback. Callbacks fire in registration order,
// each at most once. Registering after Close is a no-op.
func (s *Session) OnClose(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onClose = append(s.onClose, fn)
}

// Send accepts an outbound message while the session is open. The session
// does not perform socket I/O; acceptance only asserts the transport is
// still usable.
func (s *Session) Send(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

// HandleMessage delivers an inbound message to the registered callback.
// Messages arriving after Close are silently dropped.
func (s *Session) HandleMessage(msg Message) {
	s.mu.Lock()
	fn := s.onMessage
	closed := s.closed
	s.mu.Unlock()
	if closed || fn == nil {
		return
	}
	fn(msg)
}

// Close transitions the session to closed and fires the close callbacks.
// Subsequent calls are no-ops and never re-fire the callbacks.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	callbacks := s.onClose
	s.onClose = nil
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Manager tracks live sessions by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   *slog.Logger
}

// NewManager creates an empty session manager.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger.With("component", "transport"),
	}
}

// Open creates and tracks a new session. The session removes itself from
// the manager when closed.
func (m *Manager) Open(id string) *Session {
	s := NewSession(id)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	s.OnClose(func() {
		m.mu.Lock()
		delete(m.sessions, s.ID())
		m.mu.Unlock()
		m.logger.Debug("Session closed", slog.String("session_id", s.ID()))
	})
	m.logger.Debug("Session opened", slog.String("session_id", s.ID()))
	return s
}

// Get returns the tracked session for id, if any.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll closes every live session, used during server shutdown.
func (m *Manager) CloseAll() {
	m.mu.RLock()
	open := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		open = append(open, s)
	}
	m.mu.RUnlock()
	for _, s := range open {
		s.Close()
	}
}
