package session

import (
	"sync"
	"time"

	"github.com/MGhunch/dot-hub-api/internal/model"
)

const (
	// DefaultTimeout expires sessions idle longer than 30 minutes.
	DefaultTimeout = 30 * time.Minute

	// DefaultMaxTurns caps stored history at the last 20 turns.
	DefaultMaxTurns = 20
)

// MemoryStore is a mutex-guarded in-process Store.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	timeout  time.Duration
	maxTurns int
	now      func() time.Time
}

type entry struct {
	turns      []model.Turn
	lastActive time.Time
}

// Option customizes a MemoryStore.
type Option func(*MemoryStore)

// WithTimeout overrides the idle expiry window.
func WithTimeout(d time.Duration) Option {
	return func(s *MemoryStore) { s.timeout = d }
}

// WithMaxTurns overrides the retained-turn cap.
func WithMaxTurns(n int) Option {
	return func(s *MemoryStore) { s.maxTurns = n }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*entry),
		timeout:  DefaultTimeout,
		maxTurns: DefaultMaxTurns,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the session's turns oldest-first, creating and touching
// the session. Expired sessions are swept first.
func (s *MemoryStore) Get(sessionID string) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.touch(sessionID)

	turns := make([]model.Turn, len(e.turns))
	copy(turns, e.turns)
	return turns
}

// Append adds one turn and truncates to the most recent maxTurns.
func (s *MemoryStore) Append(sessionID string, role model.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.touch(sessionID)
	e.turns = append(e.turns, model.Turn{Role: role, Content: content})
	if len(e.turns) > s.maxTurns {
		e.turns = e.turns[len(e.turns)-s.maxTurns:]
	}
}

// Clear deletes the session unconditionally.
func (s *MemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// touch sweeps expired sessions, then returns the live entry for the
// id, creating it if needed. Callers must hold the mutex.
func (s *MemoryStore) touch(sessionID string) *entry {
	now := s.now()
	for id, e := range s.sessions {
		if now.Sub(e.lastActive) > s.timeout {
			delete(s.sessions, id)
		}
	}

	e, ok := s.sessions[sessionID]
	if !ok {
		e = &entry{}
		s.sessions[sessionID] = e
	}
	e.lastActive = now
	return e
}
