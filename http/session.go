package http

import (
	"sync"
	"time"

	"github.com/fwojciec/roster"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 12 * time.Hour

// SessionStore keeps one conversation session per browser in memory.
// Interactions on the same session are serialized.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *roster.Session
	lastSeen time.Time
}

// NewSessionStore creates a SessionStore that evicts sessions idle for
// longer than ttl. A non-positive ttl disables eviction.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		Now:      time.Now,
	}
}

// Do runs fn with the session identified by id while holding that
// session's lock. An unknown or expired id starts a new session. It
// returns the ID of the session fn ran against.
func (s *SessionStore) Do(id string, fn func(*roster.Session)) string {
	e := s.acquire(id)
	defer e.mu.Unlock()
	fn(e.session)
	return e.session.ID
}

// View runs fn with the existing session identified by id while holding
// that session's lock. It never starts a session and reports whether fn ran.
func (s *SessionStore) View(id string, fn func(*roster.Session)) bool {
	s.mu.Lock()
	now := s.Now()
	s.evictLocked(now)
	e, ok := s.sessions[id]
	if ok {
		e.lastSeen = now
	}
	s.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
	return true
}

func (s *SessionStore) acquire(id string) *sessionEntry {
	s.mu.Lock()
	now := s.Now()
	s.evictLocked(now)
	e, ok := s.sessions[id]
	if !ok {
		e = &sessionEntry{session: roster.NewSession(uuid.NewString())}
		s.sessions[e.session.ID] = e
	}
	e.lastSeen = now
	s.mu.Unlock()

	e.mu.Lock()
	return e
}

// Evict removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *SessionStore) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(s.Now())
}

func (s *SessionStore) evictLocked(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	n := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
