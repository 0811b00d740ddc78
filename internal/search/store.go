package search

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 15 * time.Minute

type sessionEntry struct {
	searcher  *Searcher
	expiresAt time.Time
}

// SessionStore keeps live search sessions keyed by id, expiring idle ones.
// Same single-use TTL map shape as the password-reset token store.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
	ttl  time.Duration
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]sessionEntry),
		ttl:  sessionTTL,
	}
}

// Create registers a searcher and returns its session id.
func (s *SessionStore) Create(searcher *Searcher) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = sessionEntry{
		searcher:  searcher,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get returns the session's searcher and slides its expiry forward.
func (s *SessionStore) Get(id string) (*Searcher, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil, false
	}

	e.expiresAt = time.Now().Add(s.ttl)
	s.data[id] = e
	return e.searcher, true
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[id]; ok {
		e.searcher.Dismiss()
		delete(s.data, id)
	}
}
