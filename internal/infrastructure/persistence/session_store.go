package persistence

import (
	"sync"

	"rsa_demo_service/internal/domain/sessions"
	"rsa_demo_service/internal/pkg/logger"
)

// inMemorySessionStore keeps live sessions, including their key material, in
// process memory only. Nothing in here survives a restart.
type inMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessions.Session
	logger   logger.Logger
}

// NewInMemorySessionStore creates a new in-memory SessionStore implementation
func NewInMemorySessionStore(logger logger.Logger) (sessions.SessionStore, error) {
	return &inMemorySessionStore{
		sessions: make(map[string]*sessions.Session),
		logger:   logger,
	}, nil
}

func (s *inMemorySessionStore) Put(session *sessions.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get returns a copy so callers never share mutable state with the store.
func (s *inMemorySessionStore) Get(sessionID string) (*sessions.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, sessions.ErrSessionNotFound
	}
	snapshot := *session
	return &snapshot, nil
}

func (s *inMemorySessionStore) Update(sessionID string, apply func(*sessions.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return sessions.ErrSessionNotFound
	}
	apply(session)
	return nil
}

func (s *inMemorySessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return sessions.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	s.logger.Info("Discarded session ", sessionID, " and its key material")
	return nil
}
