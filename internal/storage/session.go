package storage

import (
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// SessionStorage keeps finished review sessions in memory for the lifetime of the process.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entities.ReviewSession
	order    []uuid.UUID
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[uuid.UUID]*entities.ReviewSession),
	}
}

// Store saves a session. Storing the same session twice keeps its original position.
func (s *SessionStorage) Store(session *entities.ReviewSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		s.order = append(s.order, session.ID)
	}
	s.sessions[session.ID] = session
}

// Get retrieves a session by ID.
func (s *SessionStorage) Get(id uuid.UUID) (*entities.ReviewSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok
}

// Last returns the most recently stored session.
func (s *SessionStorage) Last() (*entities.ReviewSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, false
	}
	return s.sessions[s.order[len(s.order)-1]], true
}

// All returns the stored sessions, oldest first.
func (s *SessionStorage) All() []*entities.ReviewSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.ReviewSession, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.sessions[id])
	}
	return out
}

// Delete removes a session by ID.
func (s *SessionStorage) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
