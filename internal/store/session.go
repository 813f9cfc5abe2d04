package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sapperhq/sapper/internal/domain"
)

// SessionStore keeps sessions in memory behind a mutex. The engine carries
// no durable state; a session lives exactly as long as the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}
	if _, ok := s.sessions[sess.ID]; ok {
		return ErrConflict
	}
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) List(ctx context.Context) ([]*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out, nil
}

func (s *SessionStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
