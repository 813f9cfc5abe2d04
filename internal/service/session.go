package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sapperhq/sapper/internal/domain"
	"github.com/sapperhq/sapper/internal/store"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionConflict = errors.New("session with this id already exists")
	ErrSessionLimit    = errors.New("session limit reached")
	ErrInvalidBoard    = errors.New("board dimensions are invalid")
)

// SessionService creates and tracks game sessions, one agent per session.
type SessionService struct {
	store  domain.SessionStore
	logger *zap.Logger

	MaxBoardDim int
	MaxSessions int
}

func NewSessionService(s domain.SessionStore, logger *zap.Logger, maxBoardDim, maxSessions int) *SessionService {
	return &SessionService{
		store:       s,
		logger:      logger,
		MaxBoardDim: maxBoardDim,
		MaxSessions: maxSessions,
	}
}

func (s *SessionService) Create(ctx context.Context, name string, height, width int) (*domain.Session, error) {
	if height < 1 || width < 1 || height > s.MaxBoardDim || width > s.MaxBoardDim {
		return nil, ErrInvalidBoard
	}

	n, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n >= s.MaxSessions {
		return nil, ErrSessionLimit
	}

	sess := &domain.Session{
		Name:   name,
		Height: height,
		Width:  width,
		Agent:  domain.NewAgent(height, width),
	}
	if err := s.store.Create(ctx, sess); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrSessionConflict
		}
		return nil, err
	}

	s.logger.Info("session created",
		zap.String("session_id", sess.ID.String()),
		zap.String("name", sess.Name),
		zap.Int("height", height),
		zap.Int("width", width))

	return sess, nil
}

func (s *SessionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sess, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	s.logger.Info("session deleted", zap.String("session_id", id.String()))
	return nil
}

func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.store.List(ctx)
}
