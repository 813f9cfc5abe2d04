package domain

import (
	"context"

	"github.com/google/uuid"
)

type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Session, error)
	Count(ctx context.Context) (int, error)
}
