package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sapperhq/sapper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	s := NewSessionStore()
	sess := &domain.Session{Name: "test", Height: 8, Width: 8, Agent: domain.NewAgent(8, 8)}

	err := s.Create(context.Background(), sess)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())

	got, err := s.GetByID(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestSessionStoreGetMissing(t *testing.T) {
	s := NewSessionStore()
	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStoreCreateConflict(t *testing.T) {
	s := NewSessionStore()
	id := uuid.New()
	require.NoError(t, s.Create(context.Background(), &domain.Session{ID: id}))

	err := s.Create(context.Background(), &domain.Session{ID: id})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSessionStoreDelete(t *testing.T) {
	s := NewSessionStore()
	sess := &domain.Session{}
	require.NoError(t, s.Create(context.Background(), sess))

	require.NoError(t, s.Delete(context.Background(), sess.ID))
	_, err := s.GetByID(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), sess.ID), ErrNotFound)
}

func TestSessionStoreListAndCount(t *testing.T) {
	s := NewSessionStore()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Create(context.Background(), &domain.Session{}))
	}

	sessions, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, 3)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
