package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sapperhq/sapper/internal/domain"
	"github.com/sapperhq/sapper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInferenceFixture(t *testing.T, height, width int) (*InferenceService, uuid.UUID) {
	t.Helper()
	sessions := NewSessionService(store.NewSessionStore(), zap.NewNop(), 64, 16)
	sess, err := sessions.Create(context.Background(), "test", height, width)
	require.NoError(t, err)
	return NewInferenceService(sessions, zap.NewNop()), sess.ID
}

func TestObserveResolvesTrivialBoard(t *testing.T) {
	svc, id := newInferenceFixture(t, 3, 3)

	snap, err := svc.Observe(context.Background(), id, domain.Cell{Row: 1, Col: 1}, 0)
	require.NoError(t, err)
	assert.Len(t, snap.Safes, 9)
	assert.Empty(t, snap.Mines)
	assert.Zero(t, snap.Sentences)
	assert.Equal(t, 1, snap.Moves)
}

func TestObserveUnknownSession(t *testing.T) {
	svc, _ := newInferenceFixture(t, 3, 3)
	_, err := svc.Observe(context.Background(), uuid.New(), domain.Cell{}, 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestObserveContractViolationPassesThrough(t *testing.T) {
	svc, id := newInferenceFixture(t, 3, 3)

	_, err := svc.Observe(context.Background(), id, domain.Cell{Row: 9, Col: 9}, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = svc.Observe(context.Background(), id, domain.Cell{Row: 0, Col: 0}, 7)
	assert.ErrorIs(t, err, domain.ErrCountRange)
}

func TestFlagMineThenSafeIsInconsistent(t *testing.T) {
	svc, id := newInferenceFixture(t, 3, 3)

	_, err := svc.FlagMine(context.Background(), id, domain.Cell{Row: 2, Col: 2})
	require.NoError(t, err)

	_, err = svc.FlagSafe(context.Background(), id, domain.Cell{Row: 2, Col: 2})
	assert.ErrorIs(t, err, ErrInconsistent)
	assert.ErrorIs(t, err, domain.ErrContradiction)
}

func TestSafeMoveAfterDeduction(t *testing.T) {
	svc, id := newInferenceFixture(t, 3, 3)

	_, err := svc.Observe(context.Background(), id, domain.Cell{Row: 1, Col: 1}, 0)
	require.NoError(t, err)

	move, err := svc.SafeMove(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, move)
	assert.True(t, move.Proven)
	assert.Equal(t, domain.Cell{Row: 0, Col: 0}, move.Cell)
}

func TestSafeMoveNoneIsNotAnError(t *testing.T) {
	svc, id := newInferenceFixture(t, 3, 3)

	move, err := svc.SafeMove(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, move)
}

func TestRandomMoveExhaustedBoard(t *testing.T) {
	svc, id := newInferenceFixture(t, 1, 2)

	// Revealing (0,0) with count 1 proves (0,1) is the mine; nothing left.
	_, err := svc.Observe(context.Background(), id, domain.Cell{Row: 0, Col: 0}, 1)
	require.NoError(t, err)

	move, err := svc.RandomMove(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, move)
}

func TestKnowledgeSnapshot(t *testing.T) {
	svc, id := newInferenceFixture(t, 3, 3)

	_, err := svc.Observe(context.Background(), id, domain.Cell{Row: 0, Col: 0}, 1)
	require.NoError(t, err)

	snap, err := svc.Knowledge(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Sentences)
	assert.Equal(t, []domain.Cell{{Row: 0, Col: 0}}, snap.Safes)
}
