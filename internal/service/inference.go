package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sapperhq/sapper/internal/domain"
	"go.uber.org/zap"
)

// ErrInconsistent wraps a domain contradiction: the supplied observations
// cannot all be true of one board. The session's knowledge is suspect from
// that point on; the caller decides whether to abandon it.
var ErrInconsistent = errors.New("observations are inconsistent")

// Snapshot summarizes what the agent has proven so far.
type Snapshot struct {
	Moves     int           `json:"moves"`
	Safes     []domain.Cell `json:"safes"`
	Mines     []domain.Cell `json:"mines"`
	Sentences int           `json:"sentences"`
}

// Move is a cell the engine recommends opening or flagging.
type Move struct {
	Cell domain.Cell `json:"cell"`
	// Proven is true for deduced moves and false for random fallbacks.
	Proven bool `json:"proven"`
}

// InferenceService runs observations and move queries against a session's
// agent. An agent runs inference synchronously and is not safe for
// concurrent mutation, so the service serializes all agent access.
type InferenceService struct {
	sessions *SessionService
	logger   *zap.Logger

	mu sync.RWMutex
}

func NewInferenceService(sessions *SessionService, logger *zap.Logger) *InferenceService {
	return &InferenceService{sessions: sessions, logger: logger}
}

// Observe ingests one revealed cell and its neighbor-mine count, runs
// inference to a fixpoint, and returns the resulting snapshot.
func (s *InferenceService) Observe(ctx context.Context, id uuid.UUID, cell domain.Cell, count int) (*Snapshot, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := sess.Agent.AddKnowledge(cell, count); err != nil {
		if errors.Is(err, domain.ErrContradiction) {
			s.logger.Error("knowledge base contradiction",
				zap.String("session_id", id.String()),
				zap.Stringer("cell", cell),
				zap.Int("count", count),
				zap.Error(err))
			return nil, errors.Join(ErrInconsistent, err)
		}
		return nil, err
	}
	sess.UpdatedAt = time.Now()

	snap := s.snapshotLocked(sess.Agent)
	s.logger.Debug("observation ingested",
		zap.String("session_id", id.String()),
		zap.Stringer("cell", cell),
		zap.Int("count", count),
		zap.Int("safes", len(snap.Safes)),
		zap.Int("mines", len(snap.Mines)),
		zap.Int("sentences", snap.Sentences))

	return snap, nil
}

// FlagMine injects an externally known mine fact.
func (s *InferenceService) FlagMine(ctx context.Context, id uuid.UUID, cell domain.Cell) (*Snapshot, error) {
	return s.flag(ctx, id, cell, true)
}

// FlagSafe injects an externally known safe fact.
func (s *InferenceService) FlagSafe(ctx context.Context, id uuid.UUID, cell domain.Cell) (*Snapshot, error) {
	return s.flag(ctx, id, cell, false)
}

func (s *InferenceService) flag(ctx context.Context, id uuid.UUID, cell domain.Cell, mine bool) (*Snapshot, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mine {
		err = sess.Agent.MarkMine(cell)
	} else {
		err = sess.Agent.MarkSafe(cell)
	}
	if err != nil {
		if errors.Is(err, domain.ErrContradiction) {
			s.logger.Error("flag contradicts proven knowledge",
				zap.String("session_id", id.String()),
				zap.Stringer("cell", cell),
				zap.Bool("mine", mine),
				zap.Error(err))
			return nil, errors.Join(ErrInconsistent, err)
		}
		return nil, err
	}
	sess.UpdatedAt = time.Now()

	return s.snapshotLocked(sess.Agent), nil
}

// SafeMove returns a proven-safe unopened cell, or nil when the agent
// cannot prove any — the caller should fall back to RandomMove or stop.
func (s *InferenceService) SafeMove(ctx context.Context, id uuid.UUID) (*Move, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, ok := sess.Agent.SafeMove()
	if !ok {
		return nil, nil
	}
	return &Move{Cell: cell, Proven: true}, nil
}

// RandomMove returns a uniformly random cell that is neither opened nor a
// proven mine, or nil when the board is exhausted.
func (s *InferenceService) RandomMove(ctx context.Context, id uuid.UUID) (*Move, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, ok := sess.Agent.RandomMove()
	if !ok {
		return nil, nil
	}
	return &Move{Cell: cell, Proven: false}, nil
}

// Knowledge returns the current snapshot without mutating anything.
func (s *InferenceService) Knowledge(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked(sess.Agent), nil
}

func (s *InferenceService) snapshotLocked(a *domain.Agent) *Snapshot {
	return &Snapshot{
		Moves:     a.MovesMade().Size(),
		Safes:     a.Safes().ToSlice(),
		Mines:     a.Mines().ToSlice(),
		Sentences: len(a.Sentences()),
	}
}
