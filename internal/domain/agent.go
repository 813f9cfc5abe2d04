package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrOutOfBounds reports a cell outside the agent's board.
	ErrOutOfBounds = errors.New("cell is outside the board")
	// ErrCellRevealed reports an observation for a cell already revealed.
	ErrCellRevealed = errors.New("cell has already been revealed")
	// ErrCountRange reports a neighbor-mine count that cannot be true.
	ErrCountRange = errors.New("count is outside the valid range for the cell")
	// ErrContradiction reports a cell proven both safe and mine. It means
	// the observations were inconsistent; the agent never enters this state
	// on a truthful board.
	ErrContradiction = errors.New("cell proven both safe and mine")
)

// Agent is the knowledge base for one game. It accumulates proven facts
// (safe cells, mine cells, moves made) and a list of active sentences, and
// runs inference to a fixpoint after every observation.
//
// An Agent is not safe for concurrent use; callers own the serialization.
type Agent struct {
	height int
	width  int

	movesMade CellSet
	safes     CellSet
	mines     CellSet
	knowledge []*Sentence
}

func NewAgent(height, width int) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		movesMade: NewCellSet(),
		safes:     NewCellSet(),
		mines:     NewCellSet(),
	}
}

func (a *Agent) Height() int { return a.height }
func (a *Agent) Width() int  { return a.width }

// Safes returns a copy of the cells proven safe.
func (a *Agent) Safes() CellSet { return a.safes.Copy() }

// Mines returns a copy of the cells proven to be mines.
func (a *Agent) Mines() CellSet { return a.mines.Copy() }

// MovesMade returns a copy of the cells already chosen.
func (a *Agent) MovesMade() CellSet { return a.movesMade.Copy() }

// Sentences returns value copies of the active knowledge.
func (a *Agent) Sentences() []*Sentence {
	out := make([]*Sentence, 0, len(a.knowledge))
	for _, s := range a.knowledge {
		out = append(out, NewSentence(s.Cells, s.Count))
	}
	return out
}

// MarkMine records that a cell is a mine and propagates the fact to every
// sentence. Idempotent for cells already known.
func (a *Agent) MarkMine(c Cell) error {
	if a.safes.Contains(c) {
		return fmt.Errorf("%w: %v", ErrContradiction, c)
	}
	a.mines.Add(c)
	for _, s := range a.knowledge {
		s.MarkMine(c)
	}
	return nil
}

// MarkSafe records that a cell is safe and propagates the fact to every
// sentence. Idempotent for cells already known.
func (a *Agent) MarkSafe(c Cell) error {
	if a.mines.Contains(c) {
		return fmt.Errorf("%w: %v", ErrContradiction, c)
	}
	a.safes.Add(c)
	for _, s := range a.knowledge {
		s.MarkSafe(c)
	}
	return nil
}

// AddKnowledge ingests one observation from the board: cell was revealed
// and count of its in-bounds 8-neighbors are mines. It records the move,
// reduces the observation to a residual constraint over cells of
// undetermined status, resolves the trivial cases immediately, and then
// alternates fact propagation with subset resolution until nothing changes.
//
// Contract violations (out-of-bounds cell, re-revealed cell, impossible
// count) are rejected before any state is touched.
func (a *Agent) AddKnowledge(cell Cell, count int) error {
	if !a.inBounds(cell) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, cell)
	}
	if a.movesMade.Contains(cell) {
		return fmt.Errorf("%w: %v", ErrCellRevealed, cell)
	}
	neighbors := a.neighbors(cell)
	if count < 0 || count > neighbors.Size() {
		return fmt.Errorf("%w: %v has %d neighbors, got count %d", ErrCountRange, cell, neighbors.Size(), count)
	}

	a.movesMade.Add(cell)
	if err := a.MarkSafe(cell); err != nil {
		return err
	}

	// Reduce to the residual constraint: drop neighbors whose status is
	// already determined, discounting known mines from the count.
	residual := count
	for _, n := range neighbors.ToSlice() {
		switch {
		case a.mines.Contains(n):
			residual--
			neighbors.Del(n)
		case a.safes.Contains(n):
			neighbors.Del(n)
		}
	}
	if residual < 0 {
		return fmt.Errorf("%w: count %d for %v is below the mines already known around it", ErrCountRange, count, cell)
	}

	switch {
	case !neighbors.IsEmpty() && residual == neighbors.Size():
		for _, n := range neighbors.ToSlice() {
			if err := a.MarkMine(n); err != nil {
				return err
			}
		}
	case !neighbors.IsEmpty() && residual == 0:
		for _, n := range neighbors.ToSlice() {
			if err := a.MarkSafe(n); err != nil {
				return err
			}
		}
	case residual > 0:
		a.insert(NewSentence(neighbors, residual))
	}

	return a.infer()
}

// SafeMove returns the lowest (row, col) cell proven safe and not yet
// chosen. It never mutates state. ok is false when no such cell exists —
// the normal terminal condition, not an error.
func (a *Agent) SafeMove() (Cell, bool) {
	for _, c := range a.safes.ToSlice() {
		if !a.movesMade.Contains(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// RandomMove returns a uniformly random cell that has been neither chosen
// nor proven a mine. ok is false when no such cell remains.
func (a *Agent) RandomMove() (Cell, bool) {
	candidates := make([]Cell, 0, a.height*a.width)
	for r := 0; r < a.height; r++ {
		for col := 0; col < a.width; col++ {
			c := Cell{Row: r, Col: col}
			if !a.movesMade.Contains(c) && !a.mines.Contains(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

func (a *Agent) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < a.height && c.Col < a.width
}

// neighbors returns the up-to-8 in-bounds cells adjacent to c, excluding c.
func (a *Agent) neighbors(c Cell) CellSet {
	set := NewCellSet()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if a.inBounds(n) {
				set.Add(n)
			}
		}
	}
	return set
}

// insert appends a sentence unless its cell set is empty or a value-equal
// sentence is already present. Reports whether the sentence was added.
func (a *Agent) insert(s *Sentence) bool {
	if s.Cells.IsEmpty() {
		return false
	}
	for _, existing := range a.knowledge {
		if existing.Equals(s) {
			return false
		}
	}
	a.knowledge = append(a.knowledge, s)
	return true
}

// infer alternates the fixpoint sweep with subset resolution until a full
// round of both produces no change. Each sweep change strictly shrinks the
// total cell count across sentences, and each resolution inserts a distinct
// sentence over a finite universe, so the loop terminates.
func (a *Agent) infer() error {
	for {
		swept, err := a.sweep()
		if err != nil {
			return err
		}
		if !a.resolveSubsets() && !swept {
			return nil
		}
	}
}

// sweep repeatedly extracts the trivially resolved sentences — all mines or
// all safes — propagates their conclusions, and drops emptied sentences,
// until one full pass changes nothing. A single pass is not enough: each
// mark simplifies every sentence and can expose new trivial ones.
func (a *Agent) sweep() (bool, error) {
	changed := false
	for pass := true; pass; {
		pass = false
		for _, s := range a.knowledge {
			// KnownMines/KnownSafes return snapshots; marking mutates the
			// sentence under inspection, so the live set must not be walked.
			for _, c := range s.KnownMines().ToSlice() {
				if err := a.MarkMine(c); err != nil {
					return changed, err
				}
				pass = true
			}
			for _, c := range s.KnownSafes().ToSlice() {
				if err := a.MarkSafe(c); err != nil {
					return changed, err
				}
				pass = true
			}
		}
		n := 0
		for _, s := range a.knowledge {
			if !s.Cells.IsEmpty() {
				a.knowledge[n] = s
				n++
			}
		}
		if n != len(a.knowledge) {
			a.knowledge = a.knowledge[:n]
			pass = true
		}
		changed = changed || pass
	}
	return changed, nil
}

// resolveSubsets derives, for every pair where one sentence's cells are a
// proper subset of another's, the difference sentence: if B holds b mines
// and its subset A holds a mines, then B−A holds exactly b−a mines.
// Candidates with a negative count indicate upstream inconsistency and are
// discarded rather than inserted. Reports whether anything new was added.
func (a *Agent) resolveSubsets() bool {
	derived := false
	base := a.knowledge
	for _, sub := range base {
		for _, super := range base {
			if sub == super || !sub.Cells.IsProperSubsetOf(super.Cells) {
				continue
			}
			count := super.Count - sub.Count
			if count < 0 {
				continue
			}
			if a.insert(NewSentence(super.Cells.Minus(sub.Cells), count)) {
				derived = true
			}
		}
	}
	return derived
}
