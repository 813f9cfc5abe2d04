package domain

import "fmt"

// Sentence is one logical statement about the board: exactly Count of the
// cells in Cells are mines. Every sentence held by an agent satisfies
// 0 <= Count <= |Cells|.
type Sentence struct {
	Cells CellSet
	Count int
}

// NewSentence copies the given cell set so the sentence owns its members.
func NewSentence(cells CellSet, count int) *Sentence {
	return &Sentence{Cells: cells.Copy(), Count: count}
}

// Equals compares by value: same cell set, same count. Deduplication and
// subset resolution both depend on value semantics, not identity.
func (s *Sentence) Equals(other *Sentence) bool {
	return s.Count == other.Count && s.Cells.Equals(other.Cells)
}

func (s *Sentence) String() string {
	return fmt.Sprintf("%v = %d", s.Cells, s.Count)
}

// KnownMines returns a copy of the cell set when every remaining cell must
// be a mine. The Count > 0 guard keeps an emptied sentence from reading as
// "all cells are mines".
func (s *Sentence) KnownMines() CellSet {
	if s.Count > 0 && s.Count == s.Cells.Size() {
		return s.Cells.Copy()
	}
	return NewCellSet()
}

// KnownSafes returns a copy of the cell set when none of the remaining
// cells can be a mine.
func (s *Sentence) KnownSafes() CellSet {
	if s.Count == 0 && !s.Cells.IsEmpty() {
		return s.Cells.Copy()
	}
	return NewCellSet()
}

// MarkMine removes a cell known to be a mine: one fewer unknown cell, one
// fewer mine left to account for. No-op when the cell is not a member.
func (s *Sentence) MarkMine(c Cell) {
	if s.Cells.Contains(c) {
		s.Cells.Del(c)
		s.Count--
	}
}

// MarkSafe removes a cell known to be safe. The mine budget is unchanged.
func (s *Sentence) MarkSafe(c Cell) {
	s.Cells.Del(c)
}
