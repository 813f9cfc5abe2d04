package domain

import (
	"sort"
	"strings"
)

// CellSet is a map-backed set of cells. The zero value is not usable; use
// NewCellSet.
type CellSet map[Cell]struct{}

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Del(c Cell) {
	delete(s, c)
}

func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Size() int {
	return len(s)
}

func (s CellSet) IsEmpty() bool {
	return len(s) == 0
}

func (s CellSet) Copy() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Minus returns a new set holding the members of s not present in other.
func (s CellSet) Minus(other CellSet) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		if !other.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

func (s CellSet) Equals(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// IsProperSubsetOf reports whether every member of s is in other and other
// has at least one cell s lacks.
func (s CellSet) IsProperSubsetOf(other CellSet) bool {
	if len(s) >= len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// ToSlice returns the members in row-major order. Callers that mark cells
// while walking a set must walk this snapshot, never the live map.
func (s CellSet) ToSlice() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (s CellSet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s.ToSlice() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
