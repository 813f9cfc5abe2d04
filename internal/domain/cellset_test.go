package domain

import "testing"

func TestCellSetCopyIsIndependent(t *testing.T) {
	s := NewCellSet(Cell{0, 0}, Cell{0, 1})
	c := s.Copy()
	c.Del(Cell{0, 0})
	c.Add(Cell{5, 5})

	if !s.Contains(Cell{0, 0}) {
		t.Error("deleting from the copy removed a member of the original")
	}
	if s.Contains(Cell{5, 5}) {
		t.Error("adding to the copy added a member to the original")
	}
}

func TestCellSetMinus(t *testing.T) {
	a := NewCellSet(Cell{0, 0}, Cell{0, 1}, Cell{0, 2})
	b := NewCellSet(Cell{0, 1})
	diff := a.Minus(b)

	if diff.Size() != 2 || !diff.Contains(Cell{0, 0}) || !diff.Contains(Cell{0, 2}) {
		t.Errorf("Minus = %v, want {(0,0) (0,2)}", diff)
	}
	if a.Size() != 3 {
		t.Error("Minus mutated the receiver")
	}
}

func TestCellSetEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b CellSet
		want bool
	}{
		{"equal", NewCellSet(Cell{1, 1}, Cell{2, 2}), NewCellSet(Cell{2, 2}, Cell{1, 1}), true},
		{"different member", NewCellSet(Cell{1, 1}), NewCellSet(Cell{1, 2}), false},
		{"different size", NewCellSet(Cell{1, 1}), NewCellSet(Cell{1, 1}, Cell{2, 2}), false},
		{"both empty", NewCellSet(), NewCellSet(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellSetIsProperSubsetOf(t *testing.T) {
	tests := []struct {
		name string
		a, b CellSet
		want bool
	}{
		{"proper subset", NewCellSet(Cell{0, 0}), NewCellSet(Cell{0, 0}, Cell{0, 1}), true},
		{"equal sets", NewCellSet(Cell{0, 0}), NewCellSet(Cell{0, 0}), false},
		{"disjoint", NewCellSet(Cell{0, 0}), NewCellSet(Cell{0, 1}, Cell{0, 2}), false},
		{"superset", NewCellSet(Cell{0, 0}, Cell{0, 1}), NewCellSet(Cell{0, 0}), false},
		{"empty into non-empty", NewCellSet(), NewCellSet(Cell{0, 0}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsProperSubsetOf(tt.b); got != tt.want {
				t.Errorf("IsProperSubsetOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellSetToSliceIsSorted(t *testing.T) {
	s := NewCellSet(Cell{2, 0}, Cell{0, 1}, Cell{0, 0}, Cell{1, 5})
	got := s.ToSlice()
	want := []Cell{{0, 0}, {0, 1}, {1, 5}, {2, 0}}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToSlice[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
