package domain

import "fmt"

// Cell identifies one board square by zero-based row and column. It is a
// plain value: comparable, hashable, and used as a map key throughout.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders cells row-major. Deterministic move selection depends on it.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}
