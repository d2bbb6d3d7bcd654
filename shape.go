package dof

import (
	"strconv"
	"strings"
)

// Shape is the sequence of per-row key counts of a layer, fingering or board.
type Shape []int

// Equal reports whether both shapes have the same rows.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Rows returns the number of rows.
func (s Shape) Rows() int { return len(s) }

// Len returns the length of row r, or 0 when r is out of range.
func (s Shape) Len(r int) int {
	if r < 0 || r >= len(s) {
		return 0
	}
	return s[r]
}

// Total returns the number of slots.
func (s Shape) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Contains reports whether p is a slot of the shape.
func (s Shape) Contains(p Pos) bool { return p.Col >= 0 && p.Col < s.Len(p.Row) }

// FitsIn reports whether every row of s is at most as long as the same row
// of o, after shifting s by the anchor.
func (s Shape) FitsIn(o Shape, a Anchor) bool {
	return firstMisfit(s, o, a) < 0
}

// firstMisfit returns the first row of s that does not fit o at a, or -1.
func firstMisfit(s, o Shape, a Anchor) int {
	for r, n := range s {
		// Compared by subtraction: anchors may be close to the int limit.
		if a.Y >= len(o)-r || n > o[r+a.Y]-a.X {
			return r
		}
	}
	return -1
}

// String renders the shape as "[13 13 12]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Pos addresses a slot by row and column within a layer's shape.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string { return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")" }

func posLess(a, b Pos) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
