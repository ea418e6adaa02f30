package geom

import (
	"math/bits"
	"strings"
)

// Set is a bitset of grid cells packed into a single machine word: bit i is set iff
// cell (i%Width, i/Width) is a member. Both board states and piece shapes share this
// representation, so feasibility and placement reduce to AND/ANDNOT on a uint64.
type Set uint64

// EmptySet contains no cells.
const EmptySet Set = 0

// NewSet builds a Set from the given cells.
func NewSet(cells ...Cell) Set {
	var s Set
	for _, c := range cells {
		s |= Set(1) << uint(c.index())
	}
	return s
}

// Has reports whether c is a member of s.
func (s Set) Has(c Cell) bool {
	return s&(Set(1)<<uint(c.index())) != 0
}

// Add returns s with c added.
func (s Set) Add(c Cell) Set {
	return s | Set(1)<<uint(c.index())
}

// Remove returns s with c removed.
func (s Set) Remove(c Cell) Set {
	return s &^ (Set(1) << uint(c.index()))
}

// Count returns the number of member cells.
func (s Set) Count() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Union returns the cell-wise union of the given sets.
func Union(sets ...Set) Set {
	var u Set
	for _, s := range sets {
		u |= s
	}
	return u
}

// Intersect returns the cell-wise intersection of the given sets.
func Intersect(sets ...Set) Set {
	if len(sets) == 0 {
		return EmptySet
	}
	u := sets[0]
	for _, s := range sets[1:] {
		u &= s
	}
	return u
}

// Cells returns the member cells in ascending bit-index order (row-major).
func (s Set) Cells() []Cell {
	cells := make([]Cell, 0, s.Count())
	for rem := s; rem != 0; {
		idx := bits.TrailingZeros64(uint64(rem))
		cells = append(cells, cellFromIndex(idx))
		rem &= rem - 1
	}
	return cells
}

// Bounds returns the smallest bounding box (inclusive) containing every member cell.
// The second return value is false if s is empty, in which case the box is undefined.
func (s Set) Bounds() (minCol, minRow, maxCol, maxRow int, ok bool) {
	if s.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	minCol, minRow = Width, Height
	maxCol, maxRow = -1, -1
	for _, c := range s.Cells() {
		if c.Col < minCol {
			minCol = c.Col
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	return minCol, minRow, maxCol, maxRow, true
}

// translate returns s with every cell shifted by (dCol, dRow). ok is false if any
// shifted cell would fall outside the grid, in which case the returned Set is
// meaningless and must be discarded by the caller.
func (s Set) translate(dCol, dRow int) (Set, bool) {
	var out Set
	for _, c := range s.Cells() {
		nc := c.Add(dCol, dRow)
		if nc.Col < 0 || nc.Col >= Width || nc.Row < 0 || nc.Row >= Height {
			return EmptySet, false
		}
		out = out.Add(nc)
	}
	return out, true
}

// Dump renders s as a Width x Height grid of '#' and '.' with row 0 at the bottom,
// matching the board's physical layout (row 0 is the bottom weekday row).
func (s Set) Dump() string {
	var b strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			c, _ := NewCell(col, row)
			if s.Has(c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
