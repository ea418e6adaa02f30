package geom

import "fmt"

// Orientation is one distinct pose a shape can take: a rotation in degrees
// (0/90/180/270) and whether it was mirrored, paired with the normalised cell set
// that pose produces.
type Orientation struct {
	Rotation int
	Mirrored bool
	Shape    Set
}

// Normalize translates s so its minimum column and minimum row are both zero.
// An empty set normalises to itself.
func Normalize(s Set) Set {
	minCol, minRow, _, _, ok := s.Bounds()
	if !ok {
		return s
	}
	out, shifted := s.translate(-minCol, -minRow)
	if !shifted {
		// Translating toward the origin can never leave the grid.
		panic("geom: normalize produced an out-of-bounds cell")
	}
	return out
}

// Rotate turns s by quarterTurns * 90 degrees clockwise about the origin. The
// rotation is carried out in raw integer coordinates and shifted back to
// non-negative offsets before the result is packed into a Set — a quarter
// turn routinely produces negative intermediate coordinates, which Set
// cannot represent. That shift moves the minimum column and minimum row to
// zero, so the result is already in normalised form.
func Rotate(s Set, quarterTurns int) Set {
	turns := ((quarterTurns % 4) + 4) % 4
	coords := rawCoords(s)
	for i := 0; i < turns; i++ {
		coords = rotate90Raw(coords)
	}
	return setFromRawCoords(coords)
}

// rotate90Raw rotates each (col, row) pair 90 degrees clockwise about the
// origin: (col, row) -> (row, -col).
func rotate90Raw(coords [][2]int) [][2]int {
	out := make([][2]int, len(coords))
	for i, c := range coords {
		out[i] = [2]int{c[1], -c[0]}
	}
	return out
}

// Mirror reflects s across the vertical axis through its own origin: (col, row) ->
// (-col, row). As with Rotate, the reflection is done in raw coordinates and
// shifted back to non-negative offsets before reaching the Set representation.
func Mirror(s Set) Set {
	coords := rawCoords(s)
	out := make([][2]int, len(coords))
	for i, c := range coords {
		out[i] = [2]int{-c[0], c[1]}
	}
	return setFromRawCoords(out)
}

// rawCoords extracts s's member cells as plain (col, row) pairs, free of
// Cell's bounds checking, so they can be translated through negative
// intermediate positions during rotation/reflection.
func rawCoords(s Set) [][2]int {
	cells := s.Cells()
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Col, c.Row}
	}
	return out
}

// setFromRawCoords shifts coords so their minimum column and row are both
// zero, then packs them into a Set. This is where a rotation or reflection's
// possibly negative or out-of-grid coordinates are finally made safe to
// insert into the bitset.
func setFromRawCoords(coords [][2]int) Set {
	if len(coords) == 0 {
		return EmptySet
	}
	minCol, minRow := coords[0][0], coords[0][1]
	for _, c := range coords[1:] {
		if c[0] < minCol {
			minCol = c[0]
		}
		if c[1] < minRow {
			minRow = c[1]
		}
	}
	var out Set
	for _, c := range coords {
		cell, err := NewCell(c[0]-minCol, c[1]-minRow)
		if err != nil {
			// The shape's own extent (at most a handful of cells) can never
			// exceed the grid once shifted to touch the origin; reaching
			// here means rotate90Raw/Mirror produced something larger than
			// any legal piece, a programming error.
			panic(fmt.Sprintf("geom: rotated/mirrored shape out of bounds: %v", err))
		}
		out = out.Add(cell)
	}
	return out
}

// DistinctOrientations enumerates the poses reachable from base under the eight-
// element symmetry group (four rotations, optionally combined with one mirror),
// discarding any pose whose normalised cell set duplicates one already produced.
// Poses are composed mirror-then-rotate, fixing the ambiguous convention in the
// original program. If allowMirror is false, only the four rotations are tried.
func DistinctOrientations(base Set, allowMirror bool) []Orientation {
	mirrorChoices := []bool{false}
	if allowMirror {
		mirrorChoices = append(mirrorChoices, true)
	}

	var out []Orientation
	seen := make(map[Set]bool)
	for _, mirrored := range mirrorChoices {
		shape := base
		if mirrored {
			shape = Mirror(shape)
		}
		for _, rot := range []int{0, 90, 180, 270} {
			normalised := Normalize(Rotate(shape, rot/90))
			if seen[normalised] {
				continue
			}
			seen[normalised] = true
			out = append(out, Orientation{Rotation: rot, Mirrored: mirrored, Shape: normalised})
		}
	}
	return out
}

// Fits reports whether shape translated by offset lies entirely within target,
// i.e. every cell of the translated shape is currently uncovered. offset that
// would carry shape outside the grid is simply not a fit, not an error.
func Fits(target, shape Set, offset Cell) bool {
	translated, ok := shape.translate(offset.Col, offset.Row)
	if !ok {
		return false
	}
	return translated&target == translated
}

// Apply removes the cells of shape translated by offset from target. The caller
// must have already established Fits(target, shape, offset); Apply panics if the
// translation falls outside the grid, since that indicates a programming error
// rather than a normal search outcome.
func Apply(target, shape Set, offset Cell) Set {
	translated, ok := shape.translate(offset.Col, offset.Row)
	if !ok {
		panic("geom: apply with out-of-bounds offset")
	}
	return target &^ translated
}
