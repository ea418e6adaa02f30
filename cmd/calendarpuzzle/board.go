package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/calpuzzle/calpuzzle/internal/geom"
	"github.com/calpuzzle/calpuzzle/internal/piece"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

// pieceColors cycles a fixed, readable palette across the ten piece letters so
// adjacent pieces in the rendered board are easy to tell apart in a terminal.
var pieceColors = []*color.Color{
	color.New(color.FgBlack, color.BgHiGreen),
	color.New(color.FgBlack, color.BgHiYellow),
	color.New(color.FgBlack, color.BgHiCyan),
	color.New(color.FgBlack, color.BgHiMagenta),
	color.New(color.FgWhite, color.BgBlue),
	color.New(color.FgBlack, color.BgHiRed),
	color.New(color.FgWhite, color.BgGreen),
	color.New(color.FgBlack, color.BgHiWhite),
	color.New(color.FgWhite, color.BgMagenta),
	color.New(color.FgWhite, color.BgRed),
}

func colorFor(name byte) *color.Color {
	idx := int(name-'A') % len(pieceColors)
	if idx < 0 {
		idx = 0
	}
	return pieceColors[idx]
}

// placementCells translates a placement's piece orientation by its offset,
// the same algebraic trick internal/solver uses to avoid exposing a bare
// translate primitive from internal/geom: a cell set that is known to lie
// entirely inside a superset can be recovered as superset &^ Apply(superset,
// shape, offset).
func placementCells(p solver.Placement) (geom.Set, error) {
	pc, ok := piece.ByName[p.Piece]
	if !ok {
		return geom.EmptySet, fmt.Errorf("board: unknown piece %q", string(p.Piece))
	}
	var shape geom.Set
	found := false
	for _, o := range pc.Orientations {
		if o.Rotation == p.Rotation && o.Mirrored == p.Mirrored {
			shape = o.Shape
			found = true
			break
		}
	}
	if !found {
		return geom.EmptySet, fmt.Errorf("board: piece %q has no orientation rotation=%d mirrored=%v", string(p.Piece), p.Rotation, p.Mirrored)
	}
	return puzzle.Outline &^ geom.Apply(puzzle.Outline, shape, p.Offset), nil
}

// RenderBoard draws the solved board for configuration: reserved label cells
// shown as "..", every other outline cell filled with its covering piece's letter in
// a colour unique to that piece.
func RenderBoard(cfg puzzle.Configuration, placements []solver.Placement) (string, error) {
	owner := make(map[geom.Cell]byte, puzzle.Outline.Count())
	for _, p := range placements {
		cells, err := placementCells(p)
		if err != nil {
			return "", err
		}
		for _, c := range cells.Cells() {
			owner[c] = p.Piece
		}
	}

	monthCell, dayCell, weekdayCell := cfg.ReservedCells()
	reserved := map[geom.Cell]bool{monthCell: true, dayCell: true, weekdayCell: true}

	var b strings.Builder
	for row := geom.Height - 1; row >= 0; row-- {
		for col := 0; col < geom.Width; col++ {
			c := geom.Cell{Col: col, Row: row}
			if !puzzle.Outline.Has(c) {
				b.WriteString("    ")
				continue
			}
			if reserved[c] {
				b.WriteString(color.New(color.FgHiBlack, color.BgBlack).Sprint(" .. "))
				continue
			}
			name, ok := owner[c]
			if !ok {
				b.WriteString(" ?? ")
				continue
			}
			b.WriteString(colorFor(name).Sprintf(" %c  ", name))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
