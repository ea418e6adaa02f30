// Package piece declares the ten fixed polyominoes (A through J) the puzzle is
// tiled with. Shapes are declared as Go source, mirroring the teacher's
// declarative piece-table style rather than being parsed from a data file, and
// their distinct orientations are derived once at package init().
package piece

import (
	"fmt"
	"sort"
	"time"

	"github.com/calpuzzle/calpuzzle/internal/geom"
)

// Piece is one of the ten named polyominoes.
type Piece struct {
	Name         byte // 'A'..'J'
	Base         geom.Set
	Mirrored     bool // true if the piece's mirror image is a distinct shape
	Orientations []geom.Orientation
	Area         int
}

func (p Piece) String() string {
	return fmt.Sprintf("%c", p.Name)
}

func cells(coords ...[2]int) geom.Set {
	pts := make([]geom.Cell, 0, len(coords))
	for _, xy := range coords {
		c, err := geom.NewCell(xy[0], xy[1])
		if err != nil {
			// Base shapes are compile-time constants; an invalid coordinate here
			// is a programming error, not a runtime condition.
			panic(fmt.Sprintf("piece: invalid base coordinate %v: %v", xy, err))
		}
		pts = append(pts, c)
	}
	return geom.NewSet(pts...)
}

// declarations holds the raw (name, shape, mirrored) triples taken from the
// original program's part catalogue. Declaration order here is irrelevant; the
// exported Catalogue is sorted by placement priority in init().
var declarations = []struct {
	name     byte
	shape    geom.Set
	mirrored bool
}{
	{'A', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}), false},
	{'B', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{0, 1}), true},
	{'C', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}), true},
	{'D', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{1, 1}, [2]int{1, 2}), false},
	{'E', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 2}), true},
	{'F', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}), true},
	{'G', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), false},
	{'H', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{2, 1}), false},
	{'I', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{3, 1}), true},
	{'J', cells([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 1}), true},
}

// Catalogue is the immutable, process-wide list of all ten pieces, ordered
// largest-area-first (ties broken by letter) — the solver's default placement
// priority.
var Catalogue []Piece

// ByName indexes Catalogue by its single-letter name for convenience lookups.
var ByName map[byte]Piece

// TotalArea is the sum of every piece's area; must equal the outline size minus
// the three reserved cells.
var TotalArea int

func init() {
	start := time.Now()
	fmt.Print("piece: deriving orientation tables... ")

	Catalogue = make([]Piece, 0, len(declarations))
	for _, d := range declarations {
		Catalogue = append(Catalogue, Piece{
			Name:         d.name,
			Base:         d.shape,
			Mirrored:     d.mirrored,
			Orientations: geom.DistinctOrientations(d.shape, d.mirrored),
			Area:         d.shape.Count(),
		})
	}

	sort.SliceStable(Catalogue, func(i, j int) bool {
		if Catalogue[i].Area != Catalogue[j].Area {
			return Catalogue[i].Area > Catalogue[j].Area
		}
		return Catalogue[i].Name < Catalogue[j].Name
	})

	ByName = make(map[byte]Piece, len(Catalogue))
	for _, p := range Catalogue {
		ByName[p.Name] = p
		TotalArea += p.Area
	}

	fmt.Printf("done (%.3fs, %d pieces, %d cells)\n", time.Since(start).Seconds(), len(Catalogue), TotalArea)
}
