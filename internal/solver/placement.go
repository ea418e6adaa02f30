package solver

import (
	"fmt"

	"github.com/calpuzzle/calpuzzle/internal/geom"
)

// Placement binds one piece to one orientation at one translation offset.
type Placement struct {
	Piece    byte
	Offset   geom.Cell
	Rotation int
	Mirrored bool
}

func (p Placement) String() string {
	mirror := ""
	if p.Mirrored {
		mirror = " mirrored"
	}
	return fmt.Sprintf("%c@%s r%d%s", p.Piece, p.Offset, p.Rotation, mirror)
}

// candidate is one legal placement under consideration during search: the
// orientation's normalised shape, the translation that fits it against the
// current target, and the translated cell set (cached so descending into the
// candidate removes it from the target with a single AND NOT instead of
// re-deriving the translation).
type candidate struct {
	placement  Placement
	translated geom.Set
}
