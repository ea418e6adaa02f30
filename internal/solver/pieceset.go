package solver

import (
	"math/bits"

	"github.com/calpuzzle/calpuzzle/internal/piece"
)

// pieceMask tracks which of the ten catalogued pieces remain available, one bit
// per index into piece.Catalogue. Generalizes the teacher's CastleRights bitmask
// (four fixed rights) to a fixed set of ten.
type pieceMask uint16

func fullPieceMask() pieceMask {
	return pieceMask(1<<uint(len(piece.Catalogue))) - 1
}

func (m pieceMask) has(idx int) bool {
	return m&(1<<uint(idx)) != 0
}

func (m pieceMask) without(idx int) pieceMask {
	return m &^ (1 << uint(idx))
}

func (m pieceMask) with(idx int) pieceMask {
	return m | (1 << uint(idx))
}

func (m pieceMask) isEmpty() bool {
	return m == 0
}

// firstIndex returns the lowest-set bit, i.e. the highest-priority remaining
// piece in Catalogue's largest-area-first order.
func (m pieceMask) firstIndex() int {
	return bits.TrailingZeros16(uint16(m))
}

// minRemainingArea returns the smallest Area among the pieces still set in m.
func (m pieceMask) minRemainingArea() int {
	min := -1
	for rem := m; rem != 0; rem &= rem - 1 {
		idx := bits.TrailingZeros16(uint16(rem))
		area := piece.Catalogue[idx].Area
		if min == -1 || area < min {
			min = area
		}
	}
	return min
}

// withArea returns the indices of every remaining piece whose Area equals area.
func (m pieceMask) withArea(area int) []int {
	var out []int
	for rem := m; rem != 0; rem &= rem - 1 {
		idx := bits.TrailingZeros16(uint16(rem))
		if piece.Catalogue[idx].Area == area {
			out = append(out, idx)
		}
	}
	return out
}
