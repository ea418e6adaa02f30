package solver

import "fmt"

// deadEndMemo remembers (target, remaining pieces) pairs already proven
// unsolvable, so a branch reached again via a different placement order is
// pruned immediately. Adapted from the teacher's TranspositionTable: a fixed-
// size array indexed by hash modulo table size, one entry per slot, newer
// entries simply overwrite older ones on collision.
type deadEndMemo struct {
	table []memoEntry
	count uint64
}

type memoEntry struct {
	target  uint64
	mask    pieceMask
	hash    uint64
	known   bool
	deadEnd bool
}

// defaultMemoEntries is sized generously for the search depth this puzzle ever
// reaches (at most 10 frames); a few hundred thousand slots keeps collisions
// rare without mattering for memory footprint.
const defaultMemoEntries = 1 << 18

func newDeadEndMemo() *deadEndMemo {
	return &deadEndMemo{
		table: make([]memoEntry, defaultMemoEntries),
		count: defaultMemoEntries,
	}
}

func memoHash(target uint64, mask pieceMask) uint64 {
	h := target*0x9E3779B97F4A7C15 + uint64(mask)*0xBF58476D1CE4E5B9
	h ^= h >> 31
	return h
}

func (m *deadEndMemo) isDeadEnd(target uint64, mask pieceMask) bool {
	if m == nil {
		return false
	}
	h := memoHash(target, mask)
	e := m.table[h%m.count]
	return e.known && e.hash == h && e.target == target && e.mask == mask && e.deadEnd
}

func (m *deadEndMemo) markDeadEnd(target uint64, mask pieceMask) {
	if m == nil {
		return
	}
	h := memoHash(target, mask)
	m.table[h%m.count] = memoEntry{
		target:  target,
		mask:    mask,
		hash:    h,
		known:   true,
		deadEnd: true,
	}
}

func (m *deadEndMemo) String() string {
	return fmt.Sprintf("deadEndMemo(%d slots)", m.count)
}
