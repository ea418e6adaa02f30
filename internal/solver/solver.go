// Package solver implements the backtracking placement search: given a target
// cell set and the fixed piece catalogue, it finds one complete tiling (or
// proves none exists) using an explicit, non-global search context, an
// undo-on-backtrack discipline, and two dead-end pruning heuristics.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/calpuzzle/calpuzzle/internal/geom"
	"github.com/calpuzzle/calpuzzle/internal/piece"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
)

// ErrUnsolvable is returned when the search exhausts every branch without
// finding a complete tiling.
var ErrUnsolvable = errors.New("solver: no tiling found")

func DefaultLogger(a ...any) {
	// Silent by default; callers that want trace output supply their own.
	_ = a
}

// SolverConfig configures a Solver instance.
type SolverConfig struct {
	// DisableMemo turns off the dead-end memo table, useful for tests that want
	// to observe pure backtracking behaviour without memoisation shortcuts.
	DisableMemo bool
	Logger      func(...any)
}

// SearchConfig configures a single Solve or Discover call.
type SearchConfig struct {
	// Randomize shuffles each piece's candidate-placement list (never the piece
	// selection order) using Rand, giving cooperating workers divergent search
	// paths over the same configuration.
	Randomize bool
	Rand      *Rand
	Debug     bool
}

// Solver holds the (optional) dead-end memo table and logger across calls; it
// carries no other mutable state, so a single Solver is safe to reuse (but not
// to call concurrently from multiple goroutines on overlapping searches).
type Solver struct {
	memo   *deadEndMemo
	logger func(...any)
}

// NewSolver builds a Solver from cfg.
func NewSolver(cfg *SolverConfig) *Solver {
	if cfg == nil {
		cfg = &SolverConfig{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = DefaultLogger
	}
	s := &Solver{logger: logger}
	if !cfg.DisableMemo {
		s.memo = newDeadEndMemo()
	}
	return s
}

// searchContext is the explicit, non-global state threaded through the
// recursion: the remaining target, the pieces not yet placed, and the
// placements made so far. It is mutated in place on descend and restored on
// backtrack (SPEC_FULL.md §9 REDESIGN: no package-level counters or RNG).
type searchContext struct {
	target     geom.Set
	remaining  pieceMask
	placements []Placement
	state      State
}

// Solve searches for a complete tiling of target using every piece in
// piece.Catalogue exactly once. target must already have any reserved cells
// removed (the configurator's job); a fully-exhausted piece set is success
// only if target is then empty. Returns the first tiling found.
func (s *Solver) Solve(ctx context.Context, target geom.Set, cfg *SearchConfig) ([]Placement, error) {
	if cfg == nil {
		cfg = &SearchConfig{}
	}
	sc := &searchContext{
		target:     target,
		remaining:  fullPieceMask(),
		placements: make([]Placement, 0, len(piece.Catalogue)),
		state:      StateFresh,
	}
	state := s.solve(ctx, sc, cfg, false)
	if state != StateSolved {
		return nil, fmt.Errorf("%w: exhausted search over %d cells", ErrUnsolvable, target.Count())
	}
	out := make([]Placement, len(sc.placements))
	copy(out, sc.placements)
	return out, nil
}

// DiscoverResult is the outcome of a Discover call: a full tiling of the
// outline minus three cells, plus the configuration those three cells denote.
type DiscoverResult struct {
	Configuration puzzle.Configuration
	Placements    []Placement
}

// Discover searches for any complete tiling of the full 50-cell outline using
// all ten pieces, with no reserved cells chosen in advance, and reads off
// whichever (month, day, weekday) triple the three leftover cells denote. This
// is the alternative entry point into the same recursion described in
// SPEC_FULL.md §4.5.
func (s *Solver) Discover(ctx context.Context, cfg *SearchConfig) (*DiscoverResult, error) {
	if cfg == nil {
		cfg = &SearchConfig{}
	}
	sc := &searchContext{
		target:     puzzle.Outline,
		remaining:  fullPieceMask(),
		placements: make([]Placement, 0, len(piece.Catalogue)),
		state:      StateFresh,
	}
	state := s.solve(ctx, sc, cfg, true)
	if state != StateSolved {
		return nil, fmt.Errorf("%w: discover search exhausted", ErrUnsolvable)
	}
	leftoverConfig, ok := puzzle.FromReservedCells(sc.target.Cells())
	if !ok {
		return nil, fmt.Errorf("%w: discover search left an unlabelled remainder", ErrUnsolvable)
	}
	out := make([]Placement, len(sc.placements))
	copy(out, sc.placements)
	return &DiscoverResult{Configuration: leftoverConfig, Placements: out}, nil
}

// solve is the shared recursion behind Solve and Discover. discoverMode
// relaxes the success condition and pruning heuristic (b) to tolerate a
// 3-cell leftover instead of requiring an exactly-empty target.
func (s *Solver) solve(ctx context.Context, sc *searchContext, cfg *SearchConfig, discoverMode bool) State {
	select {
	case <-ctx.Done():
		sc.state = StateDeadEnd
		return StateDeadEnd
	default:
	}

	sc.state = StateExploring

	if sc.remaining.isEmpty() {
		if !discoverMode {
			if sc.target.IsEmpty() {
				sc.state = StateSolved
				return StateSolved
			}
			sc.state = StateDeadEnd
			return StateDeadEnd
		}
		if isValidLeftover(sc.target) {
			sc.state = StateSolved
			return StateSolved
		}
		sc.state = StateDeadEnd
		return StateDeadEnd
	}

	if s.memo.isDeadEnd(uint64(sc.target), sc.remaining) {
		sc.state = StateDeadEnd
		return StateDeadEnd
	}

	if !s.pruneOK(sc, discoverMode) {
		s.memo.markDeadEnd(uint64(sc.target), sc.remaining)
		sc.state = StateDeadEnd
		return StateDeadEnd
	}

	idx := sc.remaining.firstIndex()
	p := piece.Catalogue[idx]

	candidates := legalCandidates(sc.target, p)
	if len(candidates) == 0 {
		s.memo.markDeadEnd(uint64(sc.target), sc.remaining)
		sc.state = StateDeadEnd
		return StateDeadEnd
	}
	if cfg.Randomize && cfg.Rand != nil {
		cfg.Rand.ShuffleCandidates(candidates)
	}

	for _, cand := range candidates {
		beforeTarget := sc.target
		sc.target = sc.target &^ cand.translated
		sc.remaining = sc.remaining.without(idx)
		sc.placements = append(sc.placements, cand.placement)

		if state := s.solve(ctx, sc, cfg, discoverMode); state == StateSolved {
			return StateSolved
		}

		// Undo: restore the target saved before the placement and pop the
		// placement.
		sc.placements = sc.placements[:len(sc.placements)-1]
		sc.remaining = sc.remaining.with(idx)
		sc.target = beforeTarget
	}

	s.memo.markDeadEnd(uint64(sc.target), sc.remaining)
	sc.state = StateDeadEnd
	return StateDeadEnd
}

// isValidLeftover reports whether the 3 cells still uncovered in discover mode
// denote a legal configuration: exactly one month, one day, and one weekday
// label. The three cells need not touch one another.
func isValidLeftover(target geom.Set) bool {
	if target.Count() != 3 {
		return false
	}
	_, ok := puzzle.FromReservedCells(target.Cells())
	return ok
}

// legalCandidates enumerates every legal placement of p against target: every
// distinct orientation, every translation offset whose bounding box lies
// within target's bounding box, scanned row by row from the lowest row up with
// columns ascending within each row, filtered by geom.Fits.
func legalCandidates(target geom.Set, p piece.Piece) []candidate {
	minCol, minRow, maxCol, maxRow, ok := target.Bounds()
	if !ok {
		return nil
	}

	var out []candidate
	for _, o := range p.Orientations {
		oMinCol, oMinRow, oMaxCol, oMaxRow, oOK := o.Shape.Bounds()
		if !oOK {
			continue
		}
		width, height := oMaxCol-oMinCol, oMaxRow-oMinRow
		for row := minRow; row+height <= maxRow; row++ {
			for col := minCol; col+width <= maxCol; col++ {
				offset, err := geom.NewCell(col, row)
				if err != nil {
					continue
				}
				if !geom.Fits(target, o.Shape, offset) {
					continue
				}
				// target &^ Apply(...) leaves exactly the bits Apply removed,
				// i.e. the translated shape itself — avoids exposing a second
				// translate primitive from geom for this one use.
				translated := target &^ geom.Apply(target, o.Shape, offset)
				out = append(out, candidate{
					placement: Placement{
						Piece:    p.Name,
						Offset:   offset,
						Rotation: o.Rotation,
						Mirrored: o.Mirrored,
					},
					translated: translated,
				})
			}
		}
	}
	return out
}

// pruneOK runs both dead-end heuristics against the current target and
// remaining pieces. Returns false if either fires.
func (s *Solver) pruneOK(sc *searchContext, discoverMode bool) bool {
	minArea := sc.remaining.minRemainingArea()
	components := geom.ConnectedComponents(sc.target)
	var frozenKinds [4]bool // indexed by puzzle.LabelKind
	frozenArea := 0

	for _, comp := range components {
		area := comp.Count()

		// Heuristic (b): a component too small for any remaining piece is
		// permanently frozen — no future placement can ever reach into it,
		// since every remaining piece needs at least minArea contiguous
		// cells. In Solve mode the target never legitimately contains the
		// reserved cells, so any frozen component is a plain dead end; in
		// Discover mode its cells must be part of the eventual
		// month+day+weekday leftover, so no two frozen cells may carry the
		// same kind of label.
		if area <= 3 {
			if !discoverMode {
				return false
			}
			for _, c := range comp.Cells() {
				label, ok := puzzle.LabelOf(c)
				if !ok || frozenKinds[label.Kind] {
					return false
				}
				frozenKinds[label.Kind] = true
			}
			frozenArea += area
			continue
		}

		if area < minArea {
			return false
		}
		if area == minArea {
			normalised := geom.Normalize(comp)
			matched := false
			for _, idx := range sc.remaining.withArea(area) {
				for _, o := range piece.Catalogue[idx].Orientations {
					if o.Shape == normalised {
						matched = true
						break
					}
				}
				if matched {
					break
				}
			}
			if !matched {
				return false
			}
		}
	}

	// The frozen cells, however many regions they form, make up the Discover
	// leftover, so their combined area can never exceed the 3 cells the
	// piece-area arithmetic allows.
	if discoverMode && frozenArea > 3 {
		return false
	}
	return true
}
