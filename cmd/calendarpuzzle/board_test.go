package main

import (
	"context"
	"strings"
	"testing"

	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func TestRenderBoardCoversEveryNonReservedCell(t *testing.T) {
	t.Parallel()

	configuration, target, err := puzzle.NewConfiguration(1, 1, 5)
	if err != nil {
		t.Fatalf("NewConfiguration returned error: %v", err)
	}
	sv := solver.NewSolver(nil)
	placements, err := sv.Solve(context.Background(), target, nil)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	board, err := RenderBoard(configuration, placements)
	if err != nil {
		t.Fatalf("RenderBoard returned error: %v", err)
	}
	if board == "" {
		t.Fatal("RenderBoard returned an empty string")
	}
	// Reserved cells are rendered with ".." (stripped of colour codes it still
	// contains the literal dots); every other outline cell must carry a piece
	// letter A-J, never the "??" placeholder for an unassigned cell.
	if strings.Contains(board, "??") {
		t.Error("board left an outline cell uncovered by any placement")
	}
}

func TestPlacementCellsRejectsUnknownPiece(t *testing.T) {
	t.Parallel()
	_, err := placementCells(solver.Placement{Piece: 'Z'})
	if err == nil {
		t.Fatal("expected an error for an unknown piece letter")
	}
}
