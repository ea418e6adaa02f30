package solver

import (
	"context"
	"testing"

	"github.com/calpuzzle/calpuzzle/internal/puzzle"
)

// BenchmarkSolve times a full search to completion for a handful of
// configurations, adapted from the teacher's perft benchmark harness (run a
// fixed set of fixture positions to completion and report nodes/sec-style
// timing rather than asserting a specific node count).
func BenchmarkSolve(b *testing.B) {
	configs := []struct {
		month, day, weekday int
	}{
		{month: 1, day: 1, weekday: 5},
		{month: 2, day: 29, weekday: 0},
		{month: 12, day: 31, weekday: 6},
	}

	for _, cfg := range configs {
		cfg := cfg
		_, target, err := puzzle.NewConfiguration(cfg.month, cfg.day, cfg.weekday)
		if err != nil {
			b.Fatalf("unexpected configuration error: %v", err)
		}
		b.Run(puzzle.Configuration{Month: cfg.month, Day: cfg.day, Weekday: cfg.weekday}.String(), func(b *testing.B) {
			s := NewSolver(nil)
			for i := 0; i < b.N; i++ {
				if _, err := s.Solve(context.Background(), target, &SearchConfig{}); err != nil {
					b.Fatalf("unexpected solve error: %v", err)
				}
			}
		})
	}
}
