package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/calpuzzle/calpuzzle/internal/config"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func discoverCommand() *cli.Command {
	return &cli.Command{
		Name:  "discover",
		Usage: "search for a configuration denoted by the three reserved cells of a solved tiling, rather than supplying one",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "randomize", Usage: "shuffle candidate order at each branch instead of searching deterministically"},
		},
		Action: runDiscover,
	}
}

func runDiscover(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := config.NewLogger("[calendarpuzzle] ", cfg.LogLevel, c.App.ErrWriter)

	var rng *solver.Rand
	if cfg.Seed != 0 {
		rng = solver.NewRand(cfg.Seed)
	}

	sv := solver.NewSolver(&solver.SolverConfig{Logger: logger.Func()})
	result, err := sv.Discover(c.Context, &solver.SearchConfig{Randomize: c.Bool("randomize"), Rand: rng})
	if err != nil {
		return err
	}

	board, err := RenderBoard(result.Configuration, result.Placements)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n%s\n", result.Configuration, board)
	return nil
}
