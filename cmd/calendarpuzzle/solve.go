package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/calpuzzle/calpuzzle/internal/calendarmap"
	"github.com/calpuzzle/calpuzzle/internal/config"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "solve one calendar configuration and print the tiling",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "month", Usage: "1-12, required unless --date is set"},
			&cli.IntFlag{Name: "day", Usage: "1-31, required unless --date is set"},
			&cli.IntFlag{Name: "weekday", Usage: "0=Monday..6=Sunday, required unless --date is set"},
			&cli.BoolFlag{Name: "randomize", Usage: "shuffle candidate order at each branch instead of searching deterministically"},
		},
		Action: runSolve,
	}
}

func resolveConfiguration(c *cli.Context, cfg config.Config) (int, int, int, error) {
	if cfg.Date != "" {
		parsed, err := cfg.ParsedDate()
		if err != nil {
			return 0, 0, 0, err
		}
		weekday := calendarmap.Weekday(parsed.Year(), int(parsed.Month()), parsed.Day())
		return int(parsed.Month()), parsed.Day(), weekday, nil
	}
	month, day, weekday := c.Int("month"), c.Int("day"), c.Int("weekday")
	if !c.IsSet("month") || !c.IsSet("day") || !c.IsSet("weekday") {
		return 0, 0, 0, fmt.Errorf("%w: --month, --day and --weekday are required when --date is not set", config.ErrInvalidConfiguration)
	}
	return month, day, weekday, nil
}

func runSolve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := config.NewLogger("[calendarpuzzle] ", cfg.LogLevel, c.App.ErrWriter)

	month, day, weekday, err := resolveConfiguration(c, cfg)
	if err != nil {
		return err
	}
	configuration, target, err := puzzle.NewConfiguration(month, day, weekday)
	if err != nil {
		return err
	}

	var rng *solver.Rand
	if cfg.Seed != 0 {
		rng = solver.NewRand(cfg.Seed)
	}

	sv := solver.NewSolver(&solver.SolverConfig{Logger: logger.Func()})
	placements, err := sv.Solve(c.Context, target, &solver.SearchConfig{Randomize: c.Bool("randomize"), Rand: rng})
	if err != nil {
		return err
	}

	board, err := RenderBoard(configuration, placements)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n%s\n", configuration, board)
	return nil
}
