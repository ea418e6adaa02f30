package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/calpuzzle/calpuzzle/internal/catalog"
	"github.com/calpuzzle/calpuzzle/internal/config"
	"github.com/calpuzzle/calpuzzle/internal/dispatch"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "sweep every calendar configuration in the supported date range, solving and cataloguing whatever isn't already solved",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "randomize", Usage: "let this worker diverge from other concurrent workers' search order"},
			&cli.DurationFlag{Name: "lock-timeout", Value: catalog.DefaultLockTimeout, Usage: "how long to wait on a contested configuration before moving on"},
		},
		Action: runDispatch,
	}
}

func runDispatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := config.NewLogger("[calendarpuzzle] ", cfg.LogLevel, c.App.ErrWriter)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rng *solver.Rand
	if cfg.Seed != 0 {
		rng = solver.NewRand(cfg.Seed)
	}

	store := catalog.NewStore(cfg.CatalogDir)
	sv := solver.NewSolver(&solver.SolverConfig{Logger: logger.Func()})
	d := dispatch.NewDispatcher(store, sv, logger.Func())

	start := time.Now()
	stats, err := d.Run(ctx, dispatch.RunConfig{
		Randomize:   c.Bool("randomize"),
		Rand:        rng,
		LockTimeout: c.Duration("lock-timeout"),
	})
	logger.Info("run: considered=%d solved=%d skipped=%d contested=%d failed=%d elapsed=%s",
		stats.Considered, stats.Solved, stats.Skipped, stats.Contested, stats.Failed, time.Since(start).Round(time.Millisecond))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
