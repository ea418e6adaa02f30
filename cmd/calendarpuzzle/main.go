// Command calendarpuzzle solves, discovers, and catalogues tilings of the
// perpetual calendar puzzle board.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/calpuzzle/calpuzzle/internal/config"
)

const (
	flagLogLevel   = "log-level"
	flagCatalogDir = "catalog-dir"
	flagSeed       = "seed"
	flagDate       = "date"
)

func main() {
	app := &cli.App{
		Name:  "calendarpuzzle",
		Usage: "solve and catalogue tilings of the perpetual calendar puzzle",

		Writer:    os.Stdout,
		ErrWriter: os.Stderr,

		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLogLevel, Value: config.LogLevelInfo, Usage: "silent, info, or debug", EnvVars: []string{"CALPUZZLE_LOG_LEVEL"}},
			&cli.StringFlag{Name: flagCatalogDir, Value: config.DefaultCatalogDir, Usage: "directory backing the solved-tiling catalogue", EnvVars: []string{"CALPUZZLE_CATALOG_DIR"}},
			&cli.Uint64Flag{Name: flagSeed, Usage: "PRNG seed for randomized search order (0 picks a fresh time-based seed)", EnvVars: []string{"CALPUZZLE_SEED"}},
			&cli.StringFlag{Name: flagDate, Usage: "pin a single YYYY-MM-DD date for solve instead of passing --month/--day/--weekday", EnvVars: []string{"CALPUZZLE_DATE"}},
		},

		Commands: []*cli.Command{
			runCommand(),
			solveCommand(),
			discoverCommand(),
			migrateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves a config.Config from this invocation's global flags,
// overlaid by environment variables, per internal/config.Load's precedence.
// A zero seed is replaced by one derived from the current time.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(config.Config{
		LogLevel:   c.String(flagLogLevel),
		CatalogDir: c.String(flagCatalogDir),
		Seed:       c.Uint64(flagSeed),
		Date:       c.String(flagDate),
	})
	if err == nil && cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, err
}
