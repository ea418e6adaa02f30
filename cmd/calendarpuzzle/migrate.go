package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/calpuzzle/calpuzzle/internal/catalog"
	"github.com/calpuzzle/calpuzzle/internal/config"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "rewrite every catalogue record in --catalog-dir to the current payload shape",
		Action: runMigrate,
	}
}

func runMigrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := config.NewLogger("[calendarpuzzle] ", cfg.LogLevel, c.App.ErrWriter)

	matches, err := filepath.Glob(filepath.Join(cfg.CatalogDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("migrate: listing %s: %w", cfg.CatalogDir, err)
	}

	store := catalog.NewStore(cfg.CatalogDir)
	var migrated, skipped int
	for _, path := range matches {
		basename := strings.TrimSuffix(filepath.Base(path), ".yaml")
		month, day, weekday, err := catalog.ParseBasename(basename)
		if err != nil {
			logger.Error("migrate: %s: %v", basename, err)
			skipped++
			continue
		}
		configuration, _, err := puzzle.NewConfiguration(month, day, weekday)
		if err != nil {
			logger.Error("migrate: %s: %v", basename, err)
			skipped++
			continue
		}

		placements, err := store.Read(configuration)
		if err != nil {
			logger.Error("migrate: reading %s: %v", basename, err)
			skipped++
			continue
		}
		if err := store.Write(configuration, placements); err != nil {
			logger.Error("migrate: rewriting %s: %v", basename, err)
			skipped++
			continue
		}
		migrated++
		logger.Debug("migrate: rewrote %s", basename)
	}

	logger.Info("migrate: rewrote %d record(s), skipped %d", migrated, skipped)
	fmt.Fprintf(c.App.Writer, "migrated %d, skipped %d\n", migrated, skipped)
	return nil
}
