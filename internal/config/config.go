// Package config resolves one Config from defaults, then CLI flags, then
// environment variables, in that overlay order, mirroring the layered
// configuration approach the rest of the corpus uses for its own settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// ErrInvalidConfiguration is returned by Load when the resolved settings
// cannot be used to run the program (unknown log level, malformed date, bad
// catalog directory).
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// Config is the fully-resolved set of knobs the CLI layer and the dispatcher
// read from. Every field may be set by flag (overriding the default) or by its
// CALPUZZLE_-prefixed environment variable (overriding the flag).
type Config struct {
	LogLevel   string `env:"CALPUZZLE_LOG_LEVEL"`
	CatalogDir string `env:"CALPUZZLE_CATALOG_DIR"`
	Seed       uint64 `env:"CALPUZZLE_SEED"`

	// Date, if set, pins a single day (YYYY-MM-DD) for the solve subcommand
	// in place of its --month/--day/--weekday flags.
	Date string `env:"CALPUZZLE_DATE"`
}

// DefaultCatalogDir is used when neither a flag nor CALPUZZLE_CATALOG_DIR is
// supplied.
const DefaultCatalogDir = "catalog"

// Default returns the built-in baseline Load starts from before overlaying
// flags and environment variables.
func Default() Config {
	return Config{
		LogLevel:   LogLevelInfo,
		CatalogDir: DefaultCatalogDir,
	}
}

// Load resolves a Config starting from Default(), overlaying flagCfg (the
// values the CLI layer parsed from its own flags; zero-valued fields are left
// alone so flags that weren't passed don't clobber the default), then
// overlaying environment variables, then validating the result.
func Load(flagCfg Config) (Config, error) {
	cfg := Default()
	overlayNonZero(&cfg, flagCfg)

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing environment: %v", ErrInvalidConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func overlayNonZero(dst *Config, src Config) {
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.CatalogDir != "" {
		dst.CatalogDir = src.CatalogDir
	}
	if src.Seed != 0 {
		dst.Seed = src.Seed
	}
	if src.Date != "" {
		dst.Date = src.Date
	}
}

// Validate reports whether the resolved configuration is usable.
func (c Config) Validate() error {
	switch c.LogLevel {
	case LogLevelSilent, LogLevelInfo, LogLevelDebug:
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfiguration, c.LogLevel)
	}
	if c.CatalogDir == "" {
		return fmt.Errorf("%w: catalog directory must not be empty", ErrInvalidConfiguration)
	}
	if c.Date != "" {
		if _, err := c.ParsedDate(); err != nil {
			return err
		}
	}
	return nil
}

// ParsedDate parses Date as a calendar day, returning ErrInvalidConfiguration
// wrapping the underlying parse error on malformed input.
func (c Config) ParsedDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parsing --date %q: %v", ErrInvalidConfiguration, c.Date, err)
	}
	return t, nil
}
