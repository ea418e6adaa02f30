// Package dispatch drives the solver across every calendar configuration in
// the supported date range, coordinating with other worker processes purely
// through the shared catalogue directory: skip-if-done, lock-with-timeout,
// solve, write, release on every exit path.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/calpuzzle/calpuzzle/internal/calendarmap"
	"github.com/calpuzzle/calpuzzle/internal/catalog"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func DefaultLogger(a ...any) {
	_ = a
}

// RunConfig configures one dispatcher sweep.
type RunConfig struct {
	// Randomize enables per-worker divergent search order (SPEC_FULL.md §5).
	Randomize bool
	Rand      *solver.Rand

	// StartFrom, if non-nil, skips every configuration before it in
	// calendarmap.All()'s iteration order, resuming a partial sweep.
	StartFrom *puzzle.Configuration

	// LockTimeout overrides catalog.DefaultLockTimeout when non-zero.
	LockTimeout time.Duration
}

// Stats summarises one Run invocation.
type Stats struct {
	Considered int
	Skipped    int
	Contested  int
	Solved     int
	Failed     int
}

// Dispatcher walks calendarmap.All(), solving and persisting every
// configuration not already in the catalogue.
type Dispatcher struct {
	store  *catalog.Store
	solver *solver.Solver
	logger func(...any)
}

// NewDispatcher builds a Dispatcher over store, using sv to solve each
// pending configuration. A nil logger disables logging.
func NewDispatcher(store *catalog.Store, sv *solver.Solver, logger func(...any)) *Dispatcher {
	if logger == nil {
		logger = DefaultLogger
	}
	return &Dispatcher{store: store, solver: sv, logger: logger}
}

// Run sweeps every configuration calendarmap.All() produces, stopping early
// if ctx is cancelled (operator SIGINT/SIGTERM at the CLI layer). The current
// configuration's solve, if in flight, completes and its lock is released
// before Run returns; Run does not abort a solve already underway.
func (d *Dispatcher) Run(ctx context.Context, cfg RunConfig) (Stats, error) {
	return d.RunConfigurations(ctx, calendarmap.All(), cfg)
}

// RunConfigurations sweeps exactly the given configurations in order; Run is
// the common case (the full calendarmap.All() range), this is the entry
// point tests use to exercise dispatcher semantics over a small fixture set.
func (d *Dispatcher) RunConfigurations(ctx context.Context, configurations []puzzle.Configuration, cfg RunConfig) (Stats, error) {
	var stats Stats
	started := cfg.StartFrom == nil

	for _, configuration := range configurations {
		if !started {
			if configuration == *cfg.StartFrom {
				started = true
			} else {
				continue
			}
		}

		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		stats.Considered++
		if err := d.attempt(ctx, configuration, cfg, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// attempt handles one configuration: skip-if-exists, stale-lock cleanup,
// acquire, solve, write, release on every exit path.
func (d *Dispatcher) attempt(ctx context.Context, configuration puzzle.Configuration, cfg RunConfig, stats *Stats) error {
	if d.store.Exists(configuration) {
		stats.Skipped++
		d.logger(fmt.Sprintf("dispatch: skip %s (already solved)", configuration))
		return nil
	}

	catalog.CleanStaleLocks(d.store.Dir())

	timeout := catalog.DefaultLockTimeout
	if cfg.LockTimeout != 0 {
		timeout = cfg.LockTimeout
	}

	lock := catalog.NewLock(d.store.Dir(), configuration)
	acquired, err := lock.TryAcquire(ctx, timeout)
	if err != nil {
		return fmt.Errorf("dispatch: acquiring lock for %s: %w", configuration, err)
	}
	if !acquired {
		stats.Contested++
		d.logger(fmt.Sprintf("dispatch: %s contested, skipping", configuration))
		return nil
	}
	defer func() {
		if err := lock.Release(); err != nil {
			d.logger(fmt.Sprintf("dispatch: releasing lock for %s: %v", configuration, err))
		}
	}()

	_, target, err := puzzle.NewConfiguration(configuration.Month, configuration.Day, configuration.Weekday)
	if err != nil {
		stats.Failed++
		d.logger(fmt.Sprintf("dispatch: %s invalid configuration: %v", configuration, err))
		return nil
	}

	// The solve is deliberately not tied to ctx: a cancellation lets it finish
	// and be written before Run stops.
	placements, err := d.solver.Solve(context.Background(), target, &solver.SearchConfig{Randomize: cfg.Randomize, Rand: cfg.Rand})
	if err != nil {
		stats.Failed++
		d.logger(fmt.Sprintf("dispatch: %s unsolvable: %v", configuration, err))
		return nil
	}

	if err := d.store.Write(configuration, placements); err != nil {
		return fmt.Errorf("dispatch: writing %s: %w", configuration, err)
	}
	stats.Solved++
	d.logger(fmt.Sprintf("dispatch: solved %s", configuration))
	return nil
}
