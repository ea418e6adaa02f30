package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calpuzzle/calpuzzle/internal/catalog"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func fixtureConfigurations(t *testing.T) []puzzle.Configuration {
	t.Helper()
	return []puzzle.Configuration{
		{Month: 1, Day: 1, Weekday: 5},
		{Month: 2, Day: 29, Weekday: 0},
		{Month: 12, Day: 31, Weekday: 6},
	}
}

func newTestDispatcher(t *testing.T, dir string) *Dispatcher {
	t.Helper()
	store := catalog.NewStore(dir)
	sv := solver.NewSolver(nil)
	return NewDispatcher(store, sv, nil)
}

func TestRunConfigurationsSolvesEveryPendingConfiguration(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	d := newTestDispatcher(t, dir)

	stats, err := d.RunConfigurations(context.Background(), fixtureConfigurations(t), RunConfig{})
	require.NoError(t, err)
	require.Equal(t, 3, stats.Considered)
	require.Equal(t, 3, stats.Solved)
	require.Zero(t, stats.Skipped)
	require.Zero(t, stats.Contested)
	require.Zero(t, stats.Failed)

	store := catalog.NewStore(dir)
	for _, cfg := range fixtureConfigurations(t) {
		require.True(t, store.Exists(cfg))
		placements, err := store.Read(cfg)
		require.NoError(t, err)
		require.NotEmpty(t, placements)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.lock"))
	require.NoError(t, err)
	require.Empty(t, matches, "no lock sentinel should survive a completed run")
}

func TestRunConfigurationsSkipsAnAlreadySolvedConfiguration(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := catalog.NewStore(dir)
	sv := solver.NewSolver(nil)

	preloaded := puzzle.Configuration{Month: 1, Day: 1, Weekday: 5}
	_, target, err := puzzle.NewConfiguration(preloaded.Month, preloaded.Day, preloaded.Weekday)
	require.NoError(t, err)
	placements, err := sv.Solve(context.Background(), target, nil)
	require.NoError(t, err)
	require.NoError(t, store.Write(preloaded, placements))

	d := NewDispatcher(store, sv, nil)
	stats, err := d.RunConfigurations(context.Background(), fixtureConfigurations(t), RunConfig{})
	require.NoError(t, err)
	require.Equal(t, 3, stats.Considered)
	require.Equal(t, 1, stats.Skipped)
	require.Equal(t, 2, stats.Solved)

	matches, err := filepath.Glob(filepath.Join(dir, "*.lock"))
	require.NoError(t, err)
	require.Empty(t, matches, "skipping an existing record must not leave a lock sentinel behind")
}

func TestRunConfigurationsRespectsStartFrom(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	d := newTestDispatcher(t, dir)

	resumeFrom := puzzle.Configuration{Month: 2, Day: 29, Weekday: 0}
	stats, err := d.RunConfigurations(context.Background(), fixtureConfigurations(t), RunConfig{StartFrom: &resumeFrom})
	require.NoError(t, err)
	require.Equal(t, 2, stats.Considered, "configurations before StartFrom must not be considered")
	require.Equal(t, 2, stats.Solved)

	store := catalog.NewStore(dir)
	require.False(t, store.Exists(puzzle.Configuration{Month: 1, Day: 1, Weekday: 5}))
	require.True(t, store.Exists(resumeFrom))
}

func TestRunConfigurationsStopsOnCancelledContext(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	d := newTestDispatcher(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := d.RunConfigurations(ctx, fixtureConfigurations(t), RunConfig{})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, stats.Considered)
}

func TestRunConfigurationsSkipsAConfigurationHeldByAnotherWorker(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	d := newTestDispatcher(t, dir)

	contested := puzzle.Configuration{Month: 1, Day: 1, Weekday: 5}
	holder := catalog.NewLock(dir, contested)
	ok, err := holder.TryAcquire(context.Background(), catalog.DefaultLockTimeout)
	require.NoError(t, err)
	require.True(t, ok)
	defer holder.Release()

	stats, err := d.RunConfigurations(context.Background(), fixtureConfigurations(t), RunConfig{})
	require.NoError(t, err)
	require.Equal(t, 1, stats.Contested)
	require.Equal(t, 2, stats.Solved)

	store := catalog.NewStore(dir)
	require.False(t, store.Exists(contested))
}
