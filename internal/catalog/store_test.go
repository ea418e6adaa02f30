package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	yaml "github.com/goccy/go-yaml"

	"github.com/calpuzzle/calpuzzle/internal/geom"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

func fixturePlacements(t *testing.T) []solver.Placement {
	t.Helper()
	offsetA, err := geom.NewCell(0, 0)
	require.NoError(t, err)
	offsetB, err := geom.NewCell(3, 0)
	require.NoError(t, err)
	return []solver.Placement{
		{Piece: 'A', Offset: offsetA, Rotation: 0, Mirrored: false},
		{Piece: 'B', Offset: offsetB, Rotation: 90, Mirrored: true},
	}
}

func TestStoreWriteReadRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewStore(dir)
	cfg := puzzle.Configuration{Month: 1, Day: 1, Weekday: 5}

	require.False(t, store.Exists(cfg))

	want := fixturePlacements(t)
	require.NoError(t, store.Write(cfg, want))
	require.True(t, store.Exists(cfg))

	got, err := store.Read(cfg)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// No .tmp files should survive a successful write.
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestStoreReadMigratesLegacyBareArrayPayload(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := puzzle.Configuration{Month: 3, Day: 15, Weekday: 2}

	legacy := []RecordPart{
		{Name: "A", XOffset: 0, YOffset: 0, Rotation: 0, IsMirrored: false},
		{Name: "J", XOffset: 2, YOffset: 1, Rotation: 180, IsMirrored: true},
	}
	payload, err := yaml.MarshalWithOptions(legacy, yaml.Indent(2))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, cfg.String()+".yaml"), payload, 0o644))

	store := NewStore(dir)
	got, err := store.Read(cfg)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, byte('A'), got[0].Piece)
	require.Equal(t, byte('J'), got[1].Piece)
	require.Equal(t, 180, got[1].Rotation)
	require.True(t, got[1].Mirrored)
}

func TestStoreReadUnknownConfigurationIsStoreIOError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewStore(dir)
	_, err := store.Read(puzzle.Configuration{Month: 6, Day: 6, Weekday: 6})
	require.ErrorIs(t, err, ErrStoreIO)
}
