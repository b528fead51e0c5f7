package snapshot

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path, namespace string) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(&SQLiteConfig{Path: path, Namespace: namespace})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite(&SQLiteConfig{})
	assert.Error(t, err)

	_, err = OpenSQLite(nil)
	assert.Error(t, err)
}

func TestOpenSQLiteCreatesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strike.db")
	openTestStore(t, path, "")

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	err = sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'snapshots'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "snapshots", name)
}

func TestSQLiteSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	store := openTestStore(t, filepath.Join(t.TempDir(), "strike.db"), "guild-1")
	ctx := context.Background()

	_, err := store.LoadSnapshot(ctx, &LoadSnapshotInput{})
	require.ErrorIs(t, err, ErrSnapshotNotFound)

	snapshot := fixtureSnapshot(now)
	require.NoError(t, store.SaveSnapshot(ctx, &SaveSnapshotInput{Snapshot: snapshot}))

	loaded, err := store.LoadSnapshot(ctx, &LoadSnapshotInput{})
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	// A second save replaces the row
	updated := fixtureSnapshot(now.Add(time.Hour))
	updated.Standings = updated.Standings[:1]
	require.NoError(t, store.SaveSnapshot(ctx, &SaveSnapshotInput{Snapshot: updated}))

	loaded, err = store.LoadSnapshot(ctx, &LoadSnapshotInput{})
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "strike.db")
	ctx := context.Background()

	first, err := OpenSQLite(&SQLiteConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, first.SaveSnapshot(ctx, &SaveSnapshotInput{Snapshot: fixtureSnapshot(now)}))
	require.NoError(t, first.Close())

	second := openTestStore(t, path, "")
	loaded, err := second.LoadSnapshot(ctx, &LoadSnapshotInput{})
	require.NoError(t, err)
	assert.Len(t, loaded.History, 2)

	other := openTestStore(t, path, "guild-2")
	_, err = other.LoadSnapshot(ctx, &LoadSnapshotInput{})
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSQLiteHonorsCancelledContext(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "strike.db"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveSnapshot(ctx, &SaveSnapshotInput{Snapshot: fixtureSnapshot(time.Now())})
	assert.ErrorIs(t, err, context.Canceled)
}
