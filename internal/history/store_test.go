package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ptuyizere/weatherapp-vercel/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	base := time.Date(2024, time.June, 6, 12, 0, 0, 0, time.UTC)
	fake := clockwork.NewFakeClockAt(base)
	SetClock(fake)
	defer SetClock(nil)

	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "london", domain.DetailFull, true))
	fake.Advance(time.Minute)
	require.NoError(t, store.Record(ctx, "atlantis", domain.DetailNone, false))
	fake.Advance(time.Minute)
	require.NoError(t, store.Record(ctx, "tokyo", domain.DetailPartial, true))

	rows, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Newest first.
	assert.Equal(t, "tokyo", rows[0].City)
	assert.Equal(t, "partial", rows[0].Detail)
	assert.True(t, rows[0].Succeeded)
	assert.Equal(t, base.Add(2*time.Minute), rows[0].CreatedAt.UTC())

	assert.Equal(t, "atlantis", rows[1].City)
	assert.False(t, rows[1].Succeeded)

	assert.Equal(t, "london", rows[2].City)
	assert.Equal(t, "full", rows[2].Detail)
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, city := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, store.Record(ctx, city, domain.DetailNone, true))
	}

	rows, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestStore_RecentEmpty(t *testing.T) {
	store := openTestStore(t)

	rows, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_Ping(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestStore_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(context.Background(), "london", domain.DetailNone, true))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "london", rows[0].City)
}
