// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubaudit/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{HistoryDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	id, err := store.Record(ctx, Run{
		StartedAt:  started,
		RosterPath: "roster.xlsx",
		PubsPath:   "pubs.xlsx",
		OutputPath: "tagged.xlsx",
		RosterSize: 12,
		Rows:       40,
		Lead:       5,
		Coauthor:   9,
		Unmatched:  26,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, id, got.ID)
	assert.True(t, got.StartedAt.Equal(started))
	assert.Equal(t, "pubs.xlsx", got.PubsPath)
	assert.Equal(t, 40, got.Rows)
	assert.Equal(t, 5, got.Lead)
	assert.Equal(t, 9, got.Coauthor)
	assert.Equal(t, 26, got.Unmatched)
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, Run{PubsPath: "pubs.xlsx", Rows: i})
		require.NoError(t, err)
	}

	runs, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(5), runs[0].ID)
	assert.Equal(t, int64(3), runs[2].ID)
}

func TestListEmptyStore(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{HistoryDir: dir}

	store, err := NewStore(cfg)
	require.NoError(t, err)
	_, err = store.Record(context.Background(), Run{PubsPath: "a.xlsx"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
