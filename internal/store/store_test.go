package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStore_CreateAssignsIDs(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first, err := st.Create(ctx, models.Draft{Name: "a", Content: "ca"})
	require.NoError(t, err)
	second, err := st.Create(ctx, models.Draft{Name: "b", Content: "cb"})
	require.NoError(t, err)

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, "a", first.Name)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestStore_ListNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := st.Create(ctx, models.Draft{Name: name, Content: "x"})
		require.NoError(t, err)
	}

	prompts, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 3)
	assert.Equal(t, "c", prompts[0].Name)
	assert.Equal(t, "b", prompts[1].Name)
	assert.Equal(t, "a", prompts[2].Name)
}

func TestStore_Update(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Draft{Name: "a", Description: "d", Content: "ca"})
	require.NoError(t, err)

	updated, err := st.Update(ctx, created.ID, models.Draft{Name: "b", Content: "cb"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "b", updated.Name)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, "cb", updated.Content)
}

func TestStore_UpdateMissing(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Update(context.Background(), 999, models.Draft{Name: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Draft{Name: "a", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, st.Delete(ctx, created.ID))

	prompts, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, prompts)

	assert.ErrorIs(t, st.Delete(ctx, created.ID), ErrNotFound)
}

func TestStore_Get(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Draft{Name: "a", Content: "c"})
	require.NoError(t, err)

	got, err := st.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = st.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_OpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prompts.db")

	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Create(context.Background(), models.Draft{Name: "a", Content: "c"})
	assert.NoError(t, err)
}
