package recipes

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/darkroomtools/easeld/border"
	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Connect(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "recipes.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	store, err := NewStore(conn)
	require.NoError(t, err)
	return store
}

func sampleInput() border.Input {
	return border.Input{
		Paper:        border.Paper{Mode: border.PaperNamed, Label: "8x10"},
		Orientation:  border.Orientation{Manual: true, Landscape: true},
		Ratio:        border.Ratio{Mode: border.RatioNamed, Label: "2:3 (35mm)"},
		RatioFlipped: true,
		MinBorder:    0.75,
		EnableOffset: true,

		HorizontalOffset: 0.25,
		VerticalOffset:   -0.5,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "lith contact sheet", "grade 2, split filter", sampleInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Notes, got.Notes)
	assert.Equal(t, sampleInput(), got.Input)
}

func TestStoreListIsNameOrdered(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, name := range []string{"zone test", "aperture ladder", "midtones"} {
		_, err := store.Create(ctx, name, "", sampleInput())
		require.NoError(t, err)
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "aperture ladder", list[0].Name)
	assert.Equal(t, "midtones", list[1].Name)
	assert.Equal(t, "zone test", list[2].Name)
}

func TestStoreUpdate(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "before", "", sampleInput())
	require.NoError(t, err)

	in := sampleInput()
	in.MinBorder = 1.25
	updated, err := store.Update(ctx, created.ID, "after", "reworked", in)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, 1.25, updated.Input.MinBorder)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Name, got.Name)
	assert.Equal(t, 1.25, got.Input.MinBorder)
}

func TestStoreUpdateMissingRecipe(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	// the transactional read fails and nothing may be left behind
	_, err := store.Update(ctx, "no-such-id", "name", "", sampleInput())
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStoreDeleteAndMissing(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "ephemeral", "", sampleInput())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsEmptyName(t *testing.T) {
	store := testStore(t)

	_, err := store.Create(context.Background(), "   ", "", sampleInput())
	assert.ErrorIs(t, err, ErrInvalidName)
}
