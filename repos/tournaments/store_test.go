package tournaments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

func tournament(id, owner string, updated time.Time) *league.Tournament {
	return &league.Tournament{
		ID:          id,
		Name:        "Liga " + id,
		Sport:       "futbol",
		Owner:       owner,
		ShareSecret: "secret-" + id,
		Teams:       []league.Team{{ID: "t1", Name: "Leones"}},
		CreatedAt:   updated,
		UpdatedAt:   updated,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	at := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	original := tournament("a", "ana_01", at)

	require.NoError(t, store.Create(ctx, original))
	assert.ErrorIs(t, store.Create(ctx, original), ErrAlreadyExists)

	loaded, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
	assert.NotSame(t, original, loaded)

	loaded.Name = "Renamed"
	require.NoError(t, store.Save(ctx, loaded))
	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.Name)
	assert.Equal(t, "ana_01", again.Owner)
	assert.Equal(t, "secret-a", again.ShareSecret)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "a"), ErrNotFound)
	assert.ErrorIs(t, store.Save(ctx, loaded), ErrNotFound)
}

func TestMemoryStoreListByOwner(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Create(ctx, tournament(fmt.Sprintf("ana-%d", i), "ana_01", base.Add(time.Duration(i)*time.Hour))))
	}
	require.NoError(t, store.Create(ctx, tournament("luis-0", "luis", base)))

	count, err := store.CountByOwner(ctx, "ana_01")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	page, err := store.ListByOwner(ctx, "ana_01", 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "ana-4", page[0].ID)
	assert.Equal(t, "ana-3", page[1].ID)

	last, err := store.ListByOwner(ctx, "ana_01", 4, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "ana-0", last[0].ID)

	empty, err := store.ListByOwner(ctx, "ana_01", 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetOwnedHidesOtherOwners(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, tournament("a", "ana_01", time.Now())))

	_, err := GetOwned(ctx, store, "a", "luis")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := GetOwned(ctx, store, "a", "ana_01")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestMutate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, tournament("a", "ana_01", time.Now())))

	t.Run("saves changes", func(t *testing.T) {
		_, err := Mutate(ctx, store, "a", "ana_01", func(tr *league.Tournament) (bool, error) {
			tr.Name = "Changed"
			return true, nil
		})
		require.NoError(t, err)
		stored, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Changed", stored.Name)
	})

	t.Run("discards on error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Mutate(ctx, store, "a", "ana_01", func(tr *league.Tournament) (bool, error) {
			tr.Name = "Broken"
			return true, boom
		})
		assert.ErrorIs(t, err, boom)
		stored, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Changed", stored.Name)
	})

	t.Run("skips save when unchanged", func(t *testing.T) {
		_, err := Mutate(ctx, store, "a", "ana_01", func(tr *league.Tournament) (bool, error) {
			tr.Name = "Not persisted"
			return false, nil
		})
		require.NoError(t, err)
		stored, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Changed", stored.Name)
	})

	t.Run("foreign owner", func(t *testing.T) {
		called := false
		_, err := Mutate(ctx, store, "a", "luis", func(tr *league.Tournament) (bool, error) {
			called = true
			return true, nil
		})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, called)
	})
}
