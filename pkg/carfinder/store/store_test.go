package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "carfinder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_CreateGet(t *testing.T) {
	s := openTestStore(t)

	created, err := s.Create(SavedSearch{
		Name:     "Cheap EVs",
		Market:   dal.MarketNL,
		Criteria: dal.Criteria{Fuel: "electric", PriceMax: 25000},
		Sort:     pipeline.SortPriceLow,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Cheap EVs", got.Name)
	assert.Equal(t, dal.MarketNL, got.Market)
	assert.Equal(t, dal.Criteria{Fuel: "electric", PriceMax: 25000}, got.Criteria)
	assert.Equal(t, pipeline.SortPriceLow, got.Sort)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_DefaultSort(t *testing.T) {
	s := openTestStore(t)

	created, err := s.Create(SavedSearch{Name: "Anything", Market: dal.MarketDE})
	require.NoError(t, err)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.SortRelevance, got.Sort)
	assert.True(t, got.Criteria.IsZero())
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var tick int
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.Create(SavedSearch{Name: name, Market: dal.MarketNL})
		require.NoError(t, err)
	}

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "first", list[2].Name)
}

func TestStore_ListEmpty(t *testing.T) {
	s := openTestStore(t)

	list, err := s.List()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	created, err := s.Create(SavedSearch{Name: "gone soon", Market: dal.MarketNL})
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))

	_, err = s.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(created.ID), ErrNotFound)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}
