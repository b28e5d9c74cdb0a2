package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/tally/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test stores backed by a temporary data file.
func createTestStores(t *testing.T) *Stores {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	stores, err := Open(dbPath)
	require.NoError(t, err, "Failed to open stores")
	require.NoError(t, stores.EnsureSchema(context.Background()), "Failed to create schema")

	return stores
}

func TestCategoryStore_Add(t *testing.T) {
	stores := createTestStores(t)
	ctx := context.Background()

	first, err := stores.Categories.Add(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food", first.Name)
	assert.Positive(t, first.ID)
	assert.False(t, first.IsDeleted)

	second, err := stores.Categories.Add(ctx, "Transport")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "each category gets a fresh id")

	got, err := stores.Categories.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Name)
	assert.False(t, got.IsDeleted)
}

func TestCategoryStore_AddDuplicateName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		add      string
		wantLen  int
	}{
		{
			name:    "no pre-existing duplicate",
			add:     "Food",
			wantLen: 1,
		},
		{
			name:     "duplicate name is accepted",
			existing: []string{"Food"},
			add:      "Food",
			wantLen:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := createTestStores(t)
			ctx := context.Background()

			for _, name := range tt.existing {
				_, err := stores.Categories.Add(ctx, name)
				require.NoError(t, err)
			}

			cat, err := stores.Categories.Add(ctx, tt.add)
			require.NoError(t, err, "no uniqueness constraint is declared")
			assert.Equal(t, tt.add, cat.Name)

			all, err := stores.Categories.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, tt.wantLen)
		})
	}
}

func TestCategoryStore_GetAll(t *testing.T) {
	stores := createTestStores(t)
	ctx := context.Background()

	_, err := stores.Categories.GetAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound, "empty table is an absent result")
	assert.NotErrorIs(t, err, common.ErrStorage)

	for _, name := range []string{"Test Category 1", "Test Category 2", "Test Category 3"} {
		_, err := stores.Categories.Add(ctx, name)
		require.NoError(t, err)
	}

	categories, err := stores.Categories.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].ID, categories[i].ID, "ordered by primary key")
	}
	assert.Equal(t, "Test Category 1", categories[0].Name)
	assert.Equal(t, "Test Category 3", categories[2].Name)
}

func TestCategoryStore_SoftDelete(t *testing.T) {
	stores := createTestStores(t)
	ctx := context.Background()

	keep, err := stores.Categories.Add(ctx, "Keep")
	require.NoError(t, err)
	drop, err := stores.Categories.Add(ctx, "Drop")
	require.NoError(t, err)

	deletedID, err := stores.Categories.SoftDelete(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, drop.ID, deletedID)

	_, err = stores.Categories.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, common.ErrNotFound, "soft-deleted category is not retrievable")

	all, err := stores.Categories.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	// Deleting again is a no-op that still reports success.
	deletedID, err = stores.Categories.SoftDelete(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, drop.ID, deletedID)
}

// SoftDelete does not verify that the row exists.
func TestCategoryStore_SoftDeleteUnknownID(t *testing.T) {
	stores := createTestStores(t)

	deletedID, err := stores.Categories.SoftDelete(context.Background(), 9999)
	require.NoError(t, err)
	assert.Equal(t, int64(9999), deletedID)
}

func TestCategoryStore_GetByIDMissing(t *testing.T) {
	stores := createTestStores(t)

	cat, err := stores.Categories.GetByID(context.Background(), 42)
	assert.Nil(t, cat)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCategoryStore_EnsureSchemaIdempotent(t *testing.T) {
	stores := createTestStores(t)
	ctx := context.Background()

	_, err := stores.Categories.Add(ctx, "Survivor")
	require.NoError(t, err)

	require.NoError(t, stores.Categories.EnsureSchema(ctx))
	require.NoError(t, stores.Categories.EnsureSchema(ctx))

	all, err := stores.Categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "repeat schema creation keeps existing rows")
}

func TestCategoryStore_MissingSchemaIsStorageError(t *testing.T) {
	store, err := NewCategoryStore(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)

	cat, err := store.Add(context.Background(), "Food")
	assert.Nil(t, cat, "no category is returned on failure")
	assert.ErrorIs(t, err, common.ErrStorage)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}
