package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediashelf/internal/domain/model"
)

func TestCategoryStoreBySection(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	store := NewCategoryStore(db)
	ctx := context.Background()

	for _, c := range []model.Category{
		{Section: model.SectionMusic, Category: "rock", AddedAt: time.Now()},
		{Section: model.SectionMusic, Category: "jazz", AddedAt: time.Now()},
		{Section: model.SectionBook, Category: "sci-fi", AddedAt: time.Now()},
	} {
		_, err := store.Insert(ctx, &c)
		require.NoError(t, err)
	}

	music, err := store.BySection(ctx, model.SectionMusic)
	require.NoError(t, err)
	assert.Len(t, music, 2)

	// Sections match exactly, never as a prefix or substring.
	none, err := store.BySection(ctx, "mus")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCategoryStoreDelete(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	store := NewCategoryStore(db)
	ctx := context.Background()

	id, err := store.Insert(ctx, &model.Category{
		Section:  model.SectionBlog,
		Category: "engineering",
		AddedAt:  time.Now(),
	})
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = store.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	deleted, err = store.Delete(ctx, "not-an-id")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
