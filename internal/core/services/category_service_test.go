package services

import (
	"context"
	"testing"

	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategorySlugifiesName(t *testing.T) {
	svc := NewCategoryService(repositories.NewCategoryRepository(setupTestDB(t)))

	category, err := svc.CreateCategory(context.Background(), &CategoryInput{
		Name: "Home & Garden",
	})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", category.Slug)
	assert.True(t, category.IsActive)
	assert.Nil(t, category.ParentID)
}

func TestUpdateCategoryRegeneratesSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))

	category, err := svc.CreateCategory(context.Background(), &CategoryInput{Name: "Books"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(context.Background(), category.ID, &CategoryInput{Name: "Used Books"})
	require.NoError(t, err)
	assert.Equal(t, "Used Books", updated.Name)
	assert.Equal(t, "used-books", updated.Slug)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(repositories.NewCategoryRepository(setupTestDB(t)))

	_, err := svc.UpdateCategory(context.Background(), 404, &CategoryInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategoryHidesItFromListing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))

	category, err := svc.CreateCategory(context.Background(), &CategoryInput{Name: "Toys"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)

	// Soft delete: the row still exists
	var stored models.Category
	require.NoError(t, db.First(&stored, category.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(repositories.NewCategoryRepository(setupTestDB(t)))

	err := svc.DeleteCategory(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
