package services_test

import (
	"context"
	"testing"

	"trivia-backend/internal/database/dbtest"
	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	categories []models.Category
	gets, sets int
}

func (m *memoryCache) Get(context.Context) ([]models.Category, bool) {
	m.gets++
	return m.categories, m.categories != nil
}

func (m *memoryCache) Set(_ context.Context, categories []models.Category) {
	m.sets++
	m.categories = categories
}

func TestCategoryListOrderedByType(t *testing.T) {
	db := dbtest.New(t)
	dbtest.CreateCategories(t, db, "Sports", "Art", "Science")

	categories, err := services.NewCategoryService(db, nil).List(context.Background())
	require.NoError(t, err)

	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	assert.Equal(t, []string{"Art", "Science", "Sports"}, types)
}

func TestCategoryListEmptyIsNotFound(t *testing.T) {
	db := dbtest.New(t)

	_, err := services.NewCategoryService(db, nil).List(context.Background())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCategoryListUsesCache(t *testing.T) {
	db := dbtest.New(t)
	dbtest.CreateCategories(t, db, "History")
	cache := &memoryCache{}
	svc := services.NewCategoryService(db, cache)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// rows added behind the cache stay invisible until it expires
	dbtest.CreateCategories(t, db, "Art")
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 2, cache.gets)
}

func TestCategoryGet(t *testing.T) {
	db := dbtest.New(t)
	created := dbtest.CreateCategories(t, db, "Geography")
	svc := services.NewCategoryService(db, nil)

	category, err := svc.Get(context.Background(), created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Geography", category.Type)

	_, err = svc.Get(context.Background(), created[0].ID+100)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
