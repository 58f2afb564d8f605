package services

import (
	"context"
	"errors"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

// CategoryCache holds the ordered category list between requests. Categories
// are only written by seeding, so entries expire rather than get invalidated.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.Category, bool)
	Set(ctx context.Context, categories []models.Category)
}

type CategoryService struct {
	db    *gorm.DB
	cache CategoryCache
}

// NewCategoryService creates the service. cache may be nil.
func NewCategoryService(db *gorm.DB, cache CategoryCache) *CategoryService {
	return &CategoryService{db: db, cache: cache}
}

// List returns every category ordered by type. An empty catalog is reported
// as ErrNotFound.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if categories, ok := s.cache.Get(ctx); ok && len(categories) > 0 {
			return categories, nil
		}
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("type").Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		s.cache.Set(ctx, categories)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}
