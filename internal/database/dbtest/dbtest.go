// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"testing"

	"trivia-backend/internal/database"
	"trivia-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated in-memory sqlite database. The pool is pinned to a
// single connection because every new sqlite memory connection starts empty.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func CreateCategories(t testing.TB, db *gorm.DB, types ...string) []models.Category {
	t.Helper()

	categories := make([]models.Category, 0, len(types))
	for _, typ := range types {
		categories = append(categories, models.Category{Type: typ})
	}
	if len(categories) > 0 {
		if err := db.Create(&categories).Error; err != nil {
			t.Fatalf("failed to create categories: %v", err)
		}
	}
	return categories
}

func CreateQuestions(t testing.TB, db *gorm.DB, questions ...models.Question) []models.Question {
	t.Helper()

	if len(questions) > 0 {
		if err := db.Create(&questions).Error; err != nil {
			t.Fatalf("failed to create questions: %v", err)
		}
	}
	return questions
}
