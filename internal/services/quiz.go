package services

import (
	"context"
	"errors"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

// AllCategories selects questions from every category in a quiz round.
const AllCategories uint = 0

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion picks a random question from the category that is not in
// previous. It returns nil, nil once every candidate has been asked.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var question models.Question
	if err := query.Order("RANDOM()").Take(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}
