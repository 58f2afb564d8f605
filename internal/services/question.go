package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionInput carries the create payload as received. Text fields are
// pointers so an absent field can be told apart from an empty one.
type QuestionInput struct {
	Question   *string
	Answer     *string
	Difficulty int
	Category   uint
}

// List returns all questions ordered by id.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	question, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Delete(question)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Create stores a new question. Difficulty and category are stored as given;
// only the question and answer text must be present.
func (s *QuestionService) Create(ctx context.Context, in QuestionInput) (*models.Question, error) {
	if in.Question == nil {
		return nil, fmt.Errorf("%w: question text is required", ErrUnprocessable)
	}
	if in.Answer == nil {
		return nil, fmt.Errorf("%w: answer is required", ErrUnprocessable)
	}

	question := models.Question{
		Text:       *in.Question,
		Answer:     *in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches term as a case-insensitive substring of the question text.
// Both sides are folded by the database LOWER so they follow the same rules
// (ASCII only on sqlite). An empty term matches every question; no match at
// all is ErrNotFound.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}

func (s *QuestionService) ByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
