package database

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"trivia-backend/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData is the on-disk question bank. The export endpoint writes the same
// shape.
type SeedData struct {
	Categories []SeedCategory `json:"categories" yaml:"categories"`
	Questions  []SeedQuestion `json:"questions" yaml:"questions"`
}

type SeedCategory struct {
	ID   uint   `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

type SeedQuestion struct {
	Question   string `json:"question" yaml:"question"`
	Answer     string `json:"answer" yaml:"answer"`
	Category   uint   `json:"category" yaml:"category"`
	Difficulty int    `json:"difficulty" yaml:"difficulty"`
}

type SeedResult struct {
	Categories int
	Questions  int
}

// LoadSeed reads a seed document from path, or the embedded default set when
// path is empty.
func LoadSeed(path string) (*SeedData, error) {
	if path == "" {
		return ParseSeed(bytes.NewReader(defaultSeed))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

func ParseSeed(r io.Reader) (*SeedData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data SeedData
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &data, nil
}

// Seed fills empty tables from data. A table that already holds rows is left
// untouched, so running it repeatedly is safe.
func Seed(ctx context.Context, db *gorm.DB, data *SeedData) (SeedResult, error) {
	var res SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(data.Categories) > 0 {
			categories := make([]models.Category, 0, len(data.Categories))
			for _, c := range data.Categories {
				categories = append(categories, models.Category{ID: c.ID, Type: c.Type})
			}
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("insert categories: %w", err)
			}
			res.Categories = len(categories)
		}

		if err := tx.Model(&models.Question{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(data.Questions) > 0 {
			questions := make([]models.Question, 0, len(data.Questions))
			for _, q := range data.Questions {
				questions = append(questions, models.Question{
					Text:       q.Question,
					Answer:     q.Answer,
					Category:   q.Category,
					Difficulty: q.Difficulty,
				})
			}
			if err := tx.CreateInBatches(&questions, 100).Error; err != nil {
				return fmt.Errorf("insert questions: %w", err)
			}
			res.Questions = len(questions)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
