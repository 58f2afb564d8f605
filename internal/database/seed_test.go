package database_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trivia-backend/internal/database"
	"trivia-backend/internal/database/dbtest"
	"trivia-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedEmbedded(t *testing.T) {
	data, err := database.LoadSeed("")
	require.NoError(t, err)

	require.Len(t, data.Categories, 6)
	assert.Equal(t, "Science", data.Categories[0].Type)
	assert.NotEmpty(t, data.Questions)
	for _, q := range data.Questions {
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Answer)
		assert.GreaterOrEqual(t, q.Difficulty, 1)
		assert.LessOrEqual(t, q.Difficulty, 5)
	}
}

func TestLoadSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := "categories:\n  - {id: 7, type: Music}\nquestions:\n  - {question: \"Who wrote Clair de Lune?\", answer: Debussy, category: 7, difficulty: 3}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	data, err := database.LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []database.SeedCategory{{ID: 7, Type: "Music"}}, data.Categories)
	require.Len(t, data.Questions, 1)
	assert.Equal(t, "Who wrote Clair de Lune?", data.Questions[0].Question)
	assert.Equal(t, "Debussy", data.Questions[0].Answer)
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	_, err := database.ParseSeed(strings.NewReader("categories:\n  - {id: 1, label: Science}\n"))
	assert.Error(t, err)
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := database.LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open seed file")
}

func TestSeedIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	data, err := database.LoadSeed("")
	require.NoError(t, err)

	res, err := database.Seed(context.Background(), db, data)
	require.NoError(t, err)
	assert.Equal(t, len(data.Categories), res.Categories)
	assert.Equal(t, len(data.Questions), res.Questions)

	res, err = database.Seed(context.Background(), db, data)
	require.NoError(t, err)
	assert.Zero(t, res.Categories)
	assert.Zero(t, res.Questions)

	var categories, questions int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Question{}).Count(&questions).Error)
	assert.EqualValues(t, len(data.Categories), categories)
	assert.EqualValues(t, len(data.Questions), questions)
}

func TestSeedKeepsExistingQuestions(t *testing.T) {
	db := dbtest.New(t)
	dbtest.CreateQuestions(t, db, models.Question{Text: "existing", Answer: "yes", Category: 1, Difficulty: 1})

	data, err := database.LoadSeed("")
	require.NoError(t, err)

	res, err := database.Seed(context.Background(), db, data)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Categories)
	assert.Zero(t, res.Questions)
}
