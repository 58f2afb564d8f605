package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"trivia-backend/internal/database"
	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var exportCSVHeader = []string{"id", "category", "question", "answer", "difficulty"}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  Dumps every category and question. The yaml form can be fed back to the seed command.
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Produce      application/yaml
// @Param        format query string false "json, csv or yaml" default(json)
// @Success      200 {object} database.SeedData
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" && format != "yaml" {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	questions, err := h.questionService.List(ctx)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}
	categories, err := h.categoryService.List(ctx)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	h.log.Info("questions exported", zap.String("format", format), zap.Int("questions", len(questions)))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="questions.csv"`)
		c.Status(http.StatusOK)
		if err := writeQuestionsCSV(c.Writer, questions, categories); err != nil {
			h.log.Error("write csv export", zap.Error(err))
		}
	case "yaml":
		out, err := yaml.Marshal(exportData(questions, categories))
		if err != nil {
			fail(c, h.log, http.StatusUnprocessableEntity, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="questions.yaml"`)
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
	default:
		c.Header("Content-Disposition", `attachment; filename="questions.json"`)
		c.JSON(http.StatusOK, exportData(questions, categories))
	}
}

func exportData(questions []models.Question, categories []models.Category) database.SeedData {
	data := database.SeedData{
		Categories: make([]database.SeedCategory, 0, len(categories)),
		Questions:  make([]database.SeedQuestion, 0, len(questions)),
	}
	for _, cat := range categories {
		data.Categories = append(data.Categories, database.SeedCategory{ID: cat.ID, Type: cat.Type})
	}
	for _, q := range questions {
		data.Questions = append(data.Questions, database.SeedQuestion{
			Question:   q.Text,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		})
	}
	return data
}

// writeQuestionsCSV writes one row per question. The category column holds the
// category type, or the raw id when the category no longer exists.
func writeQuestionsCSV(w io.Writer, questions []models.Question, categories []models.Category) error {
	types := make(map[uint]string, len(categories))
	for _, cat := range categories {
		types[cat.ID] = cat.Type
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportCSVHeader); err != nil {
		return err
	}
	for _, q := range questions {
		category, ok := types[q.Category]
		if !ok {
			category = strconv.FormatUint(uint64(q.Category), 10)
		}
		row := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			category,
			q.Text,
			q.Answer,
			strconv.Itoa(q.Difficulty),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", q.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
