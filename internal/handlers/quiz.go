package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"trivia-backend/internal/metrics"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizService *services.QuizService
	log         *zap.Logger
}

func NewQuizHandler(quizService *services.QuizService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, log: log}
}

type QuizCategory struct {
	ID   uint   `json:"id" example:"0"`
	Type string `json:"type,omitempty" example:"Science"`
}

type PlayQuizRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint       `json:"previous_questions" example:"1,4"`
}

// PlayQuiz godoc
// @Summary      Next quiz question
// @Description  Random question from the category (id 0 for all) not among previous_questions. question is null once none remain.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		fail(c, h.log, http.StatusBadRequest, err)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	category, err := decodeAny(fields["quiz_category"])
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}
	if !truthy(category) {
		abortWithError(c, http.StatusNotFound)
		return
	}
	previousRaw, ok := fields["previous_questions"]
	if !ok || isJSONNull(previousRaw) {
		abortWithError(c, http.StatusNotFound)
		return
	}

	categoryID, err := quizCategoryID(category)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}
	var previous []uint
	if err := json.Unmarshal(previousRaw, &previous); err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, previous)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	if question == nil {
		metrics.QuizQuestionsServed.WithLabelValues("exhausted").Inc()
	} else {
		metrics.QuizQuestionsServed.WithLabelValues("question").Inc()
	}
	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}

// decodeAny decodes a raw field keeping numbers as json.Number. A missing
// field decodes to nil.
func decodeAny(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// truthy follows JSON-value truthiness: null, false, zero, "" and empty
// containers are all false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case string:
		return t != ""
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

// quizCategoryID extracts the id of a quiz_category object. The id may be a
// JSON number or a numeric string.
func quizCategoryID(v any) (uint, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("quiz_category must be an object")
	}

	var text string
	switch id := obj["id"].(type) {
	case json.Number:
		text = id.String()
	case string:
		text = id
	case nil:
		return 0, fmt.Errorf("quiz_category.id is required")
	default:
		return 0, fmt.Errorf("quiz_category.id has unsupported type %T", id)
	}

	id, err := strconv.ParseUint(text, 10, 64)
	if err == nil {
		return uint(id), nil
	}
	// A JSON number with a zero fraction, like 1.0, still names category 1.
	if n, ok := obj["id"].(json.Number); ok {
		if f, ferr := n.Float64(); ferr == nil && f >= 0 && f <= math.MaxUint32 && f == math.Trunc(f) {
			return uint(f), nil
		}
	}
	return 0, fmt.Errorf("quiz_category.id: %w", err)
}
