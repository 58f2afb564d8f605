package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	log             *zap.Logger
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, categoryService: categoryService, log: log}
}

// searchTermKey switches POST /questions from create to search.
const searchTermKey = "searchTerm"

// CreateQuestionRequest is the create payload. None of the fields is
// validated beyond its JSON type.
type CreateQuestionRequest struct {
	Question   *string `json:"question" example:"Who discovered penicillin?"`
	Answer     *string `json:"answer" example:"Alexander Fleming"`
	Difficulty int     `json:"difficulty" example:"3"`
	Category   uint    `json:"category" example:"1"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page ordered by id, with every category. A page past the end is a 404.
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	questions, err := h.questionService.List(ctx)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	current := services.Paginate(pageParam(c), questions)
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	categories, err := h.categoryService.List(ctx)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, QuestionsResponse{Success: true, Questions: current, Categories: categories})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Any failure, including an unknown id, is reported as 422.
// @Tags         questions
// @Produce      json
// @Param        id   path  int true  "Question ID"
// @Param        page query int false "Page of the remaining questions" default(1)
// @Success      200 {object} DeletedResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c)
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	if err := h.questionService.Delete(ctx, questionID); err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	questions, err := h.questionService.List(ctx)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{
		Success:   true,
		Deleted:   questionID,
		Questions: services.Paginate(pageParam(c), questions),
	})
}

// PostQuestion godoc
// @Summary      Create or search questions
// @Description  A body carrying "searchTerm" runs a case-insensitive substring search; any other object creates a question.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data, or {\"searchTerm\": \"...\"}"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} SubmittedResponse
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) PostQuestion(c *gin.Context) {
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

	if _, ok := fields[searchTermKey]; ok {
		h.searchQuestions(c, raw)
		return
	}
	h.createQuestion(c, raw)
}

func (h *QuestionHandler) createQuestion(c *gin.Context, raw []byte) {
	var req CreateQuestionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	ctx := c.Request.Context()
	question, err := h.questionService.Create(ctx, services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	questions, err := h.questionService.List(ctx)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	h.log.Info("question created", zap.Uint("id", question.ID), zap.Uint("category", question.Category))
	c.JSON(http.StatusOK, SubmittedResponse{
		Success:   true,
		Submitted: question.ID,
		Questions: services.Paginate(pageParam(c), questions),
	})
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, raw []byte) {
	var req SearchQuestionsRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}

	questions, err := h.questionService.Search(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			abortWithError(c, http.StatusNotFound)
			return
		}
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Success: true, Questions: services.Paginate(pageParam(c), questions)})
}
