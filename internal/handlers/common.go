package handlers

import (
	"net/http"
	"strconv"

	"trivia-backend/internal/middleware"
	"trivia-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

type CategoriesResponse struct {
	Success    bool              `json:"success" example:"true"`
	Categories []models.Category `json:"categories"`
}

type QuestionsResponse struct {
	Success    bool              `json:"success" example:"true"`
	Questions  []models.Question `json:"questions"`
	Categories []models.Category `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success   bool              `json:"success" example:"true"`
	Questions []models.Question `json:"questions"`
	Category  models.Category   `json:"category"`
}

type DeletedResponse struct {
	Success   bool              `json:"success" example:"true"`
	Deleted   uint              `json:"deleted" example:"5"`
	Questions []models.Question `json:"questions"`
}

type SubmittedResponse struct {
	Success   bool              `json:"success" example:"true"`
	Submitted uint              `json:"submitted" example:"24"`
	Questions []models.Question `json:"questions"`
}

type SearchResponse struct {
	Success   bool              `json:"success" example:"true"`
	Questions []models.Question `json:"questions"`
}

// QuizResponse carries a null question once the round is exhausted.
type QuizResponse struct {
	Success  bool             `json:"success" example:"true"`
	Question *models.Question `json:"question"`
}

func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

// NotFound answers requests for routes that do not exist.
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound)
}

// MethodNotAllowed answers known routes called with the wrong verb.
func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed)
}

// Unprocessable is the catch-all answer, also used after a recovered panic.
func Unprocessable(c *gin.Context) {
	abortWithError(c, http.StatusUnprocessableEntity)
}

func fail(c *gin.Context, log *zap.Logger, status int, err error) {
	log.Warn("request failed",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	abortWithError(c, status)
}

// pageParam reads ?page=, falling back to 1 when absent or not a number.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// idParam parses a numeric path id. ok is false when the segment is not an
// unsigned integer, which is treated as a route mismatch.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
