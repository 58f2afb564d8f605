package handlers

import (
	"errors"
	"net/http"

	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
	log             *zap.Logger
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService, log: log}
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories ordered by type. An empty catalog is a 404.
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			abortWithError(c, http.StatusNotFound)
			return
		}
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Description  Questions whose category equals the path id, ten per page.
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true   "Category ID"
// @Param        page query int  false  "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      422 {object} ErrorResponse
// @Router       /category/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := idParam(c)
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	category, err := h.categoryService.Get(ctx, categoryID)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	questions, err := h.questionService.ByCategory(ctx, category.ID)
	if err != nil {
		fail(c, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:   true,
		Questions: services.Paginate(pageParam(c), questions),
		Category:  *category,
	})
}
