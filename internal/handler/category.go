package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	triviaService *service.TriviaService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(triviaService *service.TriviaService) *CategoryHandler {
	return &CategoryHandler{
		triviaService: triviaService,
	}
}

// Register registers the category routes
func (h *CategoryHandler) Register(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/categories/:id/questions", h.ListCategoryQuestions)
}

// ListCategories returns the full category catalog. An empty catalog is a
// success with zero categories.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.triviaService.ListCategories(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, CategoryListResponse{
		Success:            true,
		Categories:         categories,
		NumberOfCategories: len(categories),
	})
}

// ListCategoryQuestions returns every question of one category. A known
// category with no questions is a success with an empty list.
func (h *CategoryHandler) ListCategoryQuestions(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	result, err := h.triviaService.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return errorJSON(c, http.StatusNotFound)
		}
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	label := result.Category.Type
	return c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  len(result.Questions),
		CurrentCategory: &label,
	})
}
