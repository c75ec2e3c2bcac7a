package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	triviaService *service.TriviaService
	validate      *validator.Validate
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(triviaService *service.TriviaService) *QuestionHandler {
	return &QuestionHandler{
		triviaService: triviaService,
		validate:      validator.New(),
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(g *echo.Group) {
	g.GET("/questions", h.ListQuestions)
	g.POST("/questions", h.CreateQuestion)
	g.DELETE("/questions/:id", h.DeleteQuestion)
	g.POST("/questions/search", h.SearchQuestions)
}

// ListQuestions returns one 10-question page of the id-ordered listing plus
// the category catalog. An empty page is a 404, not an empty success.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return errorJSON(c, http.StatusBadRequest)
		}
		page = parsed
	}

	result, err := h.triviaService.ListQuestions(c.Request().Context(), page)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			return errorJSON(c, http.StatusNotFound)
		}
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  len(result.Questions),
		Categories:      result.Categories,
		CurrentCategory: nil,
	})
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   *int   `json:"category" validate:"required"`
	Difficulty *int   `json:"difficulty" validate:"required"`
}

// CreateQuestion persists a new question. Repeated submissions create
// duplicates; that is the accepted form-submit contract.
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	if err := h.validate.Struct(req); err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	question := &domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}

	if err := h.triviaService.CreateQuestion(c.Request().Context(), question); err != nil {
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Question created successfully.",
	})
}

// DeleteQuestion removes a question. A second delete of the same id is a
// 404, the expected terminal state.
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	if err := h.triviaService.DeleteQuestion(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return errorJSON(c, http.StatusNotFound)
		}
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Question deleted successfully.",
	})
}

// SearchQuestionsRequest represents the search request body
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions returns every question whose text contains the term
// case-insensitively. An empty term matches everything; zero matches is a
// 404.
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}
	if req.SearchTerm == nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	questions, err := h.triviaService.SearchQuestions(c.Request().Context(), *req.SearchTerm)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			return errorJSON(c, http.StatusNotFound)
		}
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}
