package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz-round HTTP requests
type QuizHandler struct {
	triviaService *service.TriviaService
	validate      *validator.Validate
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(triviaService *service.TriviaService) *QuizHandler {
	return &QuizHandler{
		triviaService: triviaService,
		validate:      validator.New(),
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(g *echo.Group) {
	g.POST("/quizzes", h.NextQuestion)
}

// QuizCategory identifies the category a round draws from; id 0 draws from
// every category
type QuizCategory struct {
	ID *int `json:"id" validate:"required"`
}

// QuizRequest represents the request for the next quiz question. Both fields
// are required; previous_questions may be empty at the start of a round.
type QuizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// NextQuestion serves a uniformly random question of the chosen category
// that has not been seen this round. Once the round exhausts the category
// the question is null with success status, signalling end-of-round.
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	if err := h.validate.Struct(req); err != nil {
		return errorJSON(c, http.StatusBadRequest)
	}

	question, err := h.triviaService.NextQuizQuestion(c.Request().Context(), *req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
