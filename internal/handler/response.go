package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Client-facing failure messages. Internal causes are logged server-side and
// never leak into the body.
const (
	badRequestMessage    = "Bad request."
	notFoundMessage      = "The requested resource does not exist."
	unprocessableMessage = "The request is unprocessable."
	internalErrorMessage = "Something went wrong on the server."
)

// ErrorResponse is the envelope returned for every failure
type ErrorResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// MessageResponse is the envelope returned for create and delete successes
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CategoryListResponse is the body of the category catalog endpoint
type CategoryListResponse struct {
	Success            bool              `json:"success"`
	Categories         []domain.Category `json:"categories"`
	NumberOfCategories int               `json:"number_of_categories"`
}

// QuestionListResponse is the body of the listing, search and
// category-scoped question endpoints
type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      []domain.Category `json:"categories,omitempty"`
	CurrentCategory *string           `json:"current_category"`
}

// QuizResponse is the body of the quiz endpoint; Question is null once the
// round has exhausted the category
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

func errorJSON(c echo.Context, status int) error {
	return c.JSON(status, ErrorResponse{
		Error:   status,
		Message: messageFor(status),
		Success: false,
	})
}

func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return badRequestMessage
	case http.StatusNotFound:
		return notFoundMessage
	case http.StatusUnprocessableEntity:
		return unprocessableMessage
	default:
		return internalErrorMessage
	}
}

// HTTPErrorHandler keeps the error envelope on errors raised outside the
// handlers, such as unknown routes or disallowed methods
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if err := errorJSON(c, status); err != nil {
		c.Logger().Error(err)
	}
}
