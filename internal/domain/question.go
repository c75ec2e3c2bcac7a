package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions ordered by ID
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves all questions in a category ordered by ID
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create persists a new question and assigns its ID
	Create(ctx context.Context, question *Question) error

	// Delete removes a question by its ID
	Delete(ctx context.Context, id int) error
}

// Question represents a single trivia item
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
