package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves all categories in insertion order
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// Category represents a labeled grouping of questions
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
