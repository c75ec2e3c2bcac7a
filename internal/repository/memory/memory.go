// Package memory provides in-memory repository implementations. They back
// the service and handler tests and can stand in for Postgres during local
// development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository in memory
type CategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category
}

// NewCategoryRepository creates an in-memory category repository seeded with
// the given categories
func NewCategoryRepository(categories ...domain.Category) *CategoryRepository {
	return &CategoryRepository{
		categories: append([]domain.Category(nil), categories...),
	}
}

// List retrieves all categories in insertion order
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Category(nil), r.categories...), nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if category.ID == id {
			c := category
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// QuestionRepository implements domain.QuestionRepository in memory
type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[int]domain.Question
	nextID    int
}

// NewQuestionRepository creates an empty in-memory question repository
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		questions: make(map[int]domain.Question),
		nextID:    1,
	}
}

// List retrieves all questions ordered by ID
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(domain.Question) bool { return true }), nil
}

// ListByCategory retrieves all questions in a category ordered by ID
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	question, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &question, nil
}

// Create persists a new question and assigns its ID
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = *question
	return nil
}

// Delete removes a question by its ID
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

// sorted returns the questions matching keep, ascending by ID. Callers must
// hold at least a read lock.
func (r *QuestionRepository) sorted(keep func(domain.Question) bool) []domain.Question {
	questions := make([]domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if keep(q) {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions
}
