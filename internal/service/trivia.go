package service

import (
	"context"
	"math/rand"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/selection"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// QuestionsPerPage is the fixed page size for question listing
const QuestionsPerPage = 10

// AllCategories selects questions across every category in quiz mode
const AllCategories = 0

// TriviaService orchestrates the category catalog, question store and quiz
// selection
type TriviaService struct {
	categoryRepo domain.CategoryRepository
	questionRepo domain.QuestionRepository
	hub          *websocket.Hub
	rng          *rand.Rand
}

// NewTriviaService creates a new trivia service. The hub may be nil when no
// change feed is wanted.
func NewTriviaService(categoryRepo domain.CategoryRepository, questionRepo domain.QuestionRepository, hub *websocket.Hub) *TriviaService {
	return &TriviaService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		hub:          hub,
	}
}

// SetRand pins the quiz draw to a deterministic source. The default draws
// from the shared math/rand source.
func (s *TriviaService) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// QuestionPage is one page of the question listing plus the category catalog
// shown alongside it
type QuestionPage struct {
	Questions  []domain.Question
	Categories []domain.Category
}

// CategoryQuestions is the full question list of one category
type CategoryQuestions struct {
	Category  domain.Category
	Questions []domain.Question
}

// ListCategories retrieves the full category catalog
func (s *TriviaService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// ListQuestions returns the given 1-based page of the id-ordered question
// list. An empty page, including any page past the end, is ErrNoQuestions.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	window := selection.Paginate(questions, page, QuestionsPerPage)
	if len(window) == 0 {
		return nil, ErrNoQuestions
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{Questions: window, Categories: categories}, nil
}

// SearchQuestions returns every question whose text contains term under
// case-insensitive comparison. An empty term matches everything; zero
// matches is ErrNoQuestions.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := selection.FilterByTerm(questions, term)
	if len(matched) == 0 {
		return nil, ErrNoQuestions
	}
	return matched, nil
}

// ListByCategory returns every question of a category along with the
// resolved category. A category with no questions is a valid empty result;
// an unknown category is domain.ErrCategoryNotFound.
func (s *TriviaService) ListByCategory(ctx context.Context, categoryID int) (*CategoryQuestions, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return &CategoryQuestions{Category: *category, Questions: questions}, nil
}

// CreateQuestion persists a new question and announces it on the change feed
func (s *TriviaService) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast("question_created", question)
	}
	return nil
}

// DeleteQuestion removes a question and announces the removal on the change
// feed. Deleting an unknown id is domain.ErrQuestionNotFound.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast("question_deleted", map[string]int{"id": id})
	}
	return nil
}

// NextQuizQuestion picks a uniformly random question of the category that is
// not among the previously served ids. Category AllCategories draws across
// the whole store. An exhausted candidate set yields nil with no error.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var questions []domain.Question
	var err error

	if categoryID == AllCategories {
		questions, err = s.questionRepo.List(ctx)
	} else {
		questions, err = s.questionRepo.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	candidates := selection.Exclude(questions, previous)
	return selection.PickRandom(candidates, s.rng), nil
}
