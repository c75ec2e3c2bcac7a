package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func newTestService(t *testing.T) *TriviaService {
	t.Helper()

	categoryRepo := memory.NewCategoryRepository(
		domain.Category{ID: 1, Type: "Science"},
		domain.Category{ID: 2, Type: "Art"},
	)
	questionRepo := memory.NewQuestionRepository()

	svc := NewTriviaService(categoryRepo, questionRepo, websocket.NewHub())
	svc.SetRand(rand.New(rand.NewSource(7)))
	return svc
}

func seedQuestions(t *testing.T, svc *TriviaService, categoryID, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		q := &domain.Question{
			Question:   fmt.Sprintf("Question %d of category %d?", i+1, categoryID),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   categoryID,
			Difficulty: i%5 + 1,
		}
		if err := svc.CreateQuestion(context.Background(), q); err != nil {
			t.Fatalf("Failed to seed question: %v", err)
		}
	}
}

func TestCreateThenListByCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := &domain.Question{
		Question:   "What was Cassius Clay known as?",
		Answer:     "Muhammad Ali",
		Category:   1,
		Difficulty: 4,
	}
	if err := svc.CreateQuestion(ctx, created); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("CreateQuestion did not assign an id")
	}

	result, err := svc.ListByCategory(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if result.Category.Type != "Science" {
		t.Errorf("category label = %q, want %q", result.Category.Type, "Science")
	}

	found := false
	for _, q := range result.Questions {
		if q.ID == created.ID {
			found = true
			if q.Question != created.Question || q.Answer != created.Answer || q.Difficulty != created.Difficulty {
				t.Errorf("stored question %+v does not match created %+v", q, created)
			}
		}
	}
	if !found {
		t.Error("created question missing from category listing")
	}
}

func TestListByCategoryEmptyIsSuccess(t *testing.T) {
	svc := newTestService(t)
	seedQuestions(t, svc, 1, 3)

	result, err := svc.ListByCategory(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListByCategory on an empty category failed: %v", err)
	}
	if len(result.Questions) != 0 {
		t.Errorf("got %d questions, want 0", len(result.Questions))
	}
}

func TestListByCategoryUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ListByCategory(context.Background(), 999)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("got error %v, want ErrCategoryNotFound", err)
	}
}

func TestListQuestionsPagination(t *testing.T) {
	svc := newTestService(t)
	seedQuestions(t, svc, 1, 12)
	ctx := context.Background()

	first, err := svc.ListQuestions(ctx, 1)
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if len(first.Questions) != QuestionsPerPage {
		t.Errorf("page 1 has %d questions, want %d", len(first.Questions), QuestionsPerPage)
	}
	if len(first.Categories) != 2 {
		t.Errorf("page 1 has %d categories, want 2", len(first.Categories))
	}
	for i := 1; i < len(first.Questions); i++ {
		if first.Questions[i].ID <= first.Questions[i-1].ID {
			t.Error("page 1 is not ascending by id")
		}
	}

	second, err := svc.ListQuestions(ctx, 2)
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}
	if len(second.Questions) != 2 {
		t.Errorf("page 2 has %d questions, want 2", len(second.Questions))
	}
	if second.Questions[0].ID <= first.Questions[len(first.Questions)-1].ID {
		t.Error("page 2 overlaps page 1")
	}

	if _, err := svc.ListQuestions(ctx, 3); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("page past the end returned %v, want ErrNoQuestions", err)
	}
}

func TestSearchQuestions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, text := range []string{"Who built this?", "What year was the tower BUILT?", "Who painted it?"} {
		q := &domain.Question{Question: text, Answer: "a", Category: 1, Difficulty: 1}
		if err := svc.CreateQuestion(ctx, q); err != nil {
			t.Fatalf("Failed to seed question: %v", err)
		}
	}

	matched, err := svc.SearchQuestions(ctx, "BUILT")
	if err != nil {
		t.Fatalf("SearchQuestions failed: %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("got %d matches, want 2", len(matched))
	}

	all, err := svc.SearchQuestions(ctx, "")
	if err != nil {
		t.Fatalf("empty-term search failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("empty term matched %d questions, want 3", len(all))
	}

	if _, err := svc.SearchQuestions(ctx, "xyz"); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("unmatched term returned %v, want ErrNoQuestions", err)
	}
}

func TestDeleteQuestionIdempotentInEffect(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	seedQuestions(t, svc, 1, 1)

	if err := svc.DeleteQuestion(ctx, 1); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteQuestion(ctx, 1); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("second delete returned %v, want ErrQuestionNotFound", err)
	}
}

func TestQuizRoundServesEachQuestionOnce(t *testing.T) {
	svc := newTestService(t)
	seedQuestions(t, svc, 1, 5)
	seedQuestions(t, svc, 2, 3)
	ctx := context.Background()

	var previous []int
	for {
		question, err := svc.NextQuizQuestion(ctx, 1, previous)
		if err != nil {
			t.Fatalf("NextQuizQuestion failed: %v", err)
		}
		if question == nil {
			break
		}
		if question.Category != 1 {
			t.Errorf("got question of category %d, want 1", question.Category)
		}
		for _, id := range previous {
			if id == question.ID {
				t.Fatalf("question %d served twice", id)
			}
		}
		previous = append(previous, question.ID)
	}

	if len(previous) != 5 {
		t.Errorf("round served %d questions, want 5", len(previous))
	}
}

func TestQuizAllCategories(t *testing.T) {
	svc := newTestService(t)
	seedQuestions(t, svc, 1, 2)
	seedQuestions(t, svc, 2, 2)
	ctx := context.Background()

	var previous []int
	for {
		question, err := svc.NextQuizQuestion(ctx, AllCategories, previous)
		if err != nil {
			t.Fatalf("NextQuizQuestion failed: %v", err)
		}
		if question == nil {
			break
		}
		previous = append(previous, question.ID)
	}

	if len(previous) != 4 {
		t.Errorf("round served %d questions across all categories, want 4", len(previous))
	}
}

func TestQuizEmptyCandidateSet(t *testing.T) {
	svc := newTestService(t)
	seedQuestions(t, svc, 1, 2)

	question, err := svc.NextQuizQuestion(context.Background(), 1, []int{1, 2})
	if err != nil {
		t.Fatalf("NextQuizQuestion failed: %v", err)
	}
	if question != nil {
		t.Errorf("got question %d from an exhausted category, want nil", question.ID)
	}
}
