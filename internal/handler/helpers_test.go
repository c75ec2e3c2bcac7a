package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// newTestServer wires the routes the way cmd/api does, backed by the
// in-memory repositories with two seeded categories.
func newTestServer(t *testing.T) (*echo.Echo, *service.TriviaService) {
	t.Helper()

	categoryRepo := memory.NewCategoryRepository(
		domain.Category{ID: 1, Type: "Science"},
		domain.Category{ID: 2, Type: "Art"},
	)
	questionRepo := memory.NewQuestionRepository()

	svc := service.NewTriviaService(categoryRepo, questionRepo, websocket.NewHub())
	svc.SetRand(rand.New(rand.NewSource(3)))

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	v1 := e.Group("/v1")
	NewCategoryHandler(svc).Register(v1)
	NewQuestionHandler(svc).Register(v1)
	NewQuizHandler(svc).Register(v1)

	return e, svc
}

func seedQuestions(t *testing.T, svc *service.TriviaService, categoryID, n int) {
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

func doRequest(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doRequestWithOrigin(t *testing.T, e *echo.Echo, method, path, origin string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("got status %d, want %d. Body: %s", rec.Code, want, rec.Body.String())
	}
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()

	assertStatus(t, rec, status)

	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	if resp.Error != status {
		t.Errorf("envelope error = %d, want %d", resp.Error, status)
	}
	if resp.Success {
		t.Error("envelope success = true, want false")
	}
	if resp.Message == "" {
		t.Error("envelope message is empty")
	}
}
