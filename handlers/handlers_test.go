package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"triviaapp/models"
	"triviaapp/services"
	"triviaapp/store"
)

type testApp struct {
	router     *chi.Mux
	questions  *store.MemoryQuestionStore
	categories *store.MemoryCategoryStore
}

// newTestApp wires the handlers over in-memory stores with the same routes as
// main, seeded with two categories and twelve questions.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	questions := store.NewMemoryQuestionStore()
	categories := store.NewMemoryCategoryStore(
		models.Category{ID: 1, Name: "Science"},
		models.Category{ID: 2, Name: "Art"},
	)

	for i := 0; i < 12; i++ {
		cat := 1
		if i >= 8 {
			cat = 2
		}
		_, err := questions.Create(context.Background(), models.Question{
			Question: "Sample question", Answer: "Sample answer", Category: cat, Difficulty: 2,
		})
		require.NoError(t, err)
	}

	questionHandler := NewQuestionHandler(questions, categories, services.DefaultQuestionsPerPage)
	categoryHandler := NewCategoryHandler(questions, categories, services.DefaultQuestionsPerPage)
	quizHandler := NewQuizHandler(services.NewQuizService(questions, categories))

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", categoryHandler.GetCategories)
		r.Get("/categories/{id}/questions", categoryHandler.GetCategoryQuestions)
		r.Get("/questions", questionHandler.GetQuestions)
		r.Post("/questions", questionHandler.CreateQuestion)
		r.Delete("/questions/{id}", questionHandler.DeleteQuestion)
		r.Post("/questions/search", questionHandler.SearchQuestions)
		r.Post("/quizzes", quizHandler.PlayQuiz)
	})

	return &testApp{router: r, questions: questions, categories: categories}
}

func (app *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}
