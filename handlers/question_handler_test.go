package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triviaapp/models"
	"triviaapp/store"
)

func TestGetQuestionsFirstPage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["total_questions"])
	assert.Len(t, body["questions"], 10)
	assert.Len(t, body["categories"], 2)
}

func TestGetQuestionsSecondPage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/questions?page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(12), body["total_questions"])
	assert.Len(t, body["questions"], 2)
}

func TestGetQuestionsBeyondValidPage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/questions?page=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["total_questions"])
	assert.Len(t, body["questions"], 0)
}

func TestCreateQuestion(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions", models.QuestionRequest{
		Question:   "In which royal palace would you find the Hall of Mirrors?",
		Answer:     "The Palace of Versailles",
		Category:   2,
		Difficulty: 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Question creation successful!", body["message"])

	created, err := app.questions.GetByID(context.Background(), 13)
	require.NoError(t, err)
	assert.Equal(t, "The Palace of Versailles", created.Answer)
	assert.Equal(t, 2, created.Category)
	assert.Equal(t, 3, created.Difficulty)
}

func TestCreateQuestionMissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions", map[string]interface{}{
		"question": "Incomplete",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(422), body["error"])
}

func TestCreateQuestionInvalidDifficulty(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions", models.QuestionRequest{
		Question: "q", Answer: "a", Category: 1, Difficulty: 9,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateQuestionUnknownCategory(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions", models.QuestionRequest{
		Question: "q", Answer: "a", Category: 99, Difficulty: 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateQuestionMalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteQuestion(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodDelete, "/api/v1/questions/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(5), body["deleted"])

	_, err := app.questions.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// deleting the same id again is a 404, not a crash
	rec = app.do(t, http.MethodDelete, "/api/v1/questions/5", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteQuestionNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodDelete, "/api/v1/questions/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Resource not found", body["message"])
}

func TestSearchQuestions(t *testing.T) {
	app := newTestApp(t)
	_, err := app.questions.Create(context.Background(), models.Question{
		Question:   "Which company built the video platform YouTube?",
		Answer:     "Google",
		Category:   1,
		Difficulty: 1,
	})
	require.NoError(t, err)

	rec := app.do(t, http.MethodPost, "/api/v1/questions/search", models.SearchRequest{SearchTerm: "YouTube"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Len(t, body["questions"], 1)
}

func TestSearchQuestionsNoMatches(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions/search", models.SearchRequest{SearchTerm: "zzzz"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_questions"])
	assert.Len(t, body["questions"], 0)
}

func TestSearchQuestionsMissingTerm(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/questions/search", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
