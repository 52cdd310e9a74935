package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"triviaapp/models"
	"triviaapp/services"
	"triviaapp/store"
	"triviaapp/utils"
)

type QuizHandler struct {
	quiz *services.QuizService
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// PlayQuiz returns one random question outside the client's exclusion set.
// When every candidate has been served the response carries "question": null
// and the client ends the session.
func (h *QuizHandler) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Bad request error")
		return
	}
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		utils.SendError(w, http.StatusBadRequest, "Bad request error")
		return
	}

	question, err := h.quiz.NextQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.SendError(w, http.StatusNotFound, "Resource not found")
			return
		}
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.QuizResponse{
		Success:  true,
		Question: question,
	})
}
