package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"triviaapp/models"
	"triviaapp/services"
	"triviaapp/store"
	"triviaapp/utils"
)

var validate = validator.New()

type QuestionHandler struct {
	questions  store.QuestionStore
	categories store.CategoryStore
	perPage    int
}

func NewQuestionHandler(questions store.QuestionStore, categories store.CategoryStore, perPage int) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories, perPage: perPage}
}

// GetQuestions returns one page of all questions plus the category map.
// A page beyond the available range yields an empty list, not an error.
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	all, err := h.questions.ListAll(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	categories, err := h.categories.GetAll(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	page := services.Paginate(all, pageParam(r), h.perPage)
	utils.SendJSON(w, http.StatusOK, models.QuestionListResponse{
		Success:        true,
		Questions:      page.Items,
		TotalQuestions: page.Total,
		Categories:     categoryMap(categories),
	})
}

// CreateQuestion adds a question. All fields are required and the category
// must reference an existing category id.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Bad request error")
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.SendError(w, http.StatusUnprocessableEntity, "Unprocessable entity")
		return
	}

	if _, err := h.categories.GetByID(r.Context(), req.Category); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.SendError(w, http.StatusUnprocessableEntity, "Unprocessable entity")
			return
		}
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	_, err := h.questions.Create(r.Context(), models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	utils.SendJSON(w, http.StatusCreated, models.MessageResponse{
		Success: true,
		Message: "Question creation successful!",
	})
}

func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Resource not found")
		return
	}

	if err := h.questions.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.SendError(w, http.StatusNotFound, "Resource not found")
			return
		}
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.MessageResponse{
		Success: true,
		Message: "Question deleted successfully",
		Deleted: id,
	})
}

// SearchQuestions returns questions whose text contains the search term,
// case-insensitively. Zero matches is an empty 200, not a 404.
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Bad request error")
		return
	}
	if req.SearchTerm == "" {
		utils.SendError(w, http.StatusBadRequest, "Bad request error")
		return
	}

	matches, err := h.questions.Search(r.Context(), req.SearchTerm)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	page := services.Paginate(matches, pageParam(r), h.perPage)
	utils.SendJSON(w, http.StatusOK, models.QuestionListResponse{
		Success:        true,
		Questions:      page.Items,
		TotalQuestions: page.Total,
	})
}

// pageParam reads the page query parameter, defaulting to 1 when absent or
// not a valid integer.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}
