package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"triviaapp/models"
	"triviaapp/services"
	"triviaapp/store"
	"triviaapp/utils"
)

type CategoryHandler struct {
	questions  store.QuestionStore
	categories store.CategoryStore
	perPage    int
}

func NewCategoryHandler(questions store.QuestionStore, categories store.CategoryStore, perPage int) *CategoryHandler {
	return &CategoryHandler{questions: questions, categories: categories, perPage: perPage}
}

// GetCategories returns the full id-to-name category map.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAll(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}
	if len(categories) == 0 {
		utils.SendError(w, http.StatusNotFound, "Resource not found")
		return
	}

	utils.SendJSON(w, http.StatusOK, models.CategoriesResponse{
		Success:    true,
		Categories: categoryMap(categories),
	})
}

// GetCategoryQuestions returns one page of the questions in a category.
func (h *CategoryHandler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Resource not found")
		return
	}

	category, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.SendError(w, http.StatusNotFound, "Resource not found")
			return
		}
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	questions, err := h.questions.ListByCategory(r.Context(), id)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "An error has occured, please try again")
		return
	}

	page := services.Paginate(questions, pageParam(r), h.perPage)
	utils.SendJSON(w, http.StatusOK, models.QuestionListResponse{
		Success:         true,
		Questions:       page.Items,
		TotalQuestions:  page.Total,
		CurrentCategory: category.Name,
	})
}

func categoryMap(categories []models.Category) models.CategoryMap {
	m := make(models.CategoryMap, len(categories))
	for _, c := range categories {
		m[strconv.Itoa(c.ID)] = c.Name
	}
	return m
}
