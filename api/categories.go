package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garnizeh/trivia/pkg/repository"
)

type CategoriesHandler struct {
	categories repository.CategoryRepo
	questions  repository.QuestionRepo
	errs       Classifier
}

func NewCategoriesHandler(categories repository.CategoryRepo, questions repository.QuestionRepo, errs Classifier) *CategoriesHandler {
	return &CategoriesHandler{categories: categories, questions: questions, errs: errs}
}

type categoriesResponse struct {
	Success    bool        `json:"success"`
	Categories categoryMap `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success         bool           `json:"success"`
	Questions       []questionView `json:"questions"`
	TotalQuestions  int            `json:"totalQuestions"`
	CurrentCategory string         `json:"currentCategory"`
}

type legacyCategoryQuestionsResponse struct {
	Success   bool           `json:"success"`
	Questions []questionView `json:"questions"`
}

// pathID reads the {id} route variable. Routes restrict it to digits, so
// only an out of range value fails here.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

// ListCategories handles GET /categories.
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.ListCategories(r.Context())
	if err != nil {
		h.errs.Fail(r.Context(), w, "An error occurred while fetching categories.", err)
		return
	}
	writeJSON(w, categoriesResponse{Success: true, Categories: formatCategories(cats)}, http.StatusOK)
}

// ListCategoryQuestions handles GET /categories/{id}/questions.
func (h *CategoriesHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r)
	if !ok {
		h.errs.Write(w, NotFound, "Category not found")
		return
	}

	cat, err := h.categories.GetCategory(ctx, id)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while retrieving questions by category", err)
		return
	}
	if cat == nil {
		h.errs.Write(w, NotFound, "Category not found")
		return
	}

	qs, err := h.questions.ListQuestionsByCategory(ctx, id)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while retrieving questions by category", err)
		return
	}
	if len(qs) == 0 {
		h.errs.Write(w, NotFound, "No questions found for the specified category")
		return
	}

	writeJSON(w, categoryQuestionsResponse{
		Success:         true,
		Questions:       formatQuestions(qs),
		TotalQuestions:  len(qs),
		CurrentCategory: cat.Type,
	}, http.StatusOK)
}

// ListQuestionsByCategory handles the older GET /questions/category/{id}.
// The category itself is not checked; an id without questions is not found.
func (h *CategoriesHandler) ListQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r)
	if !ok {
		h.errs.Write(w, NotFound, "")
		return
	}

	qs, err := h.questions.ListQuestionsByCategory(ctx, id)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while retrieving questions by category", err)
		return
	}
	if len(qs) == 0 {
		h.errs.Write(w, NotFound, "No questions found for the specified category")
		return
	}

	writeJSON(w, legacyCategoryQuestionsResponse{Success: true, Questions: formatQuestions(qs)}, http.StatusOK)
}
