package api

import (
	"net/http"
	"strings"

	"github.com/garnizeh/trivia/internal/query"
	"github.com/garnizeh/trivia/internal/schema"
	"github.com/garnizeh/trivia/pkg/models"
	"github.com/garnizeh/trivia/pkg/repository"
)

// currentCategory is the placeholder the listing has always reported.
const currentCategory = "Science"

type QuestionsHandler struct {
	categories repository.CategoryRepo
	questions  repository.QuestionRepo
	schemas    *schema.Loader
	errs       Classifier
}

func NewQuestionsHandler(categories repository.CategoryRepo, questions repository.QuestionRepo, schemas *schema.Loader, errs Classifier) *QuestionsHandler {
	return &QuestionsHandler{categories: categories, questions: questions, schemas: schemas, errs: errs}
}

type questionsPageResponse struct {
	Success         bool           `json:"success"`
	Questions       []questionView `json:"questions"`
	TotalQuestions  int64          `json:"total_questions"`
	CurrentCategory string         `json:"current_category"`
	Categories      categoryMap    `json:"categories"`
}

type deleteResponse struct {
	Success        bool           `json:"success"`
	Deleted        int64          `json:"deleted"`
	Questions      []questionView `json:"questions"`
	TotalQuestions int64          `json:"totalQuestions"`
}

type searchResponse struct {
	Success        bool           `json:"success"`
	Questions      []questionView `json:"questions"`
	TotalQuestions int            `json:"totalQuestions"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type createQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// ListQuestions handles GET /questions?page=N.
func (h *QuestionsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f := query.Page(query.ParsePage(r.URL.Query().Get("page")))
	if f.Empty() {
		h.errs.Write(w, NotFound, "")
		return
	}

	qs, err := h.questions.ListQuestions(ctx, f.Limit, f.Offset)
	if err != nil {
		h.errs.Abort(ctx, w, err)
		return
	}
	if len(qs) == 0 {
		h.errs.Write(w, NotFound, "")
		return
	}

	total, err := h.questions.CountQuestions(ctx)
	if err != nil {
		h.errs.Abort(ctx, w, err)
		return
	}
	cats, err := h.categories.ListCategories(ctx)
	if err != nil {
		h.errs.Abort(ctx, w, err)
		return
	}

	writeJSON(w, questionsPageResponse{
		Success:         true,
		Questions:       formatQuestions(qs),
		TotalQuestions:  total,
		CurrentCategory: currentCategory,
		Categories:      formatCategories(cats),
	}, http.StatusOK)
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *QuestionsHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r)
	if !ok {
		h.errs.Write(w, Unprocessable, "")
		return
	}

	q, err := h.questions.GetQuestion(ctx, id)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while deleting the question", err)
		return
	}
	if q == nil {
		h.errs.Write(w, Unprocessable, "")
		return
	}

	deleted, err := h.questions.DeleteQuestion(ctx, id)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while deleting the question", err)
		return
	}
	// Lost a race with a concurrent delete.
	if !deleted {
		h.errs.Write(w, Unprocessable, "")
		return
	}

	total, err := h.questions.CountQuestions(ctx)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while deleting the question", err)
		return
	}
	remaining, err := h.questions.ListAllQuestions(ctx)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while deleting the question", err)
		return
	}

	writeJSON(w, deleteResponse{
		Success:        true,
		Deleted:        id,
		Questions:      formatQuestions(remaining),
		TotalQuestions: total,
	}, http.StatusOK)
}

// CreateQuestion handles POST /questions.
func (h *QuestionsHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req createQuestionRequest
	if !decodeBody(w, r, h.schemas, schema.CreateQuestion, h.errs, &req) {
		return
	}

	q := &models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.Value,
		Difficulty: models.DefaultDifficulty,
	}
	if req.Difficulty.Set {
		q.Difficulty = int(req.Difficulty.Value)
	}

	if h.errs.Strict {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
			h.errs.Write(w, Unprocessable, "")
			return
		}
		cat, err := h.categories.GetCategory(ctx, q.Category)
		if err != nil {
			h.errs.Fail(ctx, w, "An error occurred while creating the question", err)
			return
		}
		if cat == nil {
			h.errs.Write(w, Unprocessable, "")
			return
		}
	}

	if _, err := h.questions.InsertQuestion(ctx, q); err != nil {
		h.errs.Fail(ctx, w, "An error occurred while creating the question", err)
		return
	}

	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

// SearchQuestions handles POST /questions/search. A missing term matches
// every question.
func (h *QuestionsHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req searchRequest
	if !decodeBody(w, r, h.schemas, schema.SearchQuestions, h.errs, &req) {
		return
	}

	var term string
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}
	f := query.Search(term)

	qs, err := h.questions.SearchQuestions(ctx, f.Pattern)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while searching for questions", err)
		return
	}
	if len(qs) == 0 {
		h.errs.Write(w, Unprocessable, "")
		return
	}

	writeJSON(w, searchResponse{
		Success:        true,
		Questions:      formatQuestions(qs),
		TotalQuestions: len(qs),
	}, http.StatusOK)
}
