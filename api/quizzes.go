package api

import (
	"math/rand/v2"
	"net/http"

	"github.com/garnizeh/trivia/internal/query"
	"github.com/garnizeh/trivia/internal/schema"
	"github.com/garnizeh/trivia/pkg/repository"
)

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

type QuizzesHandler struct {
	questions repository.QuestionRepo
	schemas   *schema.Loader
	errs      Classifier
	pick      Picker
}

// NewQuizzesHandler returns a handler picking uniformly at random. A nil
// pick uses math/rand/v2.
func NewQuizzesHandler(questions repository.QuestionRepo, schemas *schema.Loader, errs Classifier, pick Picker) *QuizzesHandler {
	if pick == nil {
		pick = rand.IntN
	}
	return &QuizzesHandler{questions: questions, schemas: schemas, errs: errs, pick: pick}
}

type quizCategory struct {
	ID flexInt `json:"id"`
}

type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

type quizResponse struct {
	Success  bool         `json:"success"`
	Question questionView `json:"question"`
}

// NextQuestion handles POST /quizzes: one random question of the chosen
// category that the player has not seen yet.
func (h *QuizzesHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req quizRequest
	if !decodeBody(w, r, h.schemas, schema.Quiz, h.errs, &req) {
		return
	}

	categoryID := query.AllCategories
	if req.QuizCategory != nil && req.QuizCategory.ID.Set {
		categoryID = req.QuizCategory.ID.Value
	}
	f := query.Quiz(categoryID, req.PreviousQuestions)

	candidates, err := h.questions.ListQuestionsExcluding(ctx, f.ExcludeIDs, f.CategoryID)
	if err != nil {
		h.errs.Fail(ctx, w, "An error occurred while getting a quiz question", err)
		return
	}
	if len(candidates) == 0 {
		h.errs.Write(w, Unprocessable, "")
		return
	}

	q := candidates[h.pick(len(candidates))]
	writeJSON(w, quizResponse{Success: true, Question: formatQuestion(q)}, http.StatusOK)
}
