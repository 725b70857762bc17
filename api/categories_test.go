package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/garnizeh/trivia/pkg/models"
	"github.com/garnizeh/trivia/pkg/repository/mock"
)

func TestListCategories(t *testing.T) {
	h := newRouter(t, seededStore(t, 0), false, nil)

	r := do(t, h, http.MethodGet, "/categories", "")
	if r.status != http.StatusOK || !r.success(t) {
		t.Fatalf("unexpected response: %d %s", r.status, r.raw)
	}
	cats, ok := r.body["categories"].(map[string]any)
	if !ok {
		t.Fatalf("categories is not an object: %s", r.raw)
	}
	want := map[string]string{"1": "Science", "2": "Art", "3": "Geography", "4": "History", "5": "Entertainment", "6": "Sports"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %v", len(want), cats)
	}
	for id, name := range want {
		if cats[id] != name {
			t.Fatalf("category %s: expected %q, got %v", id, name, cats[id])
		}
	}
}

func TestListCategories_Empty(t *testing.T) {
	h := newRouter(t, mock.NewStore(), false, nil)

	r := do(t, h, http.MethodGet, "/categories", "")
	if r.status != http.StatusOK || !r.success(t) {
		t.Fatalf("unexpected response: %d %s", r.status, r.raw)
	}
	if cats := r.body["categories"].(map[string]any); len(cats) != 0 {
		t.Fatalf("expected empty map, got %v", cats)
	}
}

func TestListCategories_StoreError(t *testing.T) {
	store := seededStore(t, 0)
	store.ReadErr = errors.New("disk I/O error")
	h := newRouter(t, store, true, nil)

	expectFailure(t, do(t, h, http.MethodGet, "/categories", ""), "An error occurred while fetching categories.")
}

func TestListCategoryQuestions(t *testing.T) {
	store := seededStore(t, 5)
	h := newRouter(t, store, false, nil)

	r := do(t, h, http.MethodGet, "/categories/2/questions", "")
	if r.status != http.StatusOK || !r.success(t) {
		t.Fatalf("unexpected response: %d %s", r.status, r.raw)
	}
	ids := questionIDs(t, r)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Fatalf("expected questions 2 and 4, got %v", ids)
	}
	if r.body["totalQuestions"] != float64(2) || r.body["currentCategory"] != "Art" {
		t.Fatalf("unexpected totals: %s", r.raw)
	}
	q := r.body["questions"].([]any)[0].(map[string]any)
	for _, k := range []string{"id", "question", "answer", "category", "difficulty"} {
		if _, ok := q[k]; !ok {
			t.Fatalf("formatted question lacks %q: %v", k, q)
		}
	}
}

func TestListCategoryQuestions_NotFound(t *testing.T) {
	store := seededStore(t, 5)
	store.AddQuestion(models.Question{Question: "orphan", Answer: "a", Category: 42, Difficulty: 1})
	h := newRouter(t, store, false, nil)

	// unknown category, even with questions pointing at it
	expectError(t, do(t, h, http.MethodGet, "/categories/42/questions", ""), http.StatusNotFound, 404, "Category not found")
	// known category without questions
	expectError(t, do(t, h, http.MethodGet, "/categories/6/questions", ""), http.StatusNotFound, 404, "No questions found for the specified category")
	// id out of int64 range
	expectError(t, do(t, h, http.MethodGet, "/categories/99999999999999999999/questions", ""), http.StatusNotFound, 404, "Category not found")
}

func TestListCategoryQuestions_StoreError(t *testing.T) {
	store := seededStore(t, 5)
	store.ReadErr = errors.New("boom")
	h := newRouter(t, store, false, nil)

	expectFailure(t, do(t, h, http.MethodGet, "/categories/1/questions", ""), "An error occurred while retrieving questions by category")
}

func TestListQuestionsByCategory_Legacy(t *testing.T) {
	store := seededStore(t, 5)
	store.AddQuestion(models.Question{Question: "orphan", Answer: "a", Category: 42, Difficulty: 1})
	h := newRouter(t, store, false, nil)

	r := do(t, h, http.MethodGet, "/questions/category/1", "")
	if r.status != http.StatusOK || !r.success(t) {
		t.Fatalf("unexpected response: %d %s", r.status, r.raw)
	}
	if ids := questionIDs(t, r); len(ids) != 3 {
		t.Fatalf("expected 3 science questions, got %v", ids)
	}
	if _, ok := r.body["totalQuestions"]; ok {
		t.Fatalf("legacy listing carries only success and questions: %s", r.raw)
	}

	// the legacy route does not look the category up
	r = do(t, h, http.MethodGet, "/questions/category/42", "")
	if ids := questionIDs(t, r); len(ids) != 1 {
		t.Fatalf("expected the orphan question, got %v", ids)
	}

	expectError(t, do(t, h, http.MethodGet, "/questions/category/6", ""), http.StatusNotFound, 404, "No questions found for the specified category")
}
