package repository

import (
	"context"

	"github.com/garnizeh/trivia/pkg/models"
)

// Repository interfaces for the trivia records. These are the public contracts
// handlers depend on; concrete implementations live under internal/.
//
// Single-row lookups return (nil, nil) when the row does not exist.

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
}

type QuestionRepo interface {
	ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	// ListAllQuestions returns every question, unpaged, in id order.
	ListAllQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error)
	// SearchQuestions matches a LIKE pattern case-insensitively against the
	// question text.
	SearchQuestions(ctx context.Context, pattern string) ([]models.Question, error)
	// ListQuestionsExcluding returns every question whose id is not in ids,
	// restricted to categoryID when it is non-nil.
	ListQuestionsExcluding(ctx context.Context, ids []int64, categoryID *int64) ([]models.Question, error)
	// InsertQuestion stores q, sets q.ID and returns it.
	InsertQuestion(ctx context.Context, q *models.Question) (int64, error)
	// DeleteQuestion reports whether a row existed.
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
}

// Store is the full persistence handle the HTTP layer is built on.
type Store interface {
	CategoryRepo
	QuestionRepo
	Ping(ctx context.Context) error
}
