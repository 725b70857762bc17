package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/trivia/internal/config"
	"github.com/garnizeh/trivia/internal/schema"
	"github.com/garnizeh/trivia/pkg/repository"
)

// Options carries the non-config dependencies of the router.
type Options struct {
	Version   string
	BuildTime string
	// Picker overrides the random quiz pick.
	Picker Picker
}

func SetupRoutes(cfg *config.Config, opts Options, store repository.Store, schemas *schema.Loader) *mux.Router {
	r := mux.NewRouter()
	errs := Classifier{Strict: cfg.StrictStatus}

	// Middleware chain
	mws := []mux.MiddlewareFunc{
		RequestIDMiddleware,
		LoggingMiddleware,
		CORSMiddleware(cfg.CORSOrigin),
		RecoveryMiddleware(errs),
		TimeoutMiddleware(cfg.APITimeout),
	}
	r.Use(mws...)

	// mux skips middleware for its fallback handlers.
	r.NotFoundHandler = chain(errs.NotFoundHandler(), mws...)
	r.MethodNotAllowedHandler = chain(errs.MethodNotAllowedHandler(), mws...)

	// Create handlers
	systemHandler := NewSystemHandler(store)
	categoriesHandler := NewCategoriesHandler(store, store, errs)
	questionsHandler := NewQuestionsHandler(store, store, schemas, errs)
	quizzesHandler := NewQuizzesHandler(store, schemas, errs, opts.Picker)

	// OPTIONS is listed on every route so preflights reach CORSMiddleware.
	get := []string{http.MethodGet, http.MethodOptions}
	post := []string{http.MethodPost, http.MethodOptions}
	del := []string{http.MethodDelete, http.MethodOptions}

	// Operational endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(opts.Version, opts.BuildTime)).Methods(get...)
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods(get...)

	// Categories
	r.HandleFunc("/categories", categoriesHandler.ListCategories).Methods(get...)
	r.HandleFunc("/categories/{id:[0-9]+}/questions", categoriesHandler.ListCategoryQuestions).Methods(get...)
	r.HandleFunc("/questions/category/{id:[0-9]+}", categoriesHandler.ListQuestionsByCategory).Methods(get...)

	// Questions
	r.HandleFunc("/questions", questionsHandler.ListQuestions).Methods(get...)
	r.HandleFunc("/questions", questionsHandler.CreateQuestion).Methods(post...)
	r.HandleFunc("/questions/search", questionsHandler.SearchQuestions).Methods(post...)
	r.HandleFunc("/questions/{id:[0-9]+}", questionsHandler.DeleteQuestion).Methods(del...)

	// Quizzes
	r.HandleFunc("/quizzes", quizzesHandler.NextQuestion).Methods(post...)

	return r
}
