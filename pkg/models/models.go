package models

// Domain models matching the database schema in db/migrations/*/0001_init.sql

// DefaultDifficulty is stored when a question is created without one.
const DefaultDifficulty = 1

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Type string `json:"type" db:"type"`
}

type Question struct {
	ID         int64  `json:"id" db:"id"`
	Question   string `json:"question" db:"question"`
	Answer     string `json:"answer" db:"answer"`
	Category   int64  `json:"category" db:"category"`
	Difficulty int    `json:"difficulty" db:"difficulty"`
}
