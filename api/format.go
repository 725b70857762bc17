package api

import (
	"strconv"

	"github.com/garnizeh/trivia/pkg/models"
)

// questionView is the wire shape of a question.
type questionView struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// categoryMap maps the decimal category id to its type label.
type categoryMap map[string]string

func formatQuestion(q models.Question) questionView {
	return questionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// formatQuestions never returns nil so empty lists encode as [].
func formatQuestions(qs []models.Question) []questionView {
	out := make([]questionView, 0, len(qs))
	for _, q := range qs {
		out = append(out, formatQuestion(q))
	}
	return out
}

func formatCategories(cs []models.Category) categoryMap {
	out := make(categoryMap, len(cs))
	for _, c := range cs {
		out[strconv.FormatInt(c.ID, 10)] = c.Type
	}
	return out
}
