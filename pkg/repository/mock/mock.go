package mock

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/garnizeh/trivia/pkg/models"
	"github.com/garnizeh/trivia/pkg/repository"
)

var _ repository.Store = (*Store)(nil)

// Store is an in-memory repository.Store for handler tests. Setting one of
// the *Err fields makes every call of that kind fail with it.
type Store struct {
	mu         sync.Mutex
	categories map[int64]models.Category
	questions  map[int64]models.Question
	nextID     int64

	ReadErr   error
	WriteErr  error
	PingErr   error
	CountErr  error
	DeleteErr error
}

func NewStore() *Store {
	return &Store{
		categories: map[int64]models.Category{},
		questions:  map[int64]models.Question{},
		nextID:     1,
	}
}

// AddCategory stores c as is.
func (s *Store) AddCategory(c models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
}

// AddQuestion stores q with a fresh id and returns the id.
func (s *Store) AddQuestion(q models.Question) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.nextID
	s.nextID++
	s.questions[q.ID] = q
	return q.ID
}

func (s *Store) Ping(ctx context.Context) error { return s.PingErr }

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error) {
	all, err := s.filter(func(models.Question) bool { return true })
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CountErr != nil {
		return 0, s.CountErr
	}
	return int64(len(s.questions)), nil
}

func (s *Store) ListAllQuestions(ctx context.Context) ([]models.Question, error) {
	return s.filter(func(models.Question) bool { return true })
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	return s.filter(func(q models.Question) bool { return q.Category == categoryID })
}

// SearchQuestions understands the patterns produced by query.SubstringPattern.
func (s *Store) SearchQuestions(ctx context.Context, pattern string) ([]models.Question, error) {
	term := strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%")
	term = strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`).Replace(term)
	term = strings.ToLower(term)
	return s.filter(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

func (s *Store) ListQuestionsExcluding(ctx context.Context, ids []int64, categoryID *int64) ([]models.Question, error) {
	return s.filter(func(q models.Question) bool {
		if slices.Contains(ids, q.ID) {
			return false
		}
		return categoryID == nil || q.Category == *categoryID
	})
}

func (s *Store) InsertQuestion(ctx context.Context, q *models.Question) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return 0, s.WriteErr
	}
	q.ID = s.nextID
	s.nextID++
	s.questions[q.ID] = *q
	return q.ID, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return false, s.DeleteErr
	}
	if _, ok := s.questions[id]; !ok {
		return false, nil
	}
	delete(s.questions, id)
	return true, nil
}

func (s *Store) filter(keep func(models.Question) bool) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	var out []models.Question
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
