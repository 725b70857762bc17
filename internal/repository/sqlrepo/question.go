package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/garnizeh/trivia/internal/query"
	"github.com/garnizeh/trivia/pkg/models"
)

const questionColumns = "id, question, answer, category, difficulty"

func (r *SQLRepo) ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error) {
	if limit <= 0 {
		limit = query.PageSize
	}
	if offset < 0 {
		offset = 0
	}
	return r.findQuestions(ctx, query.Filter{Limit: limit, Offset: offset})
}

func (r *SQLRepo) CountQuestions(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM questions`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *SQLRepo) ListAllQuestions(ctx context.Context) ([]models.Question, error) {
	return r.findQuestions(ctx, query.Filter{})
}

func (r *SQLRepo) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = `+r.conn.Dialect().Bindvar(1), id)
	var q models.Question
	if err := row.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *SQLRepo) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	return r.findQuestions(ctx, query.ByCategory(categoryID))
}

func (r *SQLRepo) SearchQuestions(ctx context.Context, pattern string) ([]models.Question, error) {
	return r.findQuestions(ctx, query.Filter{Pattern: pattern})
}

func (r *SQLRepo) ListQuestionsExcluding(ctx context.Context, ids []int64, categoryID *int64) ([]models.Question, error) {
	return r.findQuestions(ctx, query.Filter{ExcludeIDs: ids, CategoryID: categoryID})
}

func (r *SQLRepo) InsertQuestion(ctx context.Context, q *models.Question) (int64, error) {
	if q == nil {
		return 0, fmt.Errorf("question is nil")
	}

	d := r.conn.Dialect()
	stmt := fmt.Sprintf(`INSERT INTO questions (question, answer, category, difficulty) VALUES (%s, %s, %s, %s) RETURNING id`,
		d.Bindvar(1), d.Bindvar(2), d.Bindvar(3), d.Bindvar(4))

	var id int64
	if err := r.conn.QueryRow(ctx, stmt, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id); err != nil {
		return 0, err
	}
	q.ID = id

	return id, nil
}

func (r *SQLRepo) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM questions WHERE id = `+r.conn.Dialect().Bindvar(1), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLRepo) findQuestions(ctx context.Context, f query.Filter) ([]models.Question, error) {
	stmt, args := f.Select(r.conn.Dialect(), questionColumns)
	r.logger.DebugContext(ctx, "select questions", slog.String("sql", stmt), slog.Int("args", len(args)))

	rows, err := r.conn.QueryRows(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, rows.Err()
}
