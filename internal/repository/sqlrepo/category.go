package sqlrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/garnizeh/trivia/pkg/models"
)

func (r *SQLRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *SQLRepo) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = `+r.conn.Dialect().Bindvar(1), id)
	var c models.Category
	if err := row.Scan(&c.ID, &c.Type); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
