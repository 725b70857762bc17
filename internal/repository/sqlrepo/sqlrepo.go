package sqlrepo

import (
	"context"
	"log/slog"

	"github.com/garnizeh/trivia/internal/db"
	"github.com/garnizeh/trivia/pkg/repository"
)

// SQLRepo implements repository interfaces using the internal DB wrapper. The
// same statements serve SQLite and PostgreSQL; dialect differences are
// rendered by the query package.
type SQLRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLRepo implements the public interfaces.
var _ repository.CategoryRepo = (*SQLRepo)(nil)
var _ repository.QuestionRepo = (*SQLRepo)(nil)
var _ repository.Store = (*SQLRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLRepo{conn: conn, logger: logger}
}

func (r *SQLRepo) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}
