package repositories

import (
	"context"
	"database/sql"

	intconfig "pipas/internal/config"
)

// Querier is the part of *sql.DB the repositories use.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func pick(db *sql.DB) Querier {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// dateCol renders a DATE column as YYYY-MM-DD regardless of parseTime.
func dateCol(col string) string {
	return "DATE_FORMAT(" + col + ", '%Y-%m-%d')"
}
