package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martijn/watchlist/internal/core/repository"
)

// dbtx is the part of sqlx used by the repositories. Both *sqlx.DB and
// *sqlx.Tx satisfy it.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// Repositories are bound to the same handle, usually a transaction.
type Repositories struct {
	Users  repository.UserRepository
	Movies repository.MovieRepository
}

// WithTx runs fn against repositories that share one transaction. The
// transaction commits when fn returns nil and rolls back on error or panic.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("failed to commit transaction: %w", err)
		}
	}()

	return fn(ctx, Repositories{
		Users:  &userRepository{db: tx},
		Movies: &movieRepository{db: tx},
	})
}
