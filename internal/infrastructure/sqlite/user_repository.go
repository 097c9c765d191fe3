package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

type userRepository struct {
	db dbtx
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context) (*domain.User, error) {
	query := `
		SELECT id, name, username, password_hash
		FROM user
		WHERE id = ?
	`
	var user domain.User
	err := r.db.GetContext(ctx, &user, query, domain.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("owner %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}
	return &user, nil
}

// Save inserts the owner record or replaces its fields.
func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO user (id, name, username, password_hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			username = excluded.username,
			password_hash = excluded.password_hash
	`
	user.ID = domain.OwnerID
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Username,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to save owner: %w", err)
	}
	return nil
}
