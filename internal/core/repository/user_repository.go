package repository

import (
	"context"

	"github.com/martijn/watchlist/internal/core/domain"
)

// UserRepository stores the single owner record.
type UserRepository interface {
	Get(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}
