package repository

import (
	"context"

	"github.com/martijn/watchlist/internal/core/domain"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id int64) (*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Movie, error)
	Count(ctx context.Context) (int, error)
}
