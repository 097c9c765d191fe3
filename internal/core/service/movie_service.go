package service

import (
	"context"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

type MovieService struct {
	movieRepo repository.MovieRepository
}

func NewMovieService(movieRepo repository.MovieRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
	}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *MovieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	return s.movieRepo.FindByID(ctx, id)
}

func (s *MovieService) Count(ctx context.Context) (int, error) {
	return s.movieRepo.Count(ctx)
}

// Create validates and stores a new movie.
func (s *MovieService) Create(ctx context.Context, title, year string) (*domain.Movie, error) {
	movie, err := domain.NewMovie(title, year)
	if err != nil {
		return nil, err
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Update replaces both fields of an existing movie. Nothing is written
// unless both fields are valid.
func (s *MovieService) Update(ctx context.Context, id int64, title, year string) (*domain.Movie, error) {
	if err := domain.ValidateMovie(title, year); err != nil {
		return nil, err
	}

	movie := &domain.Movie{ID: id, Title: title, Year: year}
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	return s.movieRepo.Delete(ctx, id)
}
