package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

type movieRepository struct {
	db dbtx
}

func NewMovieRepository(db *DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movie (title, year) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, query, movie.Title, movie.Year)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get movie id: %w", err)
	}
	movie.ID = id

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `SELECT id, title, year FROM movie WHERE id = ?`
	var movie domain.Movie
	err := r.db.GetContext(ctx, &movie, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("movie %d %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movie SET title = ?, year = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, movie.Title, movie.Year, movie.ID)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("movie %d %w", movie.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movie WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("movie %d %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *movieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, year FROM movie ORDER BY id`
	movies := []*domain.Movie{}
	if err := r.db.SelectContext(ctx, &movies, query); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM movie`); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}
