package domain

import (
	"fmt"
	"unicode/utf8"
)

const (
	MaxTitleLength = 60
	MaxYearLength  = 4
)

// Movie is one watchlist entry. Year is free-form text, so values such as
// "ca. 1990" are stored as given.
type Movie struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Year  string `db:"year"`
}

func NewMovie(title, year string) (*Movie, error) {
	if err := ValidateMovie(title, year); err != nil {
		return nil, err
	}
	return &Movie{Title: title, Year: year}, nil
}

// ValidateMovie requires both fields and bounds their length in characters.
func ValidateMovie(title, year string) error {
	if title == "" || year == "" {
		return fmt.Errorf("%w: title and year are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: title longer than %d characters", ErrInvalidInput, MaxTitleLength)
	}
	if utf8.RuneCountInString(year) > MaxYearLength {
		return fmt.Errorf("%w: year longer than %d characters", ErrInvalidInput, MaxYearLength)
	}
	return nil
}
