package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMovie(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		year    string
		wantErr bool
	}{
		{name: "valid", title: "Leon", year: "1994"},
		{name: "free form year", title: "Leon", year: "ca90"},
		{name: "title at limit", title: strings.Repeat("a", MaxTitleLength), year: "1994"},
		{name: "multibyte title at limit", title: strings.Repeat("龍", MaxTitleLength), year: "1994"},
		{name: "empty title", title: "", year: "1994", wantErr: true},
		{name: "empty year", title: "Leon", year: "", wantErr: true},
		{name: "title too long", title: strings.Repeat("a", MaxTitleLength+1), year: "1994", wantErr: true},
		{name: "year too long", title: "Leon", year: "19945", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMovie(tt.title, tt.year)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewMovie(t *testing.T) {
	m, err := NewMovie("WALL-E", "2008")
	require.NoError(t, err)
	assert.Equal(t, "WALL-E", m.Title)
	assert.Equal(t, "2008", m.Year)
	assert.Zero(t, m.ID)

	_, err = NewMovie("", "2008")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Grey Li"))
	assert.NoError(t, ValidateName(strings.Repeat("n", MaxNameLength)))
	assert.ErrorIs(t, ValidateName(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateName(strings.Repeat("n", MaxNameLength+1)), ErrInvalidInput)
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("grey"))
	assert.ErrorIs(t, ValidateUsername(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateUsername(strings.Repeat("u", MaxUsernameLength+1)), ErrInvalidInput)
}

func TestNewOwner(t *testing.T) {
	u := NewOwner("Admin", "grey", "hash")
	assert.Equal(t, OwnerID, u.ID)
	assert.Equal(t, "Admin", u.Name)
	assert.Equal(t, "grey", u.Username)
	assert.Equal(t, "hash", u.PasswordHash)
}
