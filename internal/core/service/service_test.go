package service

import (
	"context"
	"strings"
	"testing"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/infrastructure/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	auth   *AuthService
	owner  *OwnerService
	movies *MovieService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	db, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	return &testServices{
		auth:   NewAuthService(userRepo),
		owner:  NewOwnerService(userRepo),
		movies: NewMovieService(sqlite.NewMovieRepository(db)),
	}
}

func TestAuthService_HashAndVerify(t *testing.T) {
	s := setupServices(t)

	hash, err := s.auth.HashPassword("123")
	require.NoError(t, err)
	assert.NotEqual(t, "123", hash)
	assert.True(t, s.auth.VerifyPassword("123", hash))
	assert.False(t, s.auth.VerifyPassword("456", hash))

	other, err := s.auth.HashPassword("123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")
}

func TestAuthService_Provision(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	created, err := s.auth.Provision(ctx, "grey", "123")
	require.NoError(t, err)
	assert.True(t, created)

	owner, err := s.owner.Owner(ctx)
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "grey", owner.Username)
	assert.Equal(t, DefaultOwnerName, owner.Name)
	assert.True(t, s.auth.VerifyPassword("123", owner.PasswordHash))

	require.NoError(t, s.owner.UpdateName(ctx, "Grey Li"))

	created, err = s.auth.Provision(ctx, "peter", "456")
	require.NoError(t, err)
	assert.False(t, created)

	owner, err = s.owner.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, "peter", owner.Username)
	assert.Equal(t, "Grey Li", owner.Name, "provisioning keeps the display name")
	assert.True(t, s.auth.VerifyPassword("456", owner.PasswordHash))

	_, err = s.auth.Provision(ctx, "", "456")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.auth.Provision(ctx, "peter", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	_, err := s.auth.Authenticate(ctx, "test", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "no owner yet")

	_, err = s.auth.Provision(ctx, "test", "123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "test", password: "123"},
		{name: "wrong password", username: "test", password: "456", wantErr: domain.ErrInvalidCredentials},
		{name: "wrong username", username: "wrong", password: "123", wantErr: domain.ErrInvalidCredentials},
		{name: "empty username", username: "", password: "123", wantErr: domain.ErrInvalidInput},
		{name: "empty password", username: "test", password: "", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, err := s.auth.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, owner)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OwnerID, owner.ID)
		})
	}
}

func TestAuthService_Authenticate_AlwaysVerifies(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	var hashes []string
	s.auth.verify = func(password, hash string) bool {
		hashes = append(hashes, hash)
		return s.auth.VerifyPassword(password, hash)
	}

	_, err := s.auth.Authenticate(ctx, "test", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Len(t, hashes, 1, "no owner yet")
	assert.Equal(t, dummyHash, hashes[0])

	_, err = s.auth.Provision(ctx, "test", "123")
	require.NoError(t, err)
	owner, err := s.owner.Owner(ctx)
	require.NoError(t, err)

	hashes = nil
	_, err = s.auth.Authenticate(ctx, "wrong", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = s.auth.Authenticate(ctx, "test", "456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.Len(t, hashes, 2)
	assert.Equal(t, dummyHash, hashes[0], "wrong username")
	assert.Equal(t, owner.PasswordHash, hashes[1], "wrong password")

	// The dummy hash never matches a real login
	_, err = s.auth.Authenticate(ctx, "wrong", "watchlist-dummy-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestOwnerService(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	owner, err := s.owner.Owner(ctx)
	require.NoError(t, err)
	assert.Nil(t, owner)

	assert.ErrorIs(t, s.owner.UpdateName(ctx, "Nobody"), domain.ErrNotFound)

	owner, err = s.owner.EnsureOwner(ctx, "Alex Goke")
	require.NoError(t, err)
	assert.Equal(t, "Alex Goke", owner.Name)

	owner, err = s.owner.EnsureOwner(ctx, "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, "Alex Goke", owner.Name, "existing owner is kept")

	assert.ErrorIs(t, s.owner.UpdateName(ctx, ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.owner.UpdateName(ctx, strings.Repeat("x", 21)), domain.ErrInvalidInput)
	require.NoError(t, s.owner.UpdateName(ctx, "Grey Li"))

	owner, err = s.owner.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grey Li", owner.Name)
}

func TestMovieService(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)

	movie, err := s.movies.Create(ctx, "Test Movie Title", "2019")
	require.NoError(t, err)
	assert.NotZero(t, movie.ID)

	_, err = s.movies.Create(ctx, "", "2019")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.movies.Create(ctx, "Too Long Year", "20190")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	count, err := s.movies.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "invalid input must not be stored")

	_, err = s.movies.Update(ctx, movie.ID, "New Movie Edited Again", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := s.movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Movie Title", stored.Title, "rejected update leaves the row unchanged")

	_, err = s.movies.Update(ctx, movie.ID, "New Movie Edited", "2020")
	require.NoError(t, err)
	stored, err = s.movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Movie Edited", stored.Title)
	assert.Equal(t, "2020", stored.Year)

	require.NoError(t, s.movies.Delete(ctx, movie.ID))
	assert.ErrorIs(t, s.movies.Delete(ctx, movie.ID), domain.ErrNotFound)
	_, err = s.movies.Get(ctx, movie.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	movies, err := s.movies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)
}
