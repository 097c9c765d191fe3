package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	BcryptCost = 10

	// DefaultOwnerName is used when the admin command creates the owner.
	DefaultOwnerName = "Admin"
)

// dummyHash is compared against when no owner matches the username, so
// both kinds of failed login cost one bcrypt comparison.
var dummyHash = mustHash("watchlist-dummy-password")

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash dummy password: %v", err))
	}
	return string(hash)
}

type AuthService struct {
	userRepo repository.UserRepository
	verify   func(password, hash string) bool
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	s := &AuthService{
		userRepo: userRepo,
	}
	s.verify = s.VerifyPassword
	return s
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Authenticate checks the submitted credentials against the owner record.
// A wrong username and a wrong password produce the same error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	owner, err := s.userRepo.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	known := err == nil && owner.Username != "" && owner.Username == username
	hash := dummyHash
	if known {
		hash = owner.PasswordHash
	}

	// Always verify, even for an unknown username
	if !s.verify(password, hash) || !known {
		return nil, domain.ErrInvalidCredentials
	}

	return owner, nil
}

// Provision sets the owner's login credentials, creating the owner record
// when none exists. It reports whether a new record was created.
func (s *AuthService) Provision(ctx context.Context, username, password string) (bool, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return false, err
	}
	if password == "" {
		return false, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}

	owner, err := s.userRepo.Get(ctx)
	created := false
	switch {
	case errors.Is(err, domain.ErrNotFound):
		owner = domain.NewOwner(DefaultOwnerName, username, hash)
		created = true
	case err != nil:
		return false, err
	default:
		owner.Username = username
		owner.PasswordHash = hash
	}

	if err := s.userRepo.Save(ctx, owner); err != nil {
		return false, err
	}
	return created, nil
}
