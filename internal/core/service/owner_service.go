package service

import (
	"context"
	"errors"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

type OwnerService struct {
	userRepo repository.UserRepository
}

func NewOwnerService(userRepo repository.UserRepository) *OwnerService {
	return &OwnerService{
		userRepo: userRepo,
	}
}

// Owner returns the owner record, or nil when none has been provisioned.
func (s *OwnerService) Owner(ctx context.Context) (*domain.User, error) {
	owner, err := s.userRepo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return owner, nil
}

// EnsureOwner creates the owner with the given display name if missing.
func (s *OwnerService) EnsureOwner(ctx context.Context, name string) (*domain.User, error) {
	owner, err := s.Owner(ctx)
	if err != nil || owner != nil {
		return owner, err
	}

	owner = domain.NewOwner(name, "", "")
	if err := s.userRepo.Save(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// UpdateName changes the display name of the owner.
func (s *OwnerService) UpdateName(ctx context.Context, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	owner, err := s.userRepo.Get(ctx)
	if err != nil {
		return err
	}

	owner.Name = name
	return s.userRepo.Save(ctx, owner)
}
