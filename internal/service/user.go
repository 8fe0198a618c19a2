package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/pkg/passwords"
	"github.com/mzawadzki/ludoteka-api/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

// penaltyThreshold is the number of penalty points a user may accumulate
// before counting as penalized. Strictly greater than the threshold trips it.
const penaltyThreshold = 2

type UserRepository interface {
	Update(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// ListUsers returns every account ordered by surname.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return users, nil
}

// IsPenalized reports whether the user's penalty points exceed the
// threshold. An unknown user id is not an error: it yields false.
func (s *UserService) IsPenalized(ctx context.Context, id uint) (bool, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user.PenaltyPoints > penaltyThreshold, nil
}

// UpdateUser overwrites the profile and administrative fields of an account.
// The password is hashed and replaced only when newPassword is non-empty;
// the confirmation state is never touched here.
func (s *UserService) UpdateUser(ctx context.Context, user domain.User, newPassword string) (domain.User, error) {
	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user.ConfirmationToken = existing.ConfirmationToken
	if newPassword == "" {
		user.PasswordHash = existing.PasswordHash
	} else {
		hash, err := passwords.Hash(newPassword)
		if err != nil {
			return domain.User{}, fmt.Errorf("passwords.Hash -> %w", err)
		}
		user.PasswordHash = hash
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserEmailExists) {
			return domain.User{}, ErrEmailExists
		}

		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
