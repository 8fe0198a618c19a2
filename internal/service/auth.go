package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/pkg/passwords"
	"github.com/mzawadzki/ludoteka-api/internal/repository"
)

var (
	ErrEmailExists         = repository.ErrUserEmailExists
	ErrWrongCredentials    = errors.New("wrong user id or password")
	ErrNotConfirmed        = errors.New("account not confirmed")
	ErrInvalidConfirmation = errors.New("invalid confirmation token")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Register creates an unconfirmed account under the externally assigned id.
// The confirmation link is logged rather than mailed; delivery is outside
// this service.
func (s *AuthService) Register(ctx context.Context, user domain.User, password string) (domain.User, error) {
	hash, err := passwords.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("passwords.Hash -> %w", err)
	}

	user.PasswordHash = hash
	user.PenaltyPoints = 0
	user.IsAdmin = false
	user.ConfirmationToken = uuid.NewString()

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserEmailExists) {
			return domain.User{}, ErrEmailExists
		}

		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("confirmation token issued",
		zap.Uint("user_id", created.ID),
		zap.String("token", created.ConfirmationToken))

	return created, nil
}

// Confirm clears the confirmation token, unlocking login.
func (s *AuthService) Confirm(ctx context.Context, userID uint, token string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if user.Confirmed() || user.ConfirmationToken != token {
		return ErrInvalidConfirmation
	}

	user.ConfirmationToken = ""
	if _, err = s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

// Login checks the password for the given user id. An unknown id and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, userID uint, password string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrWrongCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !user.Confirmed() {
		return domain.User{}, ErrNotConfirmed
	}

	ok, err := passwords.Verify(password, user.PasswordHash)
	if err != nil {
		return domain.User{}, fmt.Errorf("passwords.Verify -> %w", err)
	}
	if !ok {
		return domain.User{}, ErrWrongCredentials
	}

	return user, nil
}

// ChangePassword replaces the stored hash with one of the new password.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	hash, err := passwords.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("passwords.Hash -> %w", err)
	}

	user.PasswordHash = hash
	if _, err = s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}
