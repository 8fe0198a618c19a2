package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/pkg/passwords"
	"github.com/mzawadzki/ludoteka-api/internal/service"
)

func registerTestUser(t *testing.T, svc *service.AuthService, id uint, email string) domain.User {
	t.Helper()

	user, err := svc.Register(context.Background(), domain.User{
		ID:      id,
		Name:    "Ada",
		Surname: "Lovelace",
		Email:   email,
	}, "password1")
	require.NoError(t, err)

	return user
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	user := registerTestUser(t, svc, 10, "ada@example.com")

	assert.Equal(t, uint(10), user.ID)
	assert.False(t, user.IsAdmin)
	assert.Zero(t, user.PenaltyPoints)
	assert.False(t, user.Confirmed())

	ok, err := passwords.Verify("password1", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	registerTestUser(t, svc, 10, "ada@example.com")

	_, err := svc.Register(context.Background(), domain.User{
		ID:      11,
		Name:    "Augusta",
		Surname: "King",
		Email:   "ada@example.com",
	}, "password1")
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestAuthService_Confirm(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	user := registerTestUser(t, svc, 10, "ada@example.com")

	err := svc.Confirm(context.Background(), 10, "wrong-token")
	assert.ErrorIs(t, err, service.ErrInvalidConfirmation)

	err = svc.Confirm(context.Background(), 10, user.ConfirmationToken)
	require.NoError(t, err)

	confirmed, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed())

	// The token is single use.
	err = svc.Confirm(context.Background(), 10, user.ConfirmationToken)
	assert.ErrorIs(t, err, service.ErrInvalidConfirmation)
}

func TestAuthService_Confirm_UnknownUser(t *testing.T) {
	svc := service.NewAuthService(newFakeUserRepo())

	err := svc.Confirm(context.Background(), 99, "token")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	user := registerTestUser(t, svc, 10, "ada@example.com")

	_, err := svc.Login(context.Background(), 10, "password1")
	assert.ErrorIs(t, err, service.ErrNotConfirmed)

	require.NoError(t, svc.Confirm(context.Background(), 10, user.ConfirmationToken))

	_, err = svc.Login(context.Background(), 10, "wrong-password")
	assert.ErrorIs(t, err, service.ErrWrongCredentials)

	_, err = svc.Login(context.Background(), 99, "password1")
	assert.ErrorIs(t, err, service.ErrWrongCredentials)

	loggedIn, err := svc.Login(context.Background(), 10, "password1")
	require.NoError(t, err)
	assert.Equal(t, uint(10), loggedIn.ID)
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	user := registerTestUser(t, svc, 10, "ada@example.com")
	require.NoError(t, svc.Confirm(context.Background(), 10, user.ConfirmationToken))

	require.NoError(t, svc.ChangePassword(context.Background(), 10, "password2"))

	_, err := svc.Login(context.Background(), 10, "password1")
	assert.ErrorIs(t, err, service.ErrWrongCredentials)

	_, err = svc.Login(context.Background(), 10, "password2")
	assert.NoError(t, err)
}
