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

func TestUserService_IsPenalized(t *testing.T) {
	repo := newFakeUserRepo(
		domain.User{ID: 1, Surname: "Lovelace", PenaltyPoints: 2},
		domain.User{ID: 2, Surname: "Hopper", PenaltyPoints: 3},
	)
	svc := service.NewUserService(repo)

	tests := []struct {
		name   string
		userID uint
		want   bool
	}{
		{"at threshold is fine", 1, false},
		{"above threshold is penalized", 2, true},
		{"unknown user is fine", 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsPenalized(context.Background(), tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newFakeUserRepo(
		domain.User{ID: 1, Surname: "Lovelace"},
		domain.User{ID: 2, Surname: "Hopper"},
		domain.User{ID: 3, Surname: "Curie"},
	)
	svc := service.NewUserService(repo)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Curie", users[0].Surname)
	assert.Equal(t, "Hopper", users[1].Surname)
	assert.Equal(t, "Lovelace", users[2].Surname)
}

func TestUserService_UpdateUser_KeepsPassword(t *testing.T) {
	hash, err := passwords.Hash("password1")
	require.NoError(t, err)

	repo := newFakeUserRepo(domain.User{
		ID:                1,
		Surname:           "Lovelace",
		Email:             "ada@example.com",
		PasswordHash:      hash,
		ConfirmationToken: "pending",
	})
	svc := service.NewUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), domain.User{
		ID:            1,
		Name:          "Ada",
		Surname:       "King",
		Email:         "ada@example.com",
		PenaltyPoints: 1,
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "King", updated.Surname)
	assert.Equal(t, hash, updated.PasswordHash)
	assert.Equal(t, "pending", updated.ConfirmationToken)
}

func TestUserService_UpdateUser_SetsNewPassword(t *testing.T) {
	hash, err := passwords.Hash("password1")
	require.NoError(t, err)

	repo := newFakeUserRepo(domain.User{ID: 1, Email: "ada@example.com", PasswordHash: hash})
	svc := service.NewUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), domain.User{
		ID:    1,
		Email: "ada@example.com",
	}, "password2")
	require.NoError(t, err)

	ok, err := passwords.Verify("password2", updated.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_UpdateUser_UnknownUser(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	_, err := svc.UpdateUser(context.Background(), domain.User{ID: 99}, "")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_UpdateUser_EmailConflict(t *testing.T) {
	repo := newFakeUserRepo(
		domain.User{ID: 1, Email: "ada@example.com"},
		domain.User{ID: 2, Email: "grace@example.com"},
	)
	svc := service.NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), domain.User{
		ID:    2,
		Email: "ada@example.com",
	}, "")
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: 1})
	svc := service.NewUserService(repo)

	require.NoError(t, svc.DeleteUser(context.Background(), 1))

	_, err := svc.GetUser(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
