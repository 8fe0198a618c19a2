package repository

import (
	"context"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	ListOrderedBySurname(ctx context.Context) ([]dao.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.ListOrderedBySurname(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListOrderedBySurname -> %w", err)
	}

	users := make([]domain.User, len(found))
	for i, u := range found {
		users[i] = r.daoToDomain(u)
	}

	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	var token *string
	if u.ConfirmationToken != "" {
		t := u.ConfirmationToken
		token = &t
	}

	return dao.User{
		ID:                u.ID,
		Name:              u.Name,
		Surname:           u.Surname,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		PenaltyPoints:     u.PenaltyPoints,
		IsAdmin:           u.IsAdmin,
		ConfirmationToken: token,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	token := ""
	if u.ConfirmationToken != nil {
		token = *u.ConfirmationToken
	}

	return domain.User{
		ID:                u.ID,
		Name:              u.Name,
		Surname:           u.Surname,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		PenaltyPoints:     u.PenaltyPoints,
		IsAdmin:           u.IsAdmin,
		ConfirmationToken: token,
	}
}
