package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user email already exists")
	ErrUserNotFound    = errors.New("user not found")
)

// User carries an externally assigned id (a membership card number), so the
// primary key is not auto-generated.
type User struct {
	ID uint `gorm:"primaryKey;autoIncrement:false"`

	Name    string `gorm:"not null"`
	Surname string `gorm:"not null"`
	Email   string `gorm:"unique;not null"`

	PasswordHash  string `gorm:"not null"`
	PenaltyPoints uint8  `gorm:"not null;default:0"`
	IsAdmin       bool   `gorm:"not null;default:false"`

	// Non-nil until the account is confirmed.
	ConfirmationToken *string
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `unique constraint "uni_users_email"`) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `unique constraint "uni_users_email"`) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) ListOrderedBySurname(ctx context.Context) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Order("surname ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Delete removes the user; rentals, history entries and favourites cascade
// at the storage layer.
func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
