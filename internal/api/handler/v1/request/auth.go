package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// passwordRegexPattern needs lookaheads, hence regexp2 rather than the
// standard library engine.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

func validatePassword(password, confirm string) error {
	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	if password != confirm {
		return errConfirmPasswordMismatch
	}

	return nil
}

// RegisterRequest carries the caller-assigned member id, matching the
// physical membership cards handed out at the venue.
type RegisterRequest struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password, req.ConfirmPassword)
}

type LoginRequest struct {
	UserID   uint   `json:"user_id"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type ChangePasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (req *ChangePasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password, req.ConfirmPassword)
}
