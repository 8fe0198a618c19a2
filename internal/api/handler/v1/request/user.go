package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UpdateUserRequest overwrites the whole account record. An empty password
// keeps the current one.
type UpdateUserRequest struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	PenaltyPoints uint8  `json:"penalty_points"`
	IsAdmin       bool   `json:"is_admin"`
}

func (req *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
	if err != nil {
		return err
	}

	if req.Password != "" {
		return validatePassword(req.Password, req.Password)
	}

	return nil
}
