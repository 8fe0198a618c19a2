package response

import "github.com/mzawadzki/ludoteka-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
