package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzawadzki/ludoteka-api/internal/api/handler/v1/request"
)

func validRegisterRequest() request.RegisterRequest {
	return request.RegisterRequest{
		ID:              10,
		Name:            "Ada",
		Surname:         "Lovelace",
		Email:           "ada@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request.RegisterRequest)
		wantErr bool
	}{
		{"valid", func(r *request.RegisterRequest) {}, false},
		{"missing id", func(r *request.RegisterRequest) { r.ID = 0 }, true},
		{"bad email", func(r *request.RegisterRequest) { r.Email = "not-an-email" }, true},
		{"password too short", func(r *request.RegisterRequest) {
			r.Password = "pass1"
			r.ConfirmPassword = "pass1"
		}, true},
		{"password without digit", func(r *request.RegisterRequest) {
			r.Password = "passwords"
			r.ConfirmPassword = "passwords"
		}, true},
		{"password without letter", func(r *request.RegisterRequest) {
			r.Password = "12345678"
			r.ConfirmPassword = "12345678"
		}, true},
		{"confirm mismatch", func(r *request.RegisterRequest) {
			r.ConfirmPassword = "password2"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
