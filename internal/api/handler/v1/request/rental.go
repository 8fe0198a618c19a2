package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SaveRentalRequest reserves a game or rewrites an existing rental. UserID 0
// means the caller rents for themselves; only admins may set another id.
// Dates use the YYYY-MM-DD layout and are parsed by the rental service.
type SaveRentalRequest struct {
	GameID     uint   `json:"game_id"`
	UserID     uint   `json:"user_id,omitempty"`
	RentalDate string `json:"rental_date"`
	ReturnDate string `json:"return_date"`
}

func (req *SaveRentalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GameID, validation.Required),
		validation.Field(&req.RentalDate, validation.Required),
		validation.Field(&req.ReturnDate, validation.Required),
	)
}

type ExtensionRequest struct {
	ExtensionDate string `json:"extension_date"`
}

func (req *ExtensionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ExtensionDate, validation.Required),
	)
}
