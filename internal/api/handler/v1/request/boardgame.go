package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SaveBoardGameRequest creates or replaces a catalogue entry. The range and
// weight invariants are enforced by the catalogue service, not here.
type SaveBoardGameRequest struct {
	Title          string `json:"title"`
	Weight         uint16 `json:"weight"`
	PhotoFilename  string `json:"photo_filename"`
	MinPlayers     uint8  `json:"min_players"`
	MaxPlayers     uint8  `json:"max_players"`
	MinPlaytime    uint16 `json:"min_playtime"`
	MaxPlaytime    uint16 `json:"max_playtime"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

func (req *SaveBoardGameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.PhotoFilename, validation.Length(0, 255)),
	)
}
