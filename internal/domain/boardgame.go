package domain

import "time"

// DateLayout is the wire format for all rental and extension dates.
const DateLayout = "2006-01-02"

type BoardGame struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Weight         uint16 `json:"weight"`
	PhotoFilename  string `json:"photo_filename"`
	MinPlayers     uint8  `json:"min_players"`
	MaxPlayers     uint8  `json:"max_players"`
	MinPlaytime    uint16 `json:"min_playtime"`
	MaxPlaytime    uint16 `json:"max_playtime"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// GameListing is the catalogue row shown to a regular user: weight and
// additional info are withheld, the rental status and the caller's
// favourite flag are added. ReturnDate is nil when the game is available.
type GameListing struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	PhotoFilename string     `json:"photo_filename"`
	MinPlayers    uint8      `json:"min_players"`
	MaxPlayers    uint8      `json:"max_players"`
	MinPlaytime   uint16     `json:"min_playtime"`
	MaxPlaytime   uint16     `json:"max_playtime"`
	ReturnDate    *time.Time `json:"-"`
	IsFavourite   bool       `json:"is_favourite"`
}

// GameAdminListing pairs the full record with the active rental, if any.
type GameAdminListing struct {
	BoardGame
	Rental *Rental `json:"rental,omitempty"`
}
