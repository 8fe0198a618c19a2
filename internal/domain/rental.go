package domain

import "time"

// Rental is an active rental. At most one exists per game. A non-nil
// ExtensionDate marks a pending return-date extension request; accepting it
// replaces ReturnDate and clears the marker, withdrawing it just clears the
// marker.
type Rental struct {
	ID            uint       `json:"id"`
	GameID        uint       `json:"game_id"`
	UserID        uint       `json:"user_id"`
	RentalDate    time.Time  `json:"-"`
	ReturnDate    time.Time  `json:"-"`
	PickedUp      bool       `json:"picked_up"`
	ExtensionDate *time.Time `json:"-"`
}

// RentalListing is a rental joined with its game, its renter and the
// caller's favourite flag, as shown on rental overviews.
type RentalListing struct {
	Rental
	Title         string `json:"title"`
	PhotoFilename string `json:"photo_filename"`
	Name          string `json:"name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	IsFavourite   bool   `json:"is_favourite"`
}

// HistoryEntry is a closed rental, archived verbatim from the active set
// minus any pending extension. Append-only.
type HistoryEntry struct {
	ID         uint      `json:"id"`
	GameID     uint      `json:"game_id"`
	UserID     uint      `json:"user_id"`
	RentalDate time.Time `json:"-"`
	ReturnDate time.Time `json:"-"`
	PickedUp   bool      `json:"picked_up"`
}

type HistoryListing struct {
	HistoryEntry
	Title         string `json:"title"`
	PhotoFilename string `json:"photo_filename"`
	Name          string `json:"name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	IsFavourite   bool   `json:"is_favourite"`
}
