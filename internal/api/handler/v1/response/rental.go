package response

import (
	"github.com/mzawadzki/ludoteka-api/internal/domain"
)

// Rental is the wire form of an active rental. Dates are rendered in the
// YYYY-MM-DD layout they were submitted in.
type Rental struct {
	ID            uint    `json:"id"`
	GameID        uint    `json:"game_id"`
	UserID        uint    `json:"user_id"`
	RentalDate    string  `json:"rental_date"`
	ReturnDate    string  `json:"return_date"`
	PickedUp      bool    `json:"picked_up"`
	ExtensionDate *string `json:"extension_date,omitempty"`
}

func NewRental(r domain.Rental) Rental {
	resp := Rental{
		ID:         r.ID,
		GameID:     r.GameID,
		UserID:     r.UserID,
		RentalDate: r.RentalDate.Format(domain.DateLayout),
		ReturnDate: r.ReturnDate.Format(domain.DateLayout),
		PickedUp:   r.PickedUp,
	}
	if r.ExtensionDate != nil {
		formatted := r.ExtensionDate.Format(domain.DateLayout)
		resp.ExtensionDate = &formatted
	}

	return resp
}

type RentalListing struct {
	Rental
	Title         string `json:"title"`
	PhotoFilename string `json:"photo_filename"`
	Name          string `json:"name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	IsFavourite   bool   `json:"is_favourite"`
}

func NewRentalListings(listings []domain.RentalListing) []RentalListing {
	resp := make([]RentalListing, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, RentalListing{
			Rental:        NewRental(l.Rental),
			Title:         l.Title,
			PhotoFilename: l.PhotoFilename,
			Name:          l.Name,
			Surname:       l.Surname,
			IsFavourite:   l.IsFavourite,
		})
	}

	return resp
}

type HistoryEntry struct {
	ID         uint   `json:"id"`
	GameID     uint   `json:"game_id"`
	UserID     uint   `json:"user_id"`
	RentalDate string `json:"rental_date"`
	ReturnDate string `json:"return_date"`
	PickedUp   bool   `json:"picked_up"`
}

type HistoryListing struct {
	HistoryEntry
	Title         string `json:"title"`
	PhotoFilename string `json:"photo_filename"`
	Name          string `json:"name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	IsFavourite   bool   `json:"is_favourite"`
}

func NewHistoryListings(listings []domain.HistoryListing) []HistoryListing {
	resp := make([]HistoryListing, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, HistoryListing{
			HistoryEntry: HistoryEntry{
				ID:         l.ID,
				GameID:     l.GameID,
				UserID:     l.UserID,
				RentalDate: l.RentalDate.Format(domain.DateLayout),
				ReturnDate: l.ReturnDate.Format(domain.DateLayout),
				PickedUp:   l.PickedUp,
			},
			Title:         l.Title,
			PhotoFilename: l.PhotoFilename,
			Name:          l.Name,
			Surname:       l.Surname,
			IsFavourite:   l.IsFavourite,
		})
	}

	return resp
}
