package response

import "github.com/mzawadzki/ludoteka-api/internal/domain"

// GameListing is the catalogue row for a regular user. ReturnDate is absent
// when the game is available.
type GameListing struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	PhotoFilename string  `json:"photo_filename"`
	MinPlayers    uint8   `json:"min_players"`
	MaxPlayers    uint8   `json:"max_players"`
	MinPlaytime   uint16  `json:"min_playtime"`
	MaxPlaytime   uint16  `json:"max_playtime"`
	ReturnDate    *string `json:"return_date,omitempty"`
	IsFavourite   bool    `json:"is_favourite"`
}

func NewGameListings(listings []domain.GameListing) []GameListing {
	resp := make([]GameListing, 0, len(listings))
	for _, l := range listings {
		row := GameListing{
			ID:            l.ID,
			Title:         l.Title,
			PhotoFilename: l.PhotoFilename,
			MinPlayers:    l.MinPlayers,
			MaxPlayers:    l.MaxPlayers,
			MinPlaytime:   l.MinPlaytime,
			MaxPlaytime:   l.MaxPlaytime,
			IsFavourite:   l.IsFavourite,
		}
		if l.ReturnDate != nil {
			formatted := l.ReturnDate.Format(domain.DateLayout)
			row.ReturnDate = &formatted
		}
		resp = append(resp, row)
	}

	return resp
}

// GameAdminListing pairs the full record with the active rental, if any.
type GameAdminListing struct {
	domain.BoardGame
	Rental *Rental `json:"rental,omitempty"`
}

func NewGameAdminListings(listings []domain.GameAdminListing) []GameAdminListing {
	resp := make([]GameAdminListing, 0, len(listings))
	for _, l := range listings {
		row := GameAdminListing{BoardGame: l.BoardGame}
		if l.Rental != nil {
			rental := NewRental(*l.Rental)
			row.Rental = &rental
		}
		resp = append(resp, row)
	}

	return resp
}
