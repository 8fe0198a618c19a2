package domain

// Favourite is a pure user-game membership marking a bookmarked game.
type Favourite struct {
	UserID uint `json:"user_id"`
	GameID uint `json:"game_id"`
}
