package response

type PenaltyResponse struct {
	UserID    uint `json:"user_id"`
	Penalized bool `json:"penalized"`
}
