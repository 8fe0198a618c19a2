package domain

type User struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	PenaltyPoints uint8  `json:"penalty_points"`
	IsAdmin       bool   `json:"is_admin"`

	// ConfirmationToken is set at registration and cleared once the account
	// is confirmed. A non-empty value blocks login.
	ConfirmationToken string `json:"-"`
}

func (u User) Confirmed() bool {
	return u.ConfirmationToken == ""
}
