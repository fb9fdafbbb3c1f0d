package models

// User is a stored account. The hash stays server-side only.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// PublicUser is the client-facing shape of an account.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Public strips everything clients must not see.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
