package models

// Profile holds the bio and picture for a user. At most one per user.
type Profile struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Picture string `json:"picture"`
	Bio     string `json:"bio"`
}

// ProfileResponse resolves the owning user id to a username.
type ProfileResponse struct {
	ID      int    `json:"id"`
	User    string `json:"user"`
	Picture string `json:"picture"`
	Bio     string `json:"bio"`
}
