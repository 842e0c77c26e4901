package models

// User is the account record the rest of the slices reference by id. The
// password hash never leaves the server.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
