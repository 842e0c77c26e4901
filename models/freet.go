package models

import "time"

// Freet is the content unit interactions attach to.
type Freet struct {
	ID        int       `json:"id"`
	AuthorID  int       `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FreetResponse is the client-facing shape with the author id resolved
// to a username.
type FreetResponse struct {
	ID        int    `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
