package models

// Following is a directed follow edge: Username follows Following.
// The (username, following) pair is unique at the storage layer.
type Following struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Following string `json:"following"`
}

type FollowingResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Following string `json:"following"`
}
