package models

// Interaction types. Content is meaningful only for replies; likes and
// dislikes store a single-space placeholder.
const (
	InteractionReply   = "reply"
	InteractionLike    = "like"
	InteractionDislike = "dislike"
)

// ValidInteractionType reports whether t is one of reply, like or dislike.
func ValidInteractionType(t string) bool {
	return t == InteractionReply || t == InteractionLike || t == InteractionDislike
}

type Interaction struct {
	ID       int    `json:"id"`
	AuthorID int    `json:"author_id"`
	Type     string `json:"type"`
	FreetID  int    `json:"freet_id"`
	Content  string `json:"content"`
}

// InteractionResponse resolves the author id to a username.
type InteractionResponse struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Type    string `json:"type"`
	FreetID int    `json:"freet_id"`
	Content string `json:"content"`
}
