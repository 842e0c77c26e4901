package handlers

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
	"github.com/gorilla/mux"
)

const maxContentLength = 140

// FreetExistsBody checks the freetId in the request body resolves to a
// freet. A malformed id counts as not found.
func FreetExistsBody() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		freetID, err := strconv.Atoi(rc.Body["freetId"])
		if err != nil {
			return router.NotFound("Freet with freet ID " + rc.Body["freetId"] + " does not exist.")
		}
		freet, err := rc.Store.FindFreetByID(freetID)
		if err != nil {
			return router.Internal(err)
		}
		if freet == nil {
			return router.NotFound("Freet with freet ID " + rc.Body["freetId"] + " does not exist.")
		}
		return nil
	}
}

// IsUserLoggedInForFreetQuery requires login for the freetId-scoped GET
// modes. The no-query list of every interaction stays open.
func IsUserLoggedInForFreetQuery() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if r.URL.Query().Get("freetId") == "" {
			return nil
		}
		return IsUserLoggedIn()(rc, w, r)
	}
}

// FreetExistsQuery validates the optional freetId query parameter: absent
// is fine, malformed is a bad request, unknown is not found.
func FreetExistsQuery() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		raw := r.URL.Query().Get("freetId")
		if raw == "" {
			return nil
		}
		freetID, err := strconv.Atoi(raw)
		if err != nil {
			return router.Validation("Invalid freet ID.")
		}
		freet, err := rc.Store.FindFreetByID(freetID)
		if err != nil {
			return router.Internal(err)
		}
		if freet == nil {
			return router.NotFound("Freet with freet ID " + raw + " does not exist.")
		}
		return nil
	}
}

// IsValidInteractionType requires type to be reply, like or dislike.
func IsValidInteractionType() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if !models.ValidInteractionType(rc.Body["type"]) {
			return router.NotFound("Not a valid type of interaction. Must be one of the following: reply, like, or dislike.")
		}
		return nil
	}
}

// IsValidReply validates reply content on create. Likes and dislikes
// carry no content and pass through.
func IsValidReply() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if rc.Body["type"] != models.InteractionReply {
			return nil
		}
		return checkReplyContent(rc.Body["content"])
	}
}

// IsValidReplyContent validates the new content on reply edits.
func IsValidReplyContent() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		return checkReplyContent(rc.Body["content"])
	}
}

func checkReplyContent(content string) *router.HTTPError {
	if content == "" {
		return router.NotFound("Not a valid reply. Must be nonempty.")
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return router.TooLarge("Reply content must be no more than 140 characters.")
	}
	return nil
}

// OnlyOneLikeOrDislike enforces at most one like-or-dislike per
// (author, freet) pair. Replies are unlimited.
func OnlyOneLikeOrDislike() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if rc.Body["type"] != models.InteractionLike && rc.Body["type"] != models.InteractionDislike {
			return nil
		}
		freetID, _ := strconv.Atoi(rc.Body["freetId"])
		held, err := rc.Store.HasLikeOrDislike(rc.UserID, freetID)
		if err != nil {
			return router.Internal(err)
		}
		if held {
			return router.Forbidden("Already liked or disliked - delete that interaction first before liking or disliking again.")
		}
		return nil
	}
}

// InteractionExistsParam checks the interactionId path parameter
// resolves to an interaction.
func InteractionExistsParam() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		raw := mux.Vars(r)["interactionId"]
		id, err := strconv.Atoi(raw)
		if err != nil {
			return router.NotFound("Interaction with interaction ID " + raw + " does not exist.")
		}
		interaction, err := rc.Store.FindInteractionByID(id)
		if err != nil {
			return router.Internal(err)
		}
		if interaction == nil {
			return router.NotFound("Interaction with interaction ID " + raw + " does not exist.")
		}
		return nil
	}
}

// IsFreetAuthorOfInteraction authorizes reply edits: the caller must be
// the author of the freet the interaction attaches to, not of the
// interaction itself. Deletes use IsInteractionAuthor instead; the
// asymmetry is intentional per route.
func IsFreetAuthorOfInteraction() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		id, _ := strconv.Atoi(mux.Vars(r)["interactionId"])
		interaction, err := rc.Store.FindInteractionByID(id)
		if err != nil {
			return router.Internal(err)
		}
		freet, err := rc.Store.FindFreetByID(interaction.FreetID)
		if err != nil {
			return router.Internal(err)
		}
		if freet == nil || freet.AuthorID != rc.UserID {
			return router.Forbidden("Cannot modify other users' replies.")
		}
		return nil
	}
}

// IsInteractionAuthor authorizes deletes.
func IsInteractionAuthor() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		id, _ := strconv.Atoi(mux.Vars(r)["interactionId"])
		interaction, err := rc.Store.FindInteractionByID(id)
		if err != nil {
			return router.Internal(err)
		}
		if interaction.AuthorID != rc.UserID {
			return router.Forbidden("Cannot modify other users' interactions.")
		}
		return nil
	}
}

// GetInteractions serves the three mutually exclusive query modes: no
// freetId returns every interaction, freetId+interType returns a count,
// freetId alone returns the freet's interactions.
func GetInteractions() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		raw := r.URL.Query().Get("freetId")
		if raw == "" {
			interactions, err := rc.Store.FindAllInteractions()
			if err != nil {
				return router.Internal(err)
			}
			return router.WriteJSON(w, http.StatusOK, shapeInteractions(rc, interactions))
		}

		freetID, _ := strconv.Atoi(raw)
		if interType := r.URL.Query().Get("interType"); interType != "" {
			count, err := rc.Store.CountInteractionsByType(freetID, interType)
			if err != nil {
				return router.Internal(err)
			}
			return router.WriteJSON(w, http.StatusOK, count)
		}

		interactions, err := rc.Store.FindInteractionsByFreetID(freetID)
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, shapeInteractions(rc, interactions))
	}
}

func CreateInteraction() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		freetID, _ := strconv.Atoi(rc.Body["freetId"])

		// Likes and dislikes store a single-space placeholder.
		content := rc.Body["content"]
		if content == "" {
			content = " "
		}

		interaction, err := rc.Store.CreateInteraction(rc.UserID, rc.Body["type"], freetID, content)
		if err != nil {
			return router.Internal(err)
		}

		if rc.Env.Metrics != nil {
			rc.Env.Metrics.InteractionsCreated.WithLabelValues(interaction.Type).Inc()
		}
		if rc.Env.Notifier != nil && interaction.Type == models.InteractionReply {
			if freet, err := rc.Store.FindFreetByID(freetID); err == nil && freet != nil {
				go rc.Env.Notifier.NotifyNewReply(freet.AuthorID, rc.User.Username, interaction.Content)
			}
		}

		return router.WriteJSON(w, http.StatusCreated, struct {
			Message     string                     `json:"message"`
			Interaction models.InteractionResponse `json:"interaction"`
		}{
			Message:     "Your interaction was created successfully.",
			Interaction: shapeInteraction(rc, interaction),
		})
	}
}

func UpdateInteraction() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		id, _ := strconv.Atoi(mux.Vars(r)["interactionId"])
		interaction, err := rc.Store.UpdateInteractionContent(id, rc.Body["content"])
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, struct {
			Message     string                     `json:"message"`
			Interaction models.InteractionResponse `json:"interaction"`
		}{
			Message:     "Your reply was updated successfully.",
			Interaction: shapeInteraction(rc, interaction),
		})
	}
}

func DeleteInteraction() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		id, _ := strconv.Atoi(mux.Vars(r)["interactionId"])
		if err := rc.Store.DeleteInteraction(id); err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Your interaction has been deleted successfully.",
		})
	}
}

// shapeInteraction resolves the author id to a username through the user
// directory.
func shapeInteraction(rc *router.RequestContext, in models.Interaction) models.InteractionResponse {
	author := ""
	if user, err := rc.Store.FindUserByID(in.AuthorID); err == nil && user != nil {
		author = user.Username
	}
	return models.InteractionResponse{
		ID:      in.ID,
		Author:  author,
		Type:    in.Type,
		FreetID: in.FreetID,
		Content: in.Content,
	}
}

func shapeInteractions(rc *router.RequestContext, interactions []models.Interaction) []models.InteractionResponse {
	shaped := make([]models.InteractionResponse, 0, len(interactions))
	for _, in := range interactions {
		shaped = append(shaped, shapeInteraction(rc, in))
	}
	return shaped
}
