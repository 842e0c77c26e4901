package handlers

import (
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
	"github.com/gorilla/mux"
)

// IsValidFreetContent requires nonempty content within 140 characters.
func IsValidFreetContent() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		content := rc.Body["content"]
		if content == "" {
			return router.Validation("Freet content must be nonempty.")
		}
		if utf8.RuneCountInString(content) > maxContentLength {
			return router.TooLarge("Freet content must be no more than 140 characters.")
		}
		return nil
	}
}

func CreateFreet() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		freet, err := rc.Store.CreateFreet(rc.UserID, rc.Body["content"])
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusCreated, struct {
			Message string               `json:"message"`
			Freet   models.FreetResponse `json:"freet"`
		}{
			Message: "Your freet was created successfully.",
			Freet:   shapeFreet(rc, freet),
		})
	}
}

// GetFreets returns every freet, or one author's freets when the author
// query parameter is present.
func GetFreets() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		var freets []models.Freet
		if author := r.URL.Query().Get("author"); author != "" {
			user, err := rc.Store.FindUserByUsername(author)
			if err != nil {
				return router.Internal(err)
			}
			if user == nil {
				return router.NotFound("A user with username " + author + " does not exist.")
			}
			freets, err = rc.Store.FindFreetsByAuthorID(user.ID)
			if err != nil {
				return router.Internal(err)
			}
		} else {
			var err error
			freets, err = rc.Store.FindAllFreets()
			if err != nil {
				return router.Internal(err)
			}
		}

		shaped := make([]models.FreetResponse, 0, len(freets))
		for _, freet := range freets {
			shaped = append(shaped, shapeFreet(rc, freet))
		}
		return router.WriteJSON(w, http.StatusOK, shaped)
	}
}

// FreetExistsParam checks the freetId path parameter resolves to a
// freet.
func FreetExistsParam() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		raw := mux.Vars(r)["freetId"]
		id, err := strconv.Atoi(raw)
		if err != nil {
			return router.NotFound("Freet with freet ID " + raw + " does not exist.")
		}
		freet, err := rc.Store.FindFreetByID(id)
		if err != nil {
			return router.Internal(err)
		}
		if freet == nil {
			return router.NotFound("Freet with freet ID " + raw + " does not exist.")
		}
		return nil
	}
}

// IsFreetAuthor authorizes freet deletion.
func IsFreetAuthor() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		id, _ := strconv.Atoi(mux.Vars(r)["freetId"])
		freet, err := rc.Store.FindFreetByID(id)
		if err != nil {
			return router.Internal(err)
		}
		if freet.AuthorID != rc.UserID {
			return router.Forbidden("Cannot modify other users' freets.")
		}
		return nil
	}
}

// DeleteFreet removes the freet together with its interactions.
func DeleteFreet() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		id, _ := strconv.Atoi(mux.Vars(r)["freetId"])
		if err := rc.Store.DeleteAllByFreetID(id); err != nil {
			return router.Internal(err)
		}
		if err := rc.Store.DeleteFreet(id); err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Your freet has been deleted successfully.",
		})
	}
}

func shapeFreet(rc *router.RequestContext, f models.Freet) models.FreetResponse {
	author := ""
	if user, err := rc.Store.FindUserByID(f.AuthorID); err == nil && user != nil {
		author = user.Username
	}
	return models.FreetResponse{
		ID:        f.ID,
		Author:    author,
		Content:   f.Content,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}
