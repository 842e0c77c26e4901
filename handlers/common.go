package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fritter-app/fritter-backend/db"
	"github.com/fritter-app/fritter-backend/middleware"
	"github.com/fritter-app/fritter-backend/router"
)

type messageResponse struct {
	Message string `json:"message"`
}

// IsUserLoggedIn verifies the bearer token and threads the caller's id
// through the request context. Every chain starts with this link.
func IsUserLoggedIn() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		userID, err := middleware.UserIDFromRequest(r)
		if err != nil {
			return router.Forbidden("You must be logged in to perform this action.")
		}
		rc.UserID = userID
		return nil
	}
}

// IsAuthorExists resolves the authenticated id to a user record.
func IsAuthorExists() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		user, err := rc.Store.FindUserByID(rc.UserID)
		if err != nil {
			return router.Internal(err)
		}
		if user == nil {
			return router.NotFound("Your account no longer exists.")
		}
		rc.User = user
		return nil
	}
}

// ParseBody decodes the JSON request body into rc.Body. An empty body is
// fine; malformed JSON is not.
func ParseBody() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&rc.Body); err != nil && err != io.EOF {
			return router.Validation("Invalid request body.")
		}
		return nil
	}
}

// forbiddenConflict is the 403 flavor of a duplicate-record failure
// (barrier and follow-edge creates report conflicts as 403).
func forbiddenConflict(msg string) *router.HTTPError {
	return &router.HTTPError{Status: http.StatusForbidden, Message: msg, Code: router.ErrConflict}
}

func isDuplicate(err error) bool {
	return errors.Is(err, db.ErrDuplicate)
}
