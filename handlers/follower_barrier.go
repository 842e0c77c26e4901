package handlers

import (
	"net/http"
	"regexp"
	"unicode/utf8"

	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
)

// A passcode is a nonempty string without whitespace, at most 15 chars.
var passcodeRegex = regexp.MustCompile(`^\S+$`)

// IsValidPasscode validates the passcode in the request body.
func IsValidPasscode() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		passcode := rc.Body["passcode"]
		if !passcodeRegex.MatchString(passcode) {
			return router.Validation("Passcode must be a nonempty string without spaces.")
		}
		if utf8.RuneCountInString(passcode) > 15 {
			return router.TooLarge("Passcode must be no more than 15 characters.")
		}
		return nil
	}
}

// BarrierDoesNotExist rejects a second barrier for the same user.
func BarrierDoesNotExist() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		barrier, err := rc.Store.FindBarrierByUsername(rc.User.Username)
		if err != nil {
			return router.Internal(err)
		}
		if barrier != nil {
			return forbiddenConflict("You already have a follower barrier.")
		}
		return nil
	}
}

// BarrierExists requires that the caller has a barrier to update or delete.
func BarrierExists() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		barrier, err := rc.Store.FindBarrierByUsername(rc.User.Username)
		if err != nil {
			return router.Internal(err)
		}
		if barrier == nil {
			return router.Forbidden("You do not have a follower barrier.")
		}
		return nil
	}
}

func CreateFollowerBarrier() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		barrier, err := rc.Store.CreateBarrier(rc.User.Username, rc.Body["passcode"])
		if err != nil {
			if isDuplicate(err) {
				return forbiddenConflict("You already have a follower barrier.")
			}
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusCreated, struct {
			Message         string                         `json:"message"`
			FollowerBarrier models.FollowerBarrierResponse `json:"followerBarrier"`
		}{
			Message:         "Your follower barrier was created successfully.",
			FollowerBarrier: shapeBarrier(barrier),
		})
	}
}

func UpdateFollowerBarrier() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		barrier, err := rc.Store.UpdateBarrierPasscode(rc.User.Username, rc.Body["passcode"])
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, struct {
			Message         string                         `json:"message"`
			FollowerBarrier models.FollowerBarrierResponse `json:"followerBarrier"`
		}{
			Message:         "Your follower barrier passcode was updated successfully.",
			FollowerBarrier: shapeBarrier(barrier),
		})
	}
}

func DeleteFollowerBarrier() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if err := rc.Store.DeleteBarrier(rc.User.Username); err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Your follower barrier has been deleted successfully.",
		})
	}
}

// shapeBarrier strips the passcode from the client-facing record.
func shapeBarrier(b models.FollowerBarrier) models.FollowerBarrierResponse {
	return models.FollowerBarrierResponse{ID: b.ID, Username: b.Username}
}
