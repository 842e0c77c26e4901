package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fritter-app/fritter-backend/middleware"
	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
)

type tokenResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

func Register() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		username := strings.TrimSpace(rc.Body["username"])
		password := rc.Body["password"]
		if username == "" || password == "" {
			return router.Validation("Username and password must be nonempty.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return router.Internal(err)
		}

		user, err := rc.Store.CreateUser(username, string(hash))
		if err != nil {
			if isDuplicate(err) {
				return router.Conflict("An account with this username already exists.")
			}
			return router.Internal(err)
		}

		token, err := middleware.IssueToken(user.ID)
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusCreated, tokenResponse{
			Message: "Your account was created successfully.",
			Token:   token,
			User:    user,
		})
	}
}

func Login() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		user, err := rc.Store.FindUserByUsername(rc.Body["username"])
		if err != nil {
			return router.Internal(err)
		}
		if user == nil {
			return router.NotFound("An account with this username does not exist.")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(rc.Body["password"])) != nil {
			return router.Unauthorized("Incorrect password.")
		}

		token, err := middleware.IssueToken(user.ID)
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, tokenResponse{
			Message: "You have logged in successfully.",
			Token:   token,
			User:    *user,
		})
	}
}

// RegisterDeviceToken stores an FCM device token so the account can
// receive push notifications on that device.
func RegisterDeviceToken() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		token := strings.TrimSpace(rc.Body["token"])
		if token == "" {
			return router.Validation("Device token must be nonempty.")
		}
		if err := rc.Store.SaveDeviceToken(rc.UserID, token); err != nil && !isDuplicate(err) {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusCreated, messageResponse{
			Message: "Device token registered successfully.",
		})
	}
}

// DeleteAccount removes the account and everything hanging off it:
// authored freets with their interactions, follow edges in both
// directions, the follower barrier, and the profile.
func DeleteAccount() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		freets, err := rc.Store.FindFreetsByAuthorID(rc.UserID)
		if err != nil {
			return router.Internal(err)
		}
		for _, freet := range freets {
			if err := rc.Store.DeleteAllByFreetID(freet.ID); err != nil {
				return router.Internal(err)
			}
			if err := rc.Store.DeleteFreet(freet.ID); err != nil {
				return router.Internal(err)
			}
		}

		interactions, err := rc.Store.FindInteractionsByAuthorID(rc.UserID)
		if err != nil {
			return router.Internal(err)
		}
		for _, interaction := range interactions {
			if err := rc.Store.DeleteInteraction(interaction.ID); err != nil {
				return router.Internal(err)
			}
		}

		if err := rc.Store.DeleteAllByFollower(rc.User.Username); err != nil {
			return router.Internal(err)
		}
		if err := rc.Store.DeleteAllByFollowee(rc.User.Username); err != nil {
			return router.Internal(err)
		}
		if err := rc.Store.DeleteBarrier(rc.User.Username); err != nil {
			return router.Internal(err)
		}
		if err := rc.Store.DeleteProfile(rc.UserID); err != nil {
			return router.Internal(err)
		}
		tokens, err := rc.Store.DeviceTokensByUserID(rc.UserID)
		if err != nil {
			return router.Internal(err)
		}
		for _, token := range tokens {
			if err := rc.Store.DeleteDeviceToken(token); err != nil {
				return router.Internal(err)
			}
		}
		if err := rc.Store.DeleteUser(rc.UserID); err != nil {
			return router.Internal(err)
		}

		return router.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Your account has been deleted successfully.",
		})
	}
}
