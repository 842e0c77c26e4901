package handlers

import (
	"net/http"

	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
	"github.com/gorilla/mux"
)

// TargetUserExistsBody checks the `following` field of the request body
// names an existing user.
func TargetUserExistsBody() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		target := rc.Body["following"]
		if target == "" {
			return router.Validation("Provided follower username must be nonempty.")
		}
		user, err := rc.Store.FindUserByUsername(target)
		if err != nil {
			return router.Internal(err)
		}
		if user == nil {
			return router.NotFound("A user with username " + target + " does not exist.")
		}
		return nil
	}
}

// TargetUserExistsParam is the path-parameter variant for unfollow.
func TargetUserExistsParam() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		target := mux.Vars(r)["following"]
		if target == "" {
			return router.Validation("Provided follower username must be nonempty.")
		}
		user, err := rc.Store.FindUserByUsername(target)
		if err != nil {
			return router.Internal(err)
		}
		if user == nil {
			return router.NotFound("A user with username " + target + " does not exist.")
		}
		return nil
	}
}

// NotFollowingSelf rejects follow requests targeting the caller.
func NotFollowingSelf() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if rc.Body["following"] == rc.User.Username {
			return router.Forbidden("You cannot follow yourself.")
		}
		return nil
	}
}

func NotFollowingSelfParam() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if mux.Vars(r)["following"] == rc.User.Username {
			return router.Forbidden("You cannot unfollow yourself.")
		}
		return nil
	}
}

// EdgeDoesNotExist rejects following the same user twice.
func EdgeDoesNotExist() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		edge, err := rc.Store.FindEdge(rc.User.Username, rc.Body["following"])
		if err != nil {
			return router.Internal(err)
		}
		if edge != nil {
			return forbiddenConflict("You cannot follow this user more than once.")
		}
		return nil
	}
}

// EdgeExistsParam requires an existing edge before unfollowing.
func EdgeExistsParam() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		edge, err := rc.Store.FindEdge(rc.User.Username, mux.Vars(r)["following"])
		if err != nil {
			return router.Internal(err)
		}
		if edge == nil {
			return router.Forbidden("You cannot unfollow a user you do not follow.")
		}
		return nil
	}
}

// BarrierPasscodeValid gates the follow on the target user's barrier: no
// barrier means no passcode required; with one, the request must carry
// the exact stored passcode.
func BarrierPasscodeValid() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		barrier, err := rc.Store.FindBarrierByUsername(rc.Body["following"])
		if err != nil {
			return router.Internal(err)
		}
		if barrier == nil {
			return nil
		}
		passcode, ok := rc.Body["passcode"]
		if !ok || passcode == "" {
			return router.Validation("Missing passcode to follow.")
		}
		if passcode != barrier.Passcode {
			return router.Unauthorized("Invalid passcode credentials provided.")
		}
		return nil
	}
}

func CreateFollowing() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		target := rc.Body["following"]
		edge, err := rc.Store.CreateFollowing(rc.User.Username, target)
		if err != nil {
			// Concurrent duplicate writers lose to the unique index.
			if isDuplicate(err) {
				return forbiddenConflict("You cannot follow this user more than once.")
			}
			return router.Internal(err)
		}

		if rc.Env.Metrics != nil {
			rc.Env.Metrics.FollowRequests.WithLabelValues(r.URL.Path).Inc()
		}
		if rc.Env.Notifier != nil {
			if followee, err := rc.Store.FindUserByUsername(target); err == nil && followee != nil {
				go rc.Env.Notifier.NotifyNewFollower(followee.ID, rc.User.Username)
			}
		}

		return router.WriteJSON(w, http.StatusCreated, struct {
			Message   string                   `json:"message"`
			Following models.FollowingResponse `json:"following"`
		}{
			Message:   "Your following was created successfully.",
			Following: shapeFollowing(edge),
		})
	}
}

func DeleteFollowing() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if err := rc.Store.DeleteEdge(rc.User.Username, mux.Vars(r)["following"]); err != nil {
			return router.Internal(err)
		}
		if rc.Env.Metrics != nil {
			rc.Env.Metrics.UnfollowRequests.WithLabelValues(r.URL.Path).Inc()
		}
		return router.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Your following was deleted successfully.",
		})
	}
}

// ListFollowing returns everyone the caller follows.
func ListFollowing() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		edges, err := rc.Store.ListFollowing(rc.User.Username)
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, struct {
			Message   string                     `json:"message"`
			Following []models.FollowingResponse `json:"following"`
		}{
			Message:   "Users you follow:",
			Following: shapeFollowings(edges),
		})
	}
}

// ListFollowers returns everyone following the caller.
func ListFollowers() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		edges, err := rc.Store.ListFollowers(rc.User.Username)
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, struct {
			Message   string                     `json:"message"`
			Following []models.FollowingResponse `json:"following"`
		}{
			Message:   "Your list of followers:",
			Following: shapeFollowings(edges),
		})
	}
}

func shapeFollowing(f models.Following) models.FollowingResponse {
	return models.FollowingResponse{ID: f.ID, Username: f.Username, Following: f.Following}
}

func shapeFollowings(edges []models.Following) []models.FollowingResponse {
	shaped := make([]models.FollowingResponse, 0, len(edges))
	for _, f := range edges {
		shaped = append(shaped, shapeFollowing(f))
	}
	return shaped
}
