package routes

import (
	"github.com/gorilla/mux"

	"github.com/fritter-app/fritter-backend/handlers"
	"github.com/fritter-app/fritter-backend/router"
)

// CreateUserRoutes mounts the account, follower barrier, following and
// profile endpoints. Each route is a chain of validators ending in the
// terminal handler; the first failing link writes the error.
func CreateUserRoutes(env *router.Env, api *mux.Router) *mux.Router {
	api.Handle("/auth/register", router.Handle(env,
		handlers.ParseBody(),
		handlers.Register(),
	)).Methods("POST")
	api.Handle("/auth/login", router.Handle(env,
		handlers.ParseBody(),
		handlers.Login(),
	)).Methods("POST")
	api.Handle("/auth/device", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.ParseBody(),
		handlers.RegisterDeviceToken(),
	)).Methods("POST")
	api.Handle("/auth/account", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.DeleteAccount(),
	)).Methods("DELETE")

	api.Handle("/followerBarrier", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.IsValidPasscode(),
		handlers.BarrierDoesNotExist(),
		handlers.CreateFollowerBarrier(),
	)).Methods("POST")
	api.Handle("/followerBarrier", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.IsValidPasscode(),
		handlers.BarrierExists(),
		handlers.UpdateFollowerBarrier(),
	)).Methods("PUT")
	api.Handle("/followerBarrier", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.BarrierExists(),
		handlers.DeleteFollowerBarrier(),
	)).Methods("DELETE")

	api.Handle("/following/following", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ListFollowing(),
	)).Methods("GET")
	api.Handle("/following/followers", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ListFollowers(),
	)).Methods("GET")
	api.Handle("/following", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.TargetUserExistsBody(),
		handlers.NotFollowingSelf(),
		handlers.EdgeDoesNotExist(),
		handlers.BarrierPasscodeValid(),
		handlers.CreateFollowing(),
	)).Methods("POST")
	api.Handle("/following/{following}", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.NotFollowingSelfParam(),
		handlers.TargetUserExistsParam(),
		handlers.EdgeExistsParam(),
		handlers.DeleteFollowing(),
	)).Methods("DELETE")

	api.Handle("/profile", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.IsValidBio(),
		handlers.IsValidPicture(),
		handlers.ProfileDoesNotExist(),
		handlers.CreateProfile(),
	)).Methods("POST")
	api.Handle("/profile", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.GetProfiles(),
	)).Methods("GET")
	api.Handle("/profile", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.IsValidBio(),
		handlers.IsValidPicture(),
		handlers.ProfileExists(),
		handlers.UpdateProfile(),
	)).Methods("PUT")
	api.Handle("/profile", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ProfileExists(),
		handlers.DeleteProfile(),
	)).Methods("DELETE")

	return api
}
