package routes

import (
	"github.com/gorilla/mux"

	"github.com/fritter-app/fritter-backend/handlers"
	"github.com/fritter-app/fritter-backend/router"
)

// CreateFreetRoutes mounts the freet and interaction endpoints.
func CreateFreetRoutes(env *router.Env, api *mux.Router) *mux.Router {
	api.Handle("/freets", router.Handle(env,
		handlers.GetFreets(),
	)).Methods("GET")
	api.Handle("/freets", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.IsValidFreetContent(),
		handlers.CreateFreet(),
	)).Methods("POST")
	api.Handle("/freets/{freetId}", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.FreetExistsParam(),
		handlers.IsFreetAuthor(),
		handlers.DeleteFreet(),
	)).Methods("DELETE")

	api.Handle("/interaction", router.Handle(env,
		handlers.IsUserLoggedInForFreetQuery(),
		handlers.FreetExistsQuery(),
		handlers.GetInteractions(),
	)).Methods("GET")
	api.Handle("/interaction", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.FreetExistsBody(),
		handlers.IsValidInteractionType(),
		handlers.IsValidReply(),
		handlers.OnlyOneLikeOrDislike(),
		handlers.CreateInteraction(),
	)).Methods("POST")
	api.Handle("/interaction/{interactionId}", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.ParseBody(),
		handlers.InteractionExistsParam(),
		handlers.IsFreetAuthorOfInteraction(),
		handlers.IsValidReplyContent(),
		handlers.UpdateInteraction(),
	)).Methods("PUT")
	api.Handle("/interaction/{interactionId}", router.Handle(env,
		handlers.IsUserLoggedIn(),
		handlers.IsAuthorExists(),
		handlers.InteractionExistsParam(),
		handlers.IsInteractionAuthor(),
		handlers.DeleteInteraction(),
	)).Methods("DELETE")

	return api
}
