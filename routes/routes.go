package routes

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fritter-app/fritter-backend/router"
)

// Init builds the full route table. Application endpoints live under
// /api; /metrics serves the Prometheus scrape endpoint.
func Init(env *router.Env) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	CreateUserRoutes(env, api)
	CreateFreetRoutes(env, api)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}
