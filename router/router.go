package router

import (
	"encoding/json"
	"net/http"

	"github.com/fritter-app/fritter-backend/db"
	"github.com/fritter-app/fritter-backend/metrics"
	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/services"
	"github.com/sirupsen/logrus"
)

// Env holds the process-wide collaborators handed to every chain.
type Env struct {
	Store    db.Store
	Notifier services.Notifier
	Metrics  *metrics.Metrics
}

// RequestContext is the request-scoped state threaded through a chain:
// the authenticated caller and the decoded request body. Validators fill
// it in; later links and the final handler read from it.
type RequestContext struct {
	Env   *Env
	Store db.Store

	// UserID is set by the login validator, User by the author-exists
	// validator. Zero/nil until then.
	UserID int
	User   *models.User

	// Body holds the decoded JSON request body. All request fields on
	// this API are strings.
	Body map[string]string
}

// Handler is one link of a validation chain. A non-nil return
// short-circuits the rest of the chain and is written as the JSON error
// response.
type Handler func(rc *RequestContext, w http.ResponseWriter, r *http.Request) *HTTPError

// Handle composes an ordered chain of links into an http.Handler. The
// final link is expected to write the success response itself and
// return nil.
func Handle(env *Env, links ...Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := &RequestContext{
			Env:   env,
			Store: env.Store,
			Body:  make(map[string]string),
		}
		w.Header().Set("Content-Type", "application/json")

		for _, link := range links {
			e := link(rc, w, r)
			if e == nil {
				continue
			}
			if e.Status >= http.StatusInternalServerError {
				logrus.WithFields(logrus.Fields{
					"path":   r.URL.Path,
					"status": e.Status,
				}).WithError(e.IError).Error(e.Message)
			}
			if env.Metrics != nil {
				env.Metrics.BadRequests.WithLabelValues(r.URL.Path).Inc()
			}
			w.WriteHeader(e.Status)
			if err := json.NewEncoder(w).Encode(e); err != nil {
				logrus.WithError(err).Error("encoding error response")
			}
			return
		}

		if env.Metrics != nil {
			env.Metrics.SuccessfulRequests.WithLabelValues(r.URL.Path).Inc()
		}
	})
}

// WriteJSON encodes v with the given status. Used by the terminal link
// of each chain.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) *HTTPError {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("encoding response")
	}
	return nil
}
