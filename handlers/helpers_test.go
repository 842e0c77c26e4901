package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/fritter-app/fritter-backend/db"
	"github.com/fritter-app/fritter-backend/middleware"
	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
	"github.com/fritter-app/fritter-backend/routes"
)

// newServer mounts the full route table over the given store, with
// metrics and notifications disabled.
func newServer(t *testing.T, store db.Store) *mux.Router {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return routes.Init(&router.Env{Store: store})
}

func seedUser(t *testing.T, store *db.MockStore, username string) models.User {
	t.Helper()
	user, err := store.CreateUser(username, "irrelevant-hash")
	if err != nil {
		t.Fatalf("seeding user %s: %v", username, err)
	}
	return user
}

func tokenFor(t *testing.T, userID int) string {
	t.Helper()
	token, err := middleware.IssueToken(userID)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

func do(t *testing.T, srv http.Handler, method, path, token string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), into); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
}

func wantStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rr.Code, want, rr.Body.String())
	}
}
