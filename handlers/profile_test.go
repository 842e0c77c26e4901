package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/fritter-app/fritter-backend/db"
)

func TestProfileRoundTrip(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	token := tokenFor(t, alice.ID)

	rr := do(t, srv, "POST", "/api/profile", token, map[string]string{
		"picture": "https://example.com/alice.png",
		"bio":     "hello there",
	})
	wantStatus(t, rr, http.StatusCreated)

	rr = do(t, srv, "GET", fmt.Sprintf("/api/profile?userId=%d", alice.ID), token, nil)
	wantStatus(t, rr, http.StatusOK)
	var resp struct {
		User    string `json:"user"`
		Picture string `json:"picture"`
		Bio     string `json:"bio"`
	}
	decode(t, rr, &resp)
	if resp.User != "alice" || resp.Bio != "hello there" {
		t.Errorf("profile = %+v", resp)
	}

	wantStatus(t, do(t, srv, "DELETE", "/api/profile", token, nil), http.StatusOK)
	rr = do(t, srv, "GET", fmt.Sprintf("/api/profile?userId=%d", alice.ID), token, nil)
	wantStatus(t, rr, http.StatusNotFound)
}

func TestGetProfilesRequiresLogin(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)

	wantStatus(t, do(t, srv, "GET", "/api/profile", "", nil), http.StatusForbidden)
	wantStatus(t, do(t, srv, "GET", "/api/profile?userId=1", "", nil), http.StatusForbidden)
}

func TestCreateProfileTwiceConflicts(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	token := tokenFor(t, alice.ID)

	wantStatus(t, do(t, srv, "POST", "/api/profile", token, map[string]string{"bio": "one"}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/profile", token, map[string]string{"bio": "two"}), http.StatusConflict)
}

func TestProfileValidation(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	token := tokenFor(t, alice.ID)

	t.Run("bio over 140", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/profile", token, map[string]string{"bio": strings.Repeat("a", 141)})
		wantStatus(t, rr, http.StatusRequestEntityTooLarge)
	})
	t.Run("blank picture", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/profile", token, map[string]string{"picture": "   "})
		wantStatus(t, rr, http.StatusBadRequest)
	})
	t.Run("empty body is fine", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/profile", token, nil)
		wantStatus(t, rr, http.StatusCreated)
	})
	t.Run("multibyte bio at the limit", func(t *testing.T) {
		delete(store.Profiles, alice.ID)
		rr := do(t, srv, "POST", "/api/profile", token, map[string]string{"bio": strings.Repeat("é", 140)})
		wantStatus(t, rr, http.StatusCreated)
	})
}

// Updating just the bio must leave the picture untouched.
func TestUpdateProfilePartialPatch(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	token := tokenFor(t, alice.ID)

	wantStatus(t, do(t, srv, "POST", "/api/profile", token, map[string]string{
		"picture": "https://example.com/alice.png",
		"bio":     "original bio",
	}), http.StatusCreated)

	wantStatus(t, do(t, srv, "PUT", "/api/profile", token, map[string]string{"bio": "new bio"}), http.StatusOK)

	profile, _ := store.FindProfileByUserID(alice.ID)
	if profile.Bio != "new bio" {
		t.Errorf("bio = %q, want new bio", profile.Bio)
	}
	if profile.Picture != "https://example.com/alice.png" {
		t.Errorf("picture = %q, want unchanged", profile.Picture)
	}
}

func TestUpdateProfileWithoutOne(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")

	rr := do(t, srv, "PUT", "/api/profile", tokenFor(t, alice.ID), map[string]string{"bio": "x"})
	wantStatus(t, rr, http.StatusForbidden)
}

func TestGetAllProfiles(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	wantStatus(t, do(t, srv, "POST", "/api/profile", tokenFor(t, alice.ID), map[string]string{"bio": "a"}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/profile", tokenFor(t, bob.ID), map[string]string{"bio": "b"}), http.StatusCreated)

	rr := do(t, srv, "GET", "/api/profile", tokenFor(t, alice.ID), nil)
	wantStatus(t, rr, http.StatusOK)
	var profiles []struct {
		User string `json:"user"`
	}
	decode(t, rr, &profiles)
	if len(profiles) != 2 {
		t.Errorf("len = %d, want 2", len(profiles))
	}
}

func TestGetProfileForUnknownUser(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")

	rr := do(t, srv, "GET", "/api/profile?userId=9999", tokenFor(t, alice.ID), nil)
	wantStatus(t, rr, http.StatusNotFound)
}
