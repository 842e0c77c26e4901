package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/fritter-app/fritter-backend/db"
)

func TestRegisterAndLogin(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)

	rr := do(t, srv, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice", "password": "hunter2",
	})
	wantStatus(t, rr, http.StatusCreated)
	var created struct {
		Token string `json:"token"`
		User  struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decode(t, rr, &created)
	if created.Token == "" || created.User.Username != "alice" {
		t.Fatalf("register response = %+v", created)
	}

	// The issued token works against an authenticated endpoint.
	rr = do(t, srv, "GET", "/api/following/following", created.Token, nil)
	wantStatus(t, rr, http.StatusOK)

	rr = do(t, srv, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice", "password": "hunter2",
	})
	wantStatus(t, rr, http.StatusOK)

	t.Run("wrong password", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/auth/login", "", map[string]string{
			"username": "alice", "password": "wrong",
		})
		wantStatus(t, rr, http.StatusUnauthorized)
	})
	t.Run("unknown user", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/auth/login", "", map[string]string{
			"username": "nobody", "password": "hunter2",
		})
		wantStatus(t, rr, http.StatusNotFound)
	})
	t.Run("duplicate username", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/auth/register", "", map[string]string{
			"username": "alice", "password": "other",
		})
		wantStatus(t, rr, http.StatusConflict)
	})
	t.Run("blank fields", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/auth/register", "", map[string]string{"username": "bob"})
		wantStatus(t, rr, http.StatusBadRequest)
	})
}

func TestRegisterDeviceToken(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	token := tokenFor(t, alice.ID)

	wantStatus(t, do(t, srv, "POST", "/api/auth/device", token, map[string]string{"token": "fcm-abc"}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/auth/device", token, map[string]string{"token": ""}), http.StatusBadRequest)

	tokens, _ := store.DeviceTokensByUserID(alice.ID)
	if len(tokens) != 1 || tokens[0] != "fcm-abc" {
		t.Errorf("tokens = %v, want [fcm-abc]", tokens)
	}
}

// Deleting an account takes its freets, their interactions, both
// directions of follow edges, the barrier and the profile with it.
func TestDeleteAccountCascades(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	aliceToken := tokenFor(t, alice.ID)
	bobToken := tokenFor(t, bob.ID)

	freet := seedFreet(t, store, alice.ID, "soon gone")
	wantStatus(t, do(t, srv, "POST", "/api/interaction", bobToken, map[string]string{
		"freetId": strconv.Itoa(freet.ID), "type": "like",
	}), http.StatusCreated)

	// Alice also likes Bob's freet; that row must go with her account.
	bobFreet := seedFreet(t, store, bob.ID, "staying")
	wantStatus(t, do(t, srv, "POST", "/api/interaction", aliceToken, map[string]string{
		"freetId": strconv.Itoa(bobFreet.ID), "type": "like",
	}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/following", aliceToken, map[string]string{"following": "bob"}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/following", bobToken, map[string]string{"following": "alice"}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/followerBarrier", aliceToken, map[string]string{"passcode": "abc"}), http.StatusCreated)
	wantStatus(t, do(t, srv, "POST", "/api/profile", aliceToken, map[string]string{"bio": "me"}), http.StatusCreated)

	wantStatus(t, do(t, srv, "DELETE", "/api/auth/account", aliceToken, nil), http.StatusOK)

	if len(store.Freets) != 1 {
		t.Errorf("freets left = %v, want just bob's", store.Freets)
	}
	if len(store.Interactions) != 0 {
		t.Errorf("orphan interactions left: %v", store.Interactions)
	}
	if len(store.Edges) != 0 {
		t.Errorf("orphan edges left: %v", store.Edges)
	}
	if _, ok := store.Barriers["alice"]; ok {
		t.Error("barrier left behind")
	}
	if profile, _ := store.FindProfileByUserID(alice.ID); profile != nil {
		t.Error("profile left behind")
	}
	if user, _ := store.FindUserByID(alice.ID); user != nil {
		t.Error("user record left behind")
	}

	// Bob is untouched.
	if user, _ := store.FindUserByID(bob.ID); user == nil {
		t.Error("unrelated user removed")
	}
}
