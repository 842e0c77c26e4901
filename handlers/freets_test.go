package handlers_test

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/fritter-app/fritter-backend/db"
)

func TestCreateFreet(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	token := tokenFor(t, alice.ID)

	rr := do(t, srv, "POST", "/api/freets", token, map[string]string{"content": "first freet"})
	wantStatus(t, rr, http.StatusCreated)
	var resp struct {
		Freet struct {
			Author  string `json:"author"`
			Content string `json:"content"`
		} `json:"freet"`
	}
	decode(t, rr, &resp)
	if resp.Freet.Author != "alice" || resp.Freet.Content != "first freet" {
		t.Errorf("freet = %+v", resp.Freet)
	}

	t.Run("empty content", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/freets", token, map[string]string{"content": ""})
		wantStatus(t, rr, http.StatusBadRequest)
	})
	t.Run("over 140", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/freets", token, map[string]string{"content": strings.Repeat("a", 141)})
		wantStatus(t, rr, http.StatusRequestEntityTooLarge)
	})
}

func TestGetFreetsByAuthor(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	seedFreet(t, store, alice.ID, "from alice")
	seedFreet(t, store, bob.ID, "from bob")

	rr := do(t, srv, "GET", "/api/freets?author=alice", "", nil)
	wantStatus(t, rr, http.StatusOK)
	var freets []struct {
		Author string `json:"author"`
	}
	decode(t, rr, &freets)
	if len(freets) != 1 || freets[0].Author != "alice" {
		t.Errorf("freets = %+v, want just alice's", freets)
	}

	t.Run("all freets", func(t *testing.T) {
		rr := do(t, srv, "GET", "/api/freets", "", nil)
		wantStatus(t, rr, http.StatusOK)
		freets = nil
		decode(t, rr, &freets)
		if len(freets) != 2 {
			t.Errorf("len = %d, want 2", len(freets))
		}
	})
	t.Run("unknown author", func(t *testing.T) {
		rr := do(t, srv, "GET", "/api/freets?author=nobody", "", nil)
		wantStatus(t, rr, http.StatusNotFound)
	})
}

func TestDeleteFreetCascadesInteractions(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	freet := seedFreet(t, store, alice.ID, "target")

	wantStatus(t, do(t, srv, "POST", "/api/interaction", tokenFor(t, bob.ID), map[string]string{
		"freetId": strconv.Itoa(freet.ID), "type": "reply", "content": "hi",
	}), http.StatusCreated)

	path := fmt.Sprintf("/api/freets/%d", freet.ID)

	t.Run("by someone else", func(t *testing.T) {
		rr := do(t, srv, "DELETE", path, tokenFor(t, bob.ID), nil)
		wantStatus(t, rr, http.StatusForbidden)
	})
	t.Run("by the author", func(t *testing.T) {
		rr := do(t, srv, "DELETE", path, tokenFor(t, alice.ID), nil)
		wantStatus(t, rr, http.StatusOK)
		if len(store.Freets) != 0 {
			t.Error("freet still present")
		}
		if len(store.Interactions) != 0 {
			t.Errorf("orphan interactions: %v", store.Interactions)
		}
	})
}
