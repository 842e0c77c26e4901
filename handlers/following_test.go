package handlers_test

import (
	"net/http"
	"testing"

	"github.com/fritter-app/fritter-backend/db"
)

func TestFollowUnfollowRoundTrip(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	seedUser(t, store, "bob")
	token := tokenFor(t, alice.ID)

	rr := do(t, srv, "POST", "/api/following", token, map[string]string{"following": "bob"})
	wantStatus(t, rr, http.StatusCreated)

	var listResp struct {
		Following []struct {
			Username  string `json:"username"`
			Following string `json:"following"`
		} `json:"following"`
	}
	rr = do(t, srv, "GET", "/api/following/following", token, nil)
	wantStatus(t, rr, http.StatusOK)
	decode(t, rr, &listResp)
	if len(listResp.Following) != 1 || listResp.Following[0].Following != "bob" {
		t.Fatalf("following list = %+v, want one edge to bob", listResp.Following)
	}

	wantStatus(t, do(t, srv, "DELETE", "/api/following/bob", token, nil), http.StatusOK)

	rr = do(t, srv, "GET", "/api/following/following", token, nil)
	listResp.Following = nil
	decode(t, rr, &listResp)
	if len(listResp.Following) != 0 {
		t.Errorf("following list after unfollow = %+v, want empty", listResp.Following)
	}
}

func TestListFollowers(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	wantStatus(t, do(t, srv, "POST", "/api/following", tokenFor(t, bob.ID), map[string]string{"following": "alice"}), http.StatusCreated)

	rr := do(t, srv, "GET", "/api/following/followers", tokenFor(t, alice.ID), nil)
	wantStatus(t, rr, http.StatusOK)
	var resp struct {
		Following []struct {
			Username string `json:"username"`
		} `json:"following"`
	}
	decode(t, rr, &resp)
	if len(resp.Following) != 1 || resp.Following[0].Username != "bob" {
		t.Errorf("followers = %+v, want bob", resp.Following)
	}
}

func TestFollowRejections(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	token := tokenFor(t, alice.ID)

	t.Run("unknown target", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", token, map[string]string{"following": "nobody"})
		wantStatus(t, rr, http.StatusNotFound)
	})
	t.Run("empty target", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", token, map[string]string{})
		wantStatus(t, rr, http.StatusBadRequest)
	})
	t.Run("self", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", token, map[string]string{"following": "alice"})
		wantStatus(t, rr, http.StatusForbidden)
	})
	t.Run("duplicate edge", func(t *testing.T) {
		wantStatus(t, do(t, srv, "POST", "/api/following", token, map[string]string{"following": "bob"}), http.StatusCreated)
		rr := do(t, srv, "POST", "/api/following", token, map[string]string{"following": "bob"})
		wantStatus(t, rr, http.StatusForbidden)
		var errResp struct {
			Code string `json:"error_code"`
		}
		decode(t, rr, &errResp)
		if errResp.Code != "CONFLICT" {
			t.Errorf("error_code = %q, want CONFLICT", errResp.Code)
		}
	})
	t.Run("unfollow self", func(t *testing.T) {
		rr := do(t, srv, "DELETE", "/api/following/alice", token, nil)
		wantStatus(t, rr, http.StatusForbidden)
	})
	t.Run("unfollow without edge", func(t *testing.T) {
		rr := do(t, srv, "DELETE", "/api/following/alice", tokenFor(t, bob.ID), nil)
		wantStatus(t, rr, http.StatusForbidden)
	})
}

func TestFollowThroughBarrier(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	// Bob gates his followers behind a passcode.
	wantStatus(t, do(t, srv, "POST", "/api/followerBarrier", tokenFor(t, bob.ID), map[string]string{"passcode": "sesame"}), http.StatusCreated)

	aliceToken := tokenFor(t, alice.ID)

	t.Run("missing passcode", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", aliceToken, map[string]string{"following": "bob"})
		wantStatus(t, rr, http.StatusBadRequest)
	})
	t.Run("wrong passcode", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", aliceToken, map[string]string{"following": "bob", "passcode": "guess"})
		wantStatus(t, rr, http.StatusUnauthorized)
	})
	t.Run("correct passcode", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", aliceToken, map[string]string{"following": "bob", "passcode": "sesame"})
		wantStatus(t, rr, http.StatusCreated)
	})
	t.Run("second attempt conflicts before the barrier check", func(t *testing.T) {
		rr := do(t, srv, "POST", "/api/following", aliceToken, map[string]string{"following": "bob"})
		wantStatus(t, rr, http.StatusForbidden)
	})
}

// The barrier consulted is the target's, not the follower's own.
func TestBarrierGatesTargetNotFollower(t *testing.T) {
	store := db.NewMock()
	srv := newServer(t, store)
	alice := seedUser(t, store, "alice")
	seedUser(t, store, "bob")
	token := tokenFor(t, alice.ID)

	// Alice has a barrier; Bob does not. Alice can still follow Bob
	// without any passcode.
	wantStatus(t, do(t, srv, "POST", "/api/followerBarrier", token, map[string]string{"passcode": "mine"}), http.StatusCreated)

	rr := do(t, srv, "POST", "/api/following", token, map[string]string{"following": "bob"})
	wantStatus(t, rr, http.StatusCreated)
}
