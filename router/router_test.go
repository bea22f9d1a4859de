// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/one-pick/identity"
	"github.com/danielhkuo/one-pick/models"
	"github.com/danielhkuo/one-pick/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.GetTestConfig())

	t.Run("preflight", func(t *testing.T) {
		req := testutil.MakeRequest("OPTIONS", "/api/one-pick/submit", nil,
			map[string]string{"Origin": "http://localhost:3000"})
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("expected origin echo, got %q", got)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("credentials must be allowed for the identity cookie")
		}
	})

	t.Run("simple request", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Error("expected CORS headers on routed responses")
		}
	})
}

func TestMethodRouting(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/one-pick/submit", nil, nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET on submit, got %d", w.Code)
	}
}

// TestVoteLifecycle drives the full submit -> verify -> change -> verify
// flow through the router, carrying the identity cookie like a browser.
func TestVoteLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.CreateTestPeriod(t, conn, "2026 Q1", models.PeriodActive)
	mux := NewRouter(conn, testutil.GetTestConfig())

	orderID := testutil.OrderID("1478489")

	// Submit; capture the minted cookie and change key.
	submit := httptest.NewRecorder()
	mux.ServeHTTP(submit, testutil.MakeRequest("POST", "/api/one-pick/submit",
		models.SubmitVoteRequest{OrderID: orderID, CandidateID: "3"}, nil))
	testutil.AssertStatus(t, submit, http.StatusOK)

	var submitted models.SubmitVoteResponse
	testutil.DecodeSuccess(t, submit, &submitted)

	var cookie string
	for _, c := range submit.Result().Cookies() {
		if c.Name == identity.CookieName {
			cookie = c.Name + "=" + c.Value
		}
	}
	if cookie == "" {
		t.Fatal("submit did not set the identity cookie")
	}

	// Verify before the change.
	verify := httptest.NewRecorder()
	mux.ServeHTTP(verify, testutil.MakeRequest("GET", "/api/one-pick/verify?order_id="+orderID, nil, nil))
	testutil.AssertStatus(t, verify, http.StatusOK)

	var before models.VerifyVoteResponse
	testutil.DecodeSuccess(t, verify, &before)
	if before.Vote.CandidateID != "3" || !before.CanChange {
		t.Errorf("unexpected pre-change state: %+v", before)
	}

	// Change with the issued key.
	change := httptest.NewRecorder()
	mux.ServeHTTP(change, testutil.MakeRequest("POST", "/api/one-pick/change",
		models.ChangeVoteRequest{OrderID: orderID, CandidateID: "7", ChangeKey: submitted.ChangeKey},
		map[string]string{"Cookie": cookie}))
	testutil.AssertStatus(t, change, http.StatusOK)

	// Verify after the change.
	verify = httptest.NewRecorder()
	mux.ServeHTTP(verify, testutil.MakeRequest("GET", "/api/one-pick/verify?order_id="+orderID, nil, nil))
	testutil.AssertStatus(t, verify, http.StatusOK)

	var after models.VerifyVoteResponse
	testutil.DecodeSuccess(t, verify, &after)
	if after.Vote.CandidateID != "7" || !after.HasChanged || after.CanChange {
		t.Errorf("unexpected post-change state: %+v", after)
	}

	// The leaderboard reflects the changed vote.
	board := httptest.NewRecorder()
	mux.ServeHTTP(board, testutil.MakeRequest("GET", "/api/one-pick/leaderboard", nil, nil))
	testutil.AssertStatus(t, board, http.StatusOK)

	var lb models.LeaderboardResponse
	testutil.DecodeSuccess(t, board, &lb)
	if lb.TotalVotes != 1 {
		t.Errorf("expected 1 total vote, got %d", lb.TotalVotes)
	}
	if lb.Leaderboard[0].CandidateID != "7" || lb.Leaderboard[0].VoteCount != 1 {
		t.Errorf("unexpected leader: %+v", lb.Leaderboard[0])
	}

	// Periods endpoint lists the active period.
	periods := httptest.NewRecorder()
	mux.ServeHTTP(periods, testutil.MakeRequest("GET", "/api/one-pick/periods", nil, nil))
	testutil.AssertStatus(t, periods, http.StatusOK)

	var list models.PeriodListResponse
	testutil.DecodeSuccess(t, periods, &list)
	if len(list.Periods) != 1 || list.Periods[0].Name != "2026 Q1" {
		t.Errorf("unexpected period list: %+v", list.Periods)
	}
}
