package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fundvote/models"
	"fundvote/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	f := testutil.Setup(t)
	mux := NewRouter(f.Contract, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	f := testutil.Setup(t)
	mux := NewRouter(f.Contract, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "fundvote API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	f := testutil.Setup(t)
	mux := NewRouter(f.Contract, testutil.GetTestConfig())

	// Test that routes respond (handler is invoked)
	// Note: Some routes return 404 when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		// Health and root
		{"GET", "/health"},
		{"GET", "/"},

		// Lifecycle and admin routes
		{"POST", "/contract/initialize"},
		{"POST", "/admin/toggle-voting"},
		{"POST", "/admin/options"},

		// Voting
		{"POST", "/votes"},

		// Read-only projections
		{"GET", "/options"},
		{"GET", "/options/1"},
		{"GET", "/votes/0"},
		{"GET", "/voters/acct_test"},
		{"GET", "/status"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// Route should be matched (not 405 Method Not Allowed for these specific routes)
			// 400, 401, 404 are all valid responses depending on handler logic
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	f := testutil.Setup(t)
	mux := NewRouter(f.Contract, testutil.GetTestConfig())

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},  // Only GET is defined
		{"DELETE", "/votes"}, // Only POST is defined
		{"PUT", "/options"},  // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

// TestVotingFlow drives the whole voting lifecycle through the router:
// initialize, fund, vote, pause, verify projections.
func TestVotingFlow(t *testing.T) {
	admin := models.Address("acct_admin")
	recipient := models.Address("acct_recipient")
	alice := models.Address("acct_alice")
	bob := models.Address("acct_bob")

	f := testutil.Setup(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(f.Contract, cfg)

	f.Fund(alice, 1000)
	f.Fund(bob, 1000)

	// Initialize with two options.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/contract/initialize", models.InitializeRequest{
		Admin: admin,
		Options: []models.Option{
			testutil.Option(1, "Option A", recipient),
			testutil.Option(2, "Option B", recipient),
		},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Alice votes for option 2.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/votes", models.VoteRequest{
		Voter:    alice,
		OptionID: 2,
		Amount:   models.NewAmount(150),
		Token:    testutil.TestToken,
	}, map[string]string{"X-Auth-Token": testutil.AuthToken(alice)}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var voteResp models.VoteResponse
	testutil.AssertJSON(t, w, &voteResp)
	if voteResp.VoteIndex != 0 {
		t.Errorf("Expected vote_index 0, got %d", voteResp.VoteIndex)
	}

	// Bob votes for option 1.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/votes", models.VoteRequest{
		Voter:    bob,
		OptionID: 1,
		Amount:   models.NewAmount(100),
		Token:    testutil.TestToken,
	}, map[string]string{"X-Auth-Token": testutil.AuthToken(bob)}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Admin pauses voting; further votes are refused.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/admin/toggle-voting", models.ToggleVotingRequest{
		Admin: admin,
	}, map[string]string{"X-Auth-Token": testutil.AuthToken(admin)}))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/votes", models.VoteRequest{
		Voter:    "acct_carol",
		OptionID: 1,
		Amount:   models.NewAmount(10),
		Token:    testutil.TestToken,
	}, map[string]string{"X-Auth-Token": testutil.AuthToken("acct_carol")}))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Projections reflect the two recorded votes.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/options", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var all models.AllResultsResponse
	testutil.AssertJSON(t, w, &all)
	if len(all.Options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(all.Options))
	}
	if all.Options[0].VoteCount != 1 || all.Options[1].VoteCount != 1 {
		t.Errorf("Expected one vote per option, got %d and %d",
			all.Options[0].VoteCount, all.Options[1].VoteCount)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/voters/"+string(alice), nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var status models.VoterStatusResponse
	testutil.AssertJSON(t, w, &status)
	if !status.HasVoted || status.OptionID == nil || *status.OptionID != 2 {
		t.Errorf("Unexpected voter status: %+v", status)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/status", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var contractStatus models.ContractStatusResponse
	testutil.AssertJSON(t, w, &contractStatus)
	if !contractStatus.Initialized || contractStatus.Active {
		t.Errorf("Expected initialized and paused, got %+v", contractStatus)
	}
	if contractStatus.TotalVotes != 2 {
		t.Errorf("Expected 2 total votes, got %d", contractStatus.TotalVotes)
	}
}
