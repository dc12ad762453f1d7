// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func intPtr(v int) *int { return &v }

func TestCastVote(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewVotingHandler(env.ledger, env.cfg)
	env.seedProposals(t, []string{"alice", "bob"}, []string{"Lunch", "Dinner"}, ballot.VotingOpen)

	tests := []struct {
		name           string
		caller         string
		body           interface{}
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "valid vote",
			caller:         "alice",
			body:           models.CastVoteRequest{ProposalID: intPtr(1)},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "second vote rejected",
			caller:         "alice",
			body:           models.CastVoteRequest{ProposalID: intPtr(0)},
			expectedStatus: http.StatusConflict,
			expectedCode:   "already_voted",
		},
		{
			name:           "no such proposal",
			caller:         "bob",
			body:           models.CastVoteRequest{ProposalID: intPtr(5)},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "no_such_proposal",
		},
		{
			name:           "missing proposal_id",
			caller:         "bob",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unregistered voter",
			caller:         "mallory",
			body:           models.CastVoteRequest{ProposalID: intPtr(0)},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "not_registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/votes", tt.body, env.headers(tt.caller))
			w := httptest.NewRecorder()
			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedCode != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Code != tt.expectedCode {
					t.Errorf("Expected code %q, got %q", tt.expectedCode, resp.Code)
				}
			}
		})
	}

	var count uint64
	_ = env.ledger.Read(func(v ledger.View) (err error) {
		count, err = v.VoteCountOf("bob", 1)
		return err
	})
	if count != 1 {
		t.Errorf("Expected 1 vote for Dinner, got %d", count)
	}
}

func TestCastVote_Paused(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewVotingHandler(env.ledger, env.cfg)
	env.seedProposals(t, []string{"alice"}, []string{"Lunch"}, ballot.VotingOpen)
	env.exec(t, ledger.Pause(admin))

	req := testutil.MakeRequest("POST", "/votes", models.CastVoteRequest{ProposalID: intPtr(0)}, env.headers("alice"))
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

// TestConcurrentVotes verifies that simultaneous votes from different voters
// are all counted exactly once
func TestConcurrentVotes(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewVotingHandler(env.ledger, env.cfg)

	numVoters := 10
	voters := make([]string, numVoters)
	for i := range voters {
		voters[i] = "voter-" + string(rune('a'+i))
	}
	env.seedProposals(t, voters, []string{"A", "B"}, ballot.VotingOpen)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i, voter := range voters {
		wg.Add(1)
		go func(voter string, choice int) {
			defer wg.Done()

			// Every voter tries twice; only the first can succeed.
			for attempt := 0; attempt < 2; attempt++ {
				req := testutil.MakeRequest("POST", "/votes", models.CastVoteRequest{ProposalID: intPtr(choice)}, env.headers(voter))
				w := httptest.NewRecorder()
				handler.CastVote(w, req)
				if w.Code == http.StatusOK {
					successCount.Add(1)
				}
			}
		}(voter, i%2)
	}
	wg.Wait()

	if got := successCount.Load(); got != int32(numVoters) {
		t.Errorf("Expected %d successful votes, got %d", numVoters, got)
	}

	var total uint64
	_ = env.ledger.Read(func(v ledger.View) error {
		for id := 0; id < 2; id++ {
			n, err := v.VoteCountOf(ballot.Identity(voters[0]), id)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if total != uint64(numVoters) {
		t.Errorf("Expected %d counted votes, got %d", numVoters, total)
	}
}

func TestWinner(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewVotingHandler(env.ledger, env.cfg)
	env.seedProposals(t, []string{"alice", "bob", "carol"}, []string{"Lunch", "Dinner"}, ballot.VotingOpen)
	env.exec(t, ledger.CastVote("alice", 1))
	env.exec(t, ledger.CastVote("bob", 1))
	env.exec(t, ledger.CastVote("carol", 0))

	resolve := func(caller string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/winner/resolve", nil, env.headers(caller))
		w := httptest.NewRecorder()
		handler.ResolveWinner(w, req)
		return w
	}
	winner := func() *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/winner", nil, env.headers("carol"))
		w := httptest.NewRecorder()
		handler.GetWinner(w, req)
		return w
	}

	testutil.AssertStatus(t, resolve(admin), http.StatusConflict)
	testutil.AssertStatus(t, winner(), http.StatusConflict)

	env.advanceTo(t, ballot.Tallied)

	testutil.AssertStatus(t, winner(), http.StatusConflict)
	testutil.AssertStatus(t, resolve("alice"), http.StatusForbidden)

	w := resolve(admin)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resolved models.WinnerResponse
	testutil.AssertJSON(t, w, &resolved)
	if resolved.ProposalID != 1 {
		t.Errorf("Expected winner 1, got %d", resolved.ProposalID)
	}

	w = resolve(admin)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = winner()
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ProposalID != 1 {
		t.Errorf("Expected winner 1, got %d", resp.ProposalID)
	}
	if resp.Description == nil || *resp.Description != "Dinner" {
		t.Errorf("Expected winner description Dinner, got %v", resp.Description)
	}

	records, err := env.ledger.Events(t.Context(), 0, 100)
	if err != nil {
		t.Fatalf("Failed to read events: %v", err)
	}
	resolvedEvents := 0
	for _, r := range records {
		if r.Kind == ballot.EventWinnerResolved {
			resolvedEvents++
		}
	}
	if resolvedEvents != 1 {
		t.Errorf("Expected 1 winner_resolved event, got %d", resolvedEvents)
	}
}
