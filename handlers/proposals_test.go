// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestSubmitProposal(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewProposalHandler(env.ledger, env.cfg)
	env.exec(t, ledger.RegisterVoter(admin, "alice"))
	env.advanceTo(t, ballot.ProposalsRegistrationOpen)

	tests := []struct {
		name           string
		caller         string
		body           interface{}
		expectedStatus int
		expectedID     int
	}{
		{
			name:           "first proposal",
			caller:         "alice",
			body:           models.SubmitProposalRequest{Description: "Pizza"},
			expectedStatus: http.StatusCreated,
			expectedID:     0,
		},
		{
			name:           "duplicate description gets a new id",
			caller:         "alice",
			body:           models.SubmitProposalRequest{Description: "Pizza"},
			expectedStatus: http.StatusCreated,
			expectedID:     1,
		},
		{
			name:           "empty description",
			caller:         "alice",
			body:           models.SubmitProposalRequest{Description: ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unregistered caller",
			caller:         "mallory",
			body:           models.SubmitProposalRequest{Description: "Tacos"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin who is not a voter",
			caller:         admin,
			body:           models.SubmitProposalRequest{Description: "Tacos"},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/proposals", tt.body, env.headers(tt.caller))
			w := httptest.NewRecorder()
			handler.SubmitProposal(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.SubmitProposalResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ProposalID != tt.expectedID {
					t.Errorf("Expected proposal_id %d, got %d", tt.expectedID, resp.ProposalID)
				}
			}
		})
	}
}

func TestListProposals(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewProposalHandler(env.ledger, env.cfg)
	env.seedProposals(t, []string{"alice", "bob"}, []string{"Lunch", "Dinner"}, ballot.ProposalsRegistrationClosed)

	list := func() models.ProposalList {
		t.Helper()
		req := testutil.MakeRequest("GET", "/proposals", nil, env.headers("bob"))
		w := httptest.NewRecorder()
		handler.ListProposals(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ProposalList
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	resp := list()
	if len(resp.Proposals) != 2 {
		t.Fatalf("Expected 2 proposals, got %d", len(resp.Proposals))
	}
	if resp.Proposals[1].Description != "Dinner" {
		t.Errorf("Expected second proposal Dinner, got %s", resp.Proposals[1].Description)
	}
	if resp.Proposals[0].VoteCount != nil {
		t.Error("Expected vote counts hidden before voting opens")
	}

	env.advanceTo(t, ballot.VotingOpen)
	env.exec(t, ledger.CastVote("alice", 1))

	resp = list()
	if resp.Proposals[1].VoteCount == nil || *resp.Proposals[1].VoteCount != 1 {
		t.Errorf("Expected Dinner to have 1 vote, got %v", resp.Proposals[1].VoteCount)
	}

	t.Run("anonymous caller", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/proposals", nil, nil)
		w := httptest.NewRecorder()
		handler.ListProposals(w, req)
		testutil.AssertStatus(t, w, http.StatusForbidden)
	})
}

func TestGetProposal(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewProposalHandler(env.ledger, env.cfg)
	env.seedProposals(t, []string{"alice"}, []string{"Lunch"}, ballot.ProposalsRegistrationOpen)

	tests := []struct {
		name           string
		id             string
		handle         http.HandlerFunc
		expectedStatus int
	}{
		{"description", "0", handler.GetProposal, http.StatusOK},
		{"no such proposal", "7", handler.GetProposal, http.StatusNotFound},
		{"non-numeric id", "abc", handler.GetProposal, http.StatusBadRequest},
		{"vote count before voting", "0", handler.GetVoteCount, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/proposals/"+tt.id, nil, env.headers("alice"))
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			tt.handle(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	env.advanceTo(t, ballot.VotingOpen)

	req := testutil.MakeRequest("GET", "/proposals/0/votes", nil, env.headers("alice"))
	req.SetPathValue("id", "0")
	w := httptest.NewRecorder()
	handler.GetVoteCount(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.VoteCountResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ProposalID != 0 || resp.VoteCount != 0 {
		t.Errorf("Expected zero votes for proposal 0, got %+v", resp)
	}
}
