// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewVotingHandler(l *ledger.Ledger, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: l, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProposalID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_id is required")
		return
	}

	res, err := h.ledger.Execute(r.Context(), ledger.CastVote(caller, *req.ProposalID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("vote cast", "voter", caller, "proposal_id", res.ProposalID)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		ProposalID: res.ProposalID,
		Message:    "Vote recorded",
	})
}

// ResolveWinner handles POST /winner/resolve
// Repeated calls return the recorded winner.
func (h *VotingHandler) ResolveWinner(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	res, err := h.ledger.Execute(r.Context(), ledger.ResolveWinner(caller))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(res.Events) > 0 {
		slog.Info("winner resolved", "proposal_id", res.ProposalID)
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{ProposalID: res.ProposalID})
}

// GetWinner handles GET /winner
func (h *VotingHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	var resp models.WinnerResponse
	err := h.ledger.Read(func(v ledger.View) error {
		id, err := v.Winner(caller)
		if err != nil {
			return err
		}
		resp.ProposalID = id

		// Winner is 0 when no proposal was ever submitted.
		if description, err := v.DescriptionOf(caller, id); err == nil {
			resp.Description = &description
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
