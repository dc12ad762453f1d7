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

type ProposalHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewProposalHandler(l *ledger.Ledger, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{ledger: l, cfg: cfg}
}

// SubmitProposal handles POST /proposals
func (h *ProposalHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.ledger.Execute(r.Context(), ledger.SubmitProposal(caller, req.Description))
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("proposal submitted", "proposal_id", res.ProposalID, "by", caller)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{
		ProposalID: res.ProposalID,
	})
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	resp := models.ProposalList{Proposals: []models.Proposal{}}
	err := h.ledger.Read(func(v ledger.View) error {
		summaries, err := v.Proposals(caller)
		if err != nil {
			return err
		}
		for _, p := range summaries {
			resp.Proposals = append(resp.Proposals, models.Proposal{
				ID:          p.ID,
				Description: p.Description,
				VoteCount:   p.VoteCount,
			})
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetProposal handles GET /proposals/{id}
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}
	id, ok := proposalID(w, r)
	if !ok {
		return
	}

	var description string
	err := h.ledger.Read(func(v ledger.View) (err error) {
		description, err = v.DescriptionOf(caller, id)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Proposal{ID: id, Description: description})
}

// GetVoteCount handles GET /proposals/{id}/votes
func (h *ProposalHandler) GetVoteCount(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}
	id, ok := proposalID(w, r)
	if !ok {
		return
	}

	var count uint64
	err := h.ledger.Read(func(v ledger.View) (err error) {
		count, err = v.VoteCountOf(caller, id)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountResponse{ProposalID: id, VoteCount: count})
}
