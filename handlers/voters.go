// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type VoterHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewVoterHandler(l *ledger.Ledger, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{ledger: l, cfg: cfg}
}

// RegisterVoter handles POST /voters
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	identity := ballot.Identity(req.Identity)
	if _, err := h.ledger.Execute(r.Context(), ledger.RegisterVoter(caller, identity)); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("voter registered", "identity", req.Identity)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Identity:    req.Identity,
		IdentityKey: auth.GenerateIdentityKey(req.Identity, h.cfg.IdentityKeySalt),
	})
}

// GetVoter handles GET /voters/{identity}
// has_voted and voted_proposal_id are included once voting has opened.
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(v ledger.View, caller, identity ballot.Identity, status *models.VoterStatus) error {
		registered, err := v.IsRegistered(caller, identity)
		if err != nil {
			return err
		}
		status.Registered = registered

		if !v.Phase().ExposesVotes() {
			return nil
		}
		return fillVote(v, caller, identity, status)
	})
}

// IsRegistered handles GET /voters/{identity}/registered
func (h *VoterHandler) IsRegistered(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(v ledger.View, caller, identity ballot.Identity, status *models.VoterStatus) error {
		registered, err := v.IsRegistered(caller, identity)
		status.Registered = registered
		return err
	})
}

// HasVoted handles GET /voters/{identity}/voted
func (h *VoterHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(v ledger.View, caller, identity ballot.Identity, status *models.VoterStatus) error {
		voted, err := v.HasVoted(caller, identity)
		if err != nil {
			return err
		}
		status.Registered = true
		status.HasVoted = &voted
		return nil
	})
}

// GetVote handles GET /voters/{identity}/vote
func (h *VoterHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(v ledger.View, caller, identity ballot.Identity, status *models.VoterStatus) error {
		status.Registered = true
		return fillVote(v, caller, identity, status)
	})
}

func fillVote(v ledger.View, caller, identity ballot.Identity, status *models.VoterStatus) error {
	record, err := v.VotedProposalOf(caller, identity)
	if err != nil {
		return err
	}

	voted := false
	if vf, ok := record.(ballot.VotedFor); ok {
		voted = true
		id := vf.ProposalID
		status.VotedProposalID = &id
	}
	status.HasVoted = &voted
	return nil
}

func (h *VoterHandler) respond(w http.ResponseWriter, r *http.Request, fill func(ledger.View, ballot.Identity, ballot.Identity, *models.VoterStatus) error) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	identity := r.PathValue("identity")
	status := models.VoterStatus{Identity: identity}
	err := h.ledger.Read(func(v ledger.View) error {
		return fill(v, caller, ballot.Identity(identity), &status)
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}
