// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type SessionHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewSessionHandler(l *ledger.Ledger, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{ledger: l, cfg: cfg}
}

// GetStatus handles GET /phase
func (h *SessionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	var status models.SessionStatus
	_ = h.ledger.Read(func(v ledger.View) error {
		status = models.SessionStatus{
			Phase:         v.Phase(),
			Paused:        v.Paused(),
			VoterCount:    v.VoterCount(),
			ProposalCount: v.ProposalCount(),
			WinnerRule:    v.WinnerRule(),
		}
		return nil
	})

	middleware.JSONResponse(w, http.StatusOK, status)
}

// AdvancePhase handles POST /phase/advance
func (h *SessionHandler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	res, err := h.ledger.Execute(r.Context(), ledger.AdvancePhase(caller))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var resp models.AdvancePhaseResponse
	for _, rec := range res.Events {
		if rec.From != nil && rec.To != nil {
			resp.Previous, resp.Phase = *rec.From, *rec.To
		}
	}

	slog.Info("phase advanced", "from", resp.Previous.String(), "to", resp.Phase.String())
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Pause handles POST /pause
func (h *SessionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.setPaused(w, r, ledger.Pause, true)
}

// Unpause handles POST /unpause
func (h *SessionHandler) Unpause(w http.ResponseWriter, r *http.Request) {
	h.setPaused(w, r, ledger.Unpause, false)
}

func (h *SessionHandler) setPaused(w http.ResponseWriter, r *http.Request, command func(ballot.Identity) ledger.Command, paused bool) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	if _, err := h.ledger.Execute(r.Context(), command(caller)); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("pause switch changed", "paused", paused, "by", caller)
	middleware.JSONResponse(w, http.StatusOK, models.PauseResponse{Paused: paused})
}
