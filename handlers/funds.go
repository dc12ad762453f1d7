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

type FundsHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewFundsHandler(l *ledger.Ledger, cfg cliparse.Config) *FundsHandler {
	return &FundsHandler{ledger: l, cfg: cfg}
}

// Deposit handles POST /funds/deposit
func (h *FundsHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	var req models.DepositRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.ledger.Execute(r.Context(), ledger.Deposit(caller, req.Amount))
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("funds deposited", "from", caller, "amount", res.Amount)
	middleware.JSONResponse(w, http.StatusOK, models.AmountResponse{Amount: res.Amount})
}

// Withdraw handles POST /funds/withdraw
func (h *FundsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	res, err := h.ledger.Execute(r.Context(), ledger.Withdraw(caller))
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("funds withdrawn", "to", caller, "amount", res.Amount)
	middleware.JSONResponse(w, http.StatusOK, models.AmountResponse{Amount: res.Amount})
}

// GetFunds handles GET /funds
func (h *FundsHandler) GetFunds(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticate(w, r, h.cfg.IdentityKeySalt)
	if !ok {
		return
	}

	var resp models.FundsResponse
	err := h.ledger.Read(func(v ledger.View) (err error) {
		resp.Held, resp.PaidOut, err = v.Funds(caller)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
