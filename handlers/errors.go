// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{ballot.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
	{ballot.ErrNotRegistered, http.StatusForbidden, "not_registered"},
	{ballot.ErrServicePaused, http.StatusServiceUnavailable, "service_paused"},
	{ballot.ErrServiceNotPaused, http.StatusConflict, "service_not_paused"},
	{ballot.ErrProcessEnded, http.StatusConflict, "process_ended"},
	{ballot.ErrWrongPhase, http.StatusConflict, "wrong_phase"},
	{ballot.ErrNotYetTallied, http.StatusConflict, "not_yet_tallied"},
	{ballot.ErrAlreadyVoted, http.StatusConflict, "already_voted"},
	{ballot.ErrUnknownIdentity, http.StatusNotFound, "unknown_identity"},
	{ballot.ErrNoSuchProposal, http.StatusNotFound, "no_such_proposal"},
	{ballot.ErrEmptyDescription, http.StatusBadRequest, "empty_description"},
	{ballot.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{ballot.ErrInvalidIdentity, http.StatusBadRequest, "invalid_identity"},
}

// statusFor maps a session error onto an HTTP status and error code.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	if errors.Is(err, ledger.ErrStorage) {
		return http.StatusInternalServerError, "storage_failure"
	}
	return http.StatusInternalServerError, "internal"
}

// writeError responds with the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		middleware.CodedErrorResponse(w, status, code, "Internal error")
		return
	}
	middleware.CodedErrorResponse(w, status, code, err.Error())
}
