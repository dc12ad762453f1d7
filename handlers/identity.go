// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/middleware"
)

// authenticate resolves the caller from the identity headers. A request
// without an identity is anonymous and yields "". A presented identity with
// a bad key is rejected with 401 and ok is false.
func authenticate(w http.ResponseWriter, r *http.Request, salt string) (caller ballot.Identity, ok bool) {
	identity := r.Header.Get(auth.HeaderIdentity)
	if identity == "" {
		return "", true
	}

	if err := auth.ValidateIdentityKey(identity, r.Header.Get(auth.HeaderIdentityKey), salt); err != nil {
		slog.Warn("identity key rejected", "identity", identity, "path", r.URL.Path, "client", middleware.GetClientIP(r))
		middleware.CodedErrorResponse(w, http.StatusUnauthorized, "invalid_identity_key", "Invalid identity key")
		return "", false
	}
	return ballot.Identity(identity), true
}

// requireIdentity is authenticate for routes that refuse anonymous callers.
func requireIdentity(w http.ResponseWriter, r *http.Request, salt string) (ballot.Identity, bool) {
	caller, ok := authenticate(w, r, salt)
	if !ok {
		return "", false
	}
	if caller == "" {
		middleware.CodedErrorResponse(w, http.StatusUnauthorized, "identity_required", auth.ErrMissingIdentity.Error())
		return "", false
	}
	return caller, true
}

// proposalID parses the {id} path value.
func proposalID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "invalid_proposal_id", "proposal id must be an integer")
		return 0, false
	}
	return id, true
}
