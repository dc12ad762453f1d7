// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

An empty origin reflects the caller's Origin header. Allows methods GET,
POST, OPTIONS with headers Content-Type, Authorization, X-Identity,
X-Identity-Key.

# Rate Limiting

Throttle mutating routes per client IP:

	limiter := middleware.NewRateLimiter(cfg.RateLimit, 5, cfg.TrustProxy)
	mux.HandleFunc("POST /votes", middleware.WithLogging(limiter.Wrap(h.CastVote)))

A zero rate yields a nil limiter whose Wrap is a no-op. Clients are keyed
by RemoteAddr; X-Forwarded-For and X-Real-IP are honored only when
trustProxy is set.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.CodedErrorResponse(w, http.StatusConflict, "wrong_phase", "message")

Parse JSON request bodies:

	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the rate limiter key.
*/
package middleware
