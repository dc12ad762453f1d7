// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Idle clients are forgotten after limiterExpiry.
const (
	limiterExpiry  = 10 * time.Minute
	limiterCleanup = 5 * time.Minute
)

// RateLimiter throttles requests per client IP with a token bucket
type RateLimiter struct {
	mu         sync.Mutex
	limit      rate.Limit
	burst      int
	trustProxy bool
	clients    *gocache.Cache
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// perSecond of 0 returns nil, which disables limiting. Clients are keyed by
// the connection's address; with trustProxy the forwarding headers set by a
// reverse proxy are used instead.
func NewRateLimiter(perSecond float64, burst int, trustProxy bool) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:      rate.Limit(perSecond),
		burst:      burst,
		trustProxy: trustProxy,
		clients:    gocache.New(limiterExpiry, limiterCleanup),
	}
}

func (rl *RateLimiter) limiterFor(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.clients.Get(client); ok {
		return l.(*rate.Limiter)
	}
	l := rate.NewLimiter(rl.limit, rl.burst)
	rl.clients.SetDefault(client, l)
	return l
}

// Wrap rejects requests over the limit with 429. A nil limiter passes
// everything through.
func (rl *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	if rl == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		client := RemoteIP(r)
		if rl.trustProxy {
			client = GetClientIP(r)
		}
		if !rl.limiterFor(client).Allow() {
			slog.Warn("rate limit exceeded", "method", r.Method, "path", r.URL.Path, "client", client)
			w.Header().Set("Retry-After", "1")
			CodedErrorResponse(w, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			return
		}
		next(w, r)
	}
}
