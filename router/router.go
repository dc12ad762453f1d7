// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/notify"
)

// mutationBurst is how many writes a client may issue back to back before
// the per-second rate applies.
const mutationBurst = 5

func NewRouter(l *ledger.Ledger, hub *notify.Hub, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(l, cfg)
	voterHandler := handlers.NewVoterHandler(l, cfg)
	proposalHandler := handlers.NewProposalHandler(l, cfg)
	votingHandler := handlers.NewVotingHandler(l, cfg)
	fundsHandler := handlers.NewFundsHandler(l, cfg)
	eventsHandler := handlers.NewEventsHandler(l, hub, cfg)

	// Mutating routes share one limiter; nil when RateLimit is 0
	limit := middleware.NewRateLimiter(cfg.RateLimit, mutationBurst, cfg.TrustProxy).Wrap

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle (admin operations)
	mux.HandleFunc("GET /phase", middleware.WithLogging(sessionHandler.GetStatus))
	mux.HandleFunc("POST /phase/advance", middleware.WithLogging(limit(sessionHandler.AdvancePhase)))
	mux.HandleFunc("POST /pause", middleware.WithLogging(limit(sessionHandler.Pause)))
	mux.HandleFunc("POST /unpause", middleware.WithLogging(limit(sessionHandler.Unpause)))

	// Voter registry
	mux.HandleFunc("POST /voters", middleware.WithLogging(limit(voterHandler.RegisterVoter)))
	mux.HandleFunc("GET /voters/{identity}", middleware.WithLogging(voterHandler.GetVoter))
	mux.HandleFunc("GET /voters/{identity}/registered", middleware.WithLogging(voterHandler.IsRegistered))
	mux.HandleFunc("GET /voters/{identity}/voted", middleware.WithLogging(voterHandler.HasVoted))
	mux.HandleFunc("GET /voters/{identity}/vote", middleware.WithLogging(voterHandler.GetVote))

	// Proposals
	mux.HandleFunc("POST /proposals", middleware.WithLogging(limit(proposalHandler.SubmitProposal)))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("GET /proposals/{id}", middleware.WithLogging(proposalHandler.GetProposal))
	mux.HandleFunc("GET /proposals/{id}/votes", middleware.WithLogging(proposalHandler.GetVoteCount))

	// Voting and results
	mux.HandleFunc("POST /votes", middleware.WithLogging(limit(votingHandler.CastVote)))
	mux.HandleFunc("POST /winner/resolve", middleware.WithLogging(limit(votingHandler.ResolveWinner)))
	mux.HandleFunc("GET /winner", middleware.WithLogging(votingHandler.GetWinner))

	// Funds custody
	mux.HandleFunc("POST /funds/deposit", middleware.WithLogging(limit(fundsHandler.Deposit)))
	mux.HandleFunc("POST /funds/withdraw", middleware.WithLogging(limit(fundsHandler.Withdraw)))
	mux.HandleFunc("GET /funds", middleware.WithLogging(fundsHandler.GetFunds))

	// Notifications (public)
	mux.HandleFunc("GET /events", middleware.WithLogging(eventsHandler.ListEvents))
	mux.HandleFunc("GET /events/stream", middleware.WithLogging(eventsHandler.StreamEvents))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
