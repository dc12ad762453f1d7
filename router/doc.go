// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(l, hub, cfg)

# Endpoints

Health:

	GET /health

Session lifecycle (admin):

	GET  /phase         - Phase, pause state, counts (public)
	POST /phase/advance - Move to the next phase
	POST /pause         - Engage the pause switch
	POST /unpause       - Release the pause switch

Voters:

	POST /voters                        - Register voter (admin), returns identity key
	GET  /voters/{identity}             - Registration and vote status
	GET  /voters/{identity}/registered  - Registration only
	GET  /voters/{identity}/voted       - Whether the voter has voted
	GET  /voters/{identity}/vote        - Which proposal the voter chose

Proposals (registered voters):

	POST /proposals            - Submit proposal
	GET  /proposals            - List proposals (counts once voting opens)
	GET  /proposals/{id}       - Description
	GET  /proposals/{id}/votes - Vote count

Voting and results:

	POST /votes          - Cast vote
	POST /winner/resolve - Record the winner (admin, tallied only)
	GET  /winner         - Recorded winner

Funds:

	POST /funds/deposit  - Deposit (any authenticated identity)
	POST /funds/withdraw - Sweep to the administrator (admin)
	GET  /funds          - Balances (admin)

Notifications (public):

	GET /events        - Persisted notifications after a cursor
	GET /events/stream - Websocket: backlog then live notifications

# Rate Limiting

Every mutating route shares a per-client limiter configured by RATE_LIMIT.
Reads and the event stream are not limited.
*/
package router
