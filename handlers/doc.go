// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct with ledger and config dependencies:

  - SessionHandler: phase status, phase advancement, pause switch
  - VoterHandler: voter registration and voter lookups
  - ProposalHandler: proposal submission and lookups
  - VotingHandler: vote casting and winner resolution
  - FundsHandler: deposits, withdrawal, balance
  - EventsHandler: notification paging and the websocket stream

Handlers are created via constructor functions:

	voterHandler := handlers.NewVoterHandler(l, cfg)

# Caller Identity

Requests identify the caller with two headers:

	X-Identity:     alice
	X-Identity-Key: <key returned when alice was registered>

A request without X-Identity is anonymous. A wrong key is rejected with
401 before the session is consulted. Whether the caller may perform the
operation (administrator, registered voter) is decided by the session.

# Session Lifecycle

The administrator moves the session through its phases:

	registering_voters → proposals_registration_open →
	proposals_registration_closed → voting_open → voting_closed → tallied

	POST /phase/advance  → AdvancePhase
	POST /voters         → RegisterVoter (registering_voters only)
	POST /proposals      → SubmitProposal (proposals_registration_open only)
	POST /votes          → CastVote (voting_open only)
	POST /winner/resolve → ResolveWinner (tallied only)

# Errors

Session errors map onto statuses with a machine-readable code:

	unauthorized, not_registered            403
	unknown_identity, no_such_proposal      404
	wrong_phase, process_ended,
	already_voted, not_yet_tallied,
	service_not_paused                      409
	empty_description, invalid_amount,
	invalid_identity                        400
	service_paused                          503

# Notifications

GET /events pages through persisted notifications by sequence number.
GET /events/stream upgrades to a websocket, sends the backlog after the
given cursor and then live notifications as they commit.
*/
package handlers
