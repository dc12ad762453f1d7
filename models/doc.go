// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - RegisterVoterRequest: identity
  - SubmitProposalRequest: description
  - CastVoteRequest: proposal_id
  - DepositRequest: amount

# Response Types

  - SessionStatus: phase, paused, voter_count, proposal_count, winner_rule
  - AdvancePhaseResponse: previous, phase
  - RegisterVoterResponse: identity, identity_key
  - VoterStatus: identity, registered, has_voted, voted_proposal_id
  - SubmitProposalResponse: proposal_id
  - Proposal / ProposalList: id, description, vote_count
  - VoteCountResponse: proposal_id, vote_count
  - WinnerResponse: proposal_id, description
  - FundsResponse: held, paid_out
  - EventsResponse: events, next
  - ErrorResponse: error, code, message

Phases are serialized by name:

	"registering_voters", "proposals_registration_open",
	"proposals_registration_closed", "voting_open", "voting_closed", "tallied"

Optional fields are pointers so that 0 and "not available yet" stay distinct.
*/
package models
