// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot implements a single voting session.

# Phases

A session moves through six phases, one step at a time, and never back:

	registering_voters → proposals_registration_open → proposals_registration_closed
	  → voting_open → voting_closed → tallied

The administrator advances the phase. Every other mutating operation checks
the current phase through a predicate on Phase (AcceptsProposals,
AcceptsVotes, ...).

# Operations

Every operation takes the caller's Identity explicitly:

	s, _ := ballot.NewSession(ballot.Config{Admin: "admin"})
	s.RegisterVoter("admin", "alice")
	s.AdvancePhase("admin")
	id, _ := s.SubmitProposal("alice", "Pizza")

Checks run in a fixed order: caller identity, pause switch, phase, then the
operation's own preconditions. A failed operation changes nothing.

# Votes

A voter's record is NotVoted until CastVote writes VotedFor. The record is
never replaced and tallies never decrease.

# Concurrency

Session does no locking. The ledger package serializes access and applies
each command to a Clone so a failure leaves the live session untouched.
*/
package ballot
