// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/ledger"
)

// Request types

type RegisterVoterRequest struct {
	Identity string `json:"identity"`
}

type SubmitProposalRequest struct {
	Description string `json:"description"`
}

// ProposalID is a pointer so a missing field is distinguishable from 0
type CastVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

type DepositRequest struct {
	Amount uint64 `json:"amount"`
}

// Response types

type SessionStatus struct {
	Phase         ballot.Phase      `json:"phase"`
	Paused        bool              `json:"paused"`
	VoterCount    int               `json:"voter_count"`
	ProposalCount int               `json:"proposal_count"`
	WinnerRule    ballot.WinnerRule `json:"winner_rule"`
}

type AdvancePhaseResponse struct {
	Previous ballot.Phase `json:"previous"`
	Phase    ballot.Phase `json:"phase"`
}

type PauseResponse struct {
	Paused bool `json:"paused"`
}

type RegisterVoterResponse struct {
	Identity    string `json:"identity"`
	IdentityKey string `json:"identity_key"`
}

// HasVoted and VotedProposalID are omitted before voting opens.
// VotedProposalID is also omitted when the voter has not voted.
type VoterStatus struct {
	Identity        string `json:"identity"`
	Registered      bool   `json:"registered"`
	HasVoted        *bool  `json:"has_voted,omitempty"`
	VotedProposalID *int   `json:"voted_proposal_id,omitempty"`
}

type SubmitProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

// VoteCount is omitted before voting opens
type Proposal struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	VoteCount   *uint64 `json:"vote_count,omitempty"`
}

type ProposalList struct {
	Proposals []Proposal `json:"proposals"`
}

type VoteCountResponse struct {
	ProposalID int    `json:"proposal_id"`
	VoteCount  uint64 `json:"vote_count"`
}

type CastVoteResponse struct {
	ProposalID int    `json:"proposal_id"`
	Message    string `json:"message"`
}

// Description is nil when the winning index names no proposal
// (a session that closed with no proposals)
type WinnerResponse struct {
	ProposalID  int     `json:"proposal_id"`
	Description *string `json:"description,omitempty"`
}

type FundsResponse struct {
	Held    uint64 `json:"held"`
	PaidOut uint64 `json:"paid_out"`
}

type AmountResponse struct {
	Amount uint64 `json:"amount"`
}

type EventsResponse struct {
	Events []ledger.Record `json:"events"`
	Next   int64           `json:"next"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
