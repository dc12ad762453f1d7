// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

// EventKind names a notification emitted by a state change.
type EventKind string

const (
	EventVoterRegistered    EventKind = "voter_registered"
	EventPhaseChanged       EventKind = "phase_changed"
	EventProposalRegistered EventKind = "proposal_registered"
	EventVoteCast           EventKind = "vote_cast"
	EventWinnerResolved     EventKind = "winner_resolved"
	EventPaused             EventKind = "paused"
	EventUnpaused           EventKind = "unpaused"
	EventFundsDeposited     EventKind = "funds_deposited"
	EventFundsWithdrawn     EventKind = "funds_withdrawn"
)

// Event is a notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind       EventKind `json:"kind"`
	Identity   Identity  `json:"identity,omitempty"`
	From       *Phase    `json:"from,omitempty"`
	To         *Phase    `json:"to,omitempty"`
	ProposalID *int      `json:"proposal_id,omitempty"`
	Amount     uint64    `json:"amount,omitempty"`
}

// Notifier receives events in the order they are emitted.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

func voterRegistered(id Identity) Event {
	return Event{Kind: EventVoterRegistered, Identity: id}
}

func phaseChanged(from, to Phase) Event {
	return Event{Kind: EventPhaseChanged, From: &from, To: &to}
}

func proposalRegistered(id int) Event {
	return Event{Kind: EventProposalRegistered, ProposalID: &id}
}

func voteCast(voter Identity, proposalID int) Event {
	return Event{Kind: EventVoteCast, Identity: voter, ProposalID: &proposalID}
}

func winnerResolved(id int) Event {
	return Event{Kind: EventWinnerResolved, ProposalID: &id}
}

func paused(account Identity) Event {
	return Event{Kind: EventPaused, Identity: account}
}

func unpaused(account Identity) Event {
	return Event{Kind: EventUnpaused, Identity: account}
}

func fundsDeposited(from Identity, amount uint64) Event {
	return Event{Kind: EventFundsDeposited, Identity: from, Amount: amount}
}

func fundsWithdrawn(to Identity, amount uint64) Event {
	return Event{Kind: EventFundsWithdrawn, Identity: to, Amount: amount}
}
