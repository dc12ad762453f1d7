// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"

	"github.com/danielhkuo/quickly-vote/ballot"
)

// Kind names a mutating operation.
type Kind string

const (
	KindAdvancePhase   Kind = "advance_phase"
	KindRegisterVoter  Kind = "register_voter"
	KindSubmitProposal Kind = "submit_proposal"
	KindCastVote       Kind = "cast_vote"
	KindResolveWinner  Kind = "resolve_winner"
	KindPause          Kind = "pause"
	KindUnpause        Kind = "unpause"
	KindDeposit        Kind = "deposit"
	KindWithdraw       Kind = "withdraw"
)

// Command is a mutating operation with its caller and arguments. Only the
// arguments Kind uses are set; they are what gets journaled.
type Command struct {
	Kind   Kind            `json:"-"`
	Caller ballot.Identity `json:"-"`

	Identity    ballot.Identity `json:"identity,omitempty"`
	Description string          `json:"description,omitempty"`
	ProposalID  int             `json:"proposal_id"`
	Amount      uint64          `json:"amount,omitempty"`

	// Winner is the index a resolve_winner entry recorded. Replay restores it
	// instead of re-running the winner rule.
	Winner *int `json:"winner,omitempty"`
}

// Result carries the return value of a command, if any.
type Result struct {
	ProposalID int
	Amount     uint64
	Events     []Record
}

func AdvancePhase(caller ballot.Identity) Command {
	return Command{Kind: KindAdvancePhase, Caller: caller}
}

func RegisterVoter(caller, identity ballot.Identity) Command {
	return Command{Kind: KindRegisterVoter, Caller: caller, Identity: identity}
}

func SubmitProposal(caller ballot.Identity, description string) Command {
	return Command{Kind: KindSubmitProposal, Caller: caller, Description: description}
}

func CastVote(caller ballot.Identity, proposalID int) Command {
	return Command{Kind: KindCastVote, Caller: caller, ProposalID: proposalID}
}

func ResolveWinner(caller ballot.Identity) Command {
	return Command{Kind: KindResolveWinner, Caller: caller}
}

func Pause(caller ballot.Identity) Command {
	return Command{Kind: KindPause, Caller: caller}
}

func Unpause(caller ballot.Identity) Command {
	return Command{Kind: KindUnpause, Caller: caller}
}

func Deposit(from ballot.Identity, amount uint64) Command {
	return Command{Kind: KindDeposit, Caller: from, Amount: amount}
}

func Withdraw(caller ballot.Identity) Command {
	return Command{Kind: KindWithdraw, Caller: caller}
}

func apply(s *ballot.Session, c Command) (Result, error) {
	var res Result
	var err error

	switch c.Kind {
	case KindAdvancePhase:
		err = s.AdvancePhase(c.Caller)
	case KindRegisterVoter:
		err = s.RegisterVoter(c.Caller, c.Identity)
	case KindSubmitProposal:
		res.ProposalID, err = s.SubmitProposal(c.Caller, c.Description)
	case KindCastVote:
		err = s.CastVote(c.Caller, c.ProposalID)
		res.ProposalID = c.ProposalID
	case KindResolveWinner:
		if c.Winner != nil {
			err = s.RecordWinner(c.Caller, *c.Winner)
			res.ProposalID = *c.Winner
		} else {
			res.ProposalID, err = s.ResolveWinner(c.Caller)
		}
	case KindPause:
		err = s.Pause(c.Caller)
	case KindUnpause:
		err = s.Unpause(c.Caller)
	case KindDeposit:
		err = s.Deposit(c.Caller, c.Amount)
		res.Amount = c.Amount
	case KindWithdraw:
		res.Amount, err = s.WithdrawFunds(c.Caller)
	default:
		err = fmt.Errorf("unknown command kind %q", c.Kind)
	}

	return res, err
}
