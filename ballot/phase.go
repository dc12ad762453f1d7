// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"encoding/json"
	"fmt"
)

// Phase is a stage of the voting session. Phases are ordered and only move forward.
type Phase uint8

const (
	RegisteringVoters Phase = iota
	ProposalsRegistrationOpen
	ProposalsRegistrationClosed
	VotingOpen
	VotingClosed
	Tallied
)

var phaseNames = [...]string{
	RegisteringVoters:           "registering_voters",
	ProposalsRegistrationOpen:   "proposals_registration_open",
	ProposalsRegistrationClosed: "proposals_registration_closed",
	VotingOpen:                  "voting_open",
	VotingClosed:                "voting_closed",
	Tallied:                     "tallied",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// ParsePhase is the inverse of String.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Phase) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParsePhase(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// next returns the following phase and false when p is terminal.
func (p Phase) next() (Phase, bool) {
	switch p {
	case RegisteringVoters:
		return ProposalsRegistrationOpen, true
	case ProposalsRegistrationOpen:
		return ProposalsRegistrationClosed, true
	case ProposalsRegistrationClosed:
		return VotingOpen, true
	case VotingOpen:
		return VotingClosed, true
	case VotingClosed:
		return Tallied, true
	case Tallied:
		return Tallied, false
	default:
		panic(fmt.Sprintf("ballot: invalid phase %d", uint8(p)))
	}
}

// AcceptsVoterRegistration reports whether the administrator may register voters.
func (p Phase) AcceptsVoterRegistration() bool {
	switch p {
	case RegisteringVoters:
		return true
	case ProposalsRegistrationOpen, ProposalsRegistrationClosed, VotingOpen, VotingClosed, Tallied:
		return false
	default:
		panic(fmt.Sprintf("ballot: invalid phase %d", uint8(p)))
	}
}

// AcceptsProposals reports whether registered voters may submit proposals.
func (p Phase) AcceptsProposals() bool {
	switch p {
	case ProposalsRegistrationOpen:
		return true
	case RegisteringVoters, ProposalsRegistrationClosed, VotingOpen, VotingClosed, Tallied:
		return false
	default:
		panic(fmt.Sprintf("ballot: invalid phase %d", uint8(p)))
	}
}

// AcceptsVotes reports whether ballots may be cast.
func (p Phase) AcceptsVotes() bool {
	switch p {
	case VotingOpen:
		return true
	case RegisteringVoters, ProposalsRegistrationOpen, ProposalsRegistrationClosed, VotingClosed, Tallied:
		return false
	default:
		panic(fmt.Sprintf("ballot: invalid phase %d", uint8(p)))
	}
}

// ExposesVotes reports whether vote status and running tallies are visible.
// They become visible as soon as voting opens, not only after tallying.
func (p Phase) ExposesVotes() bool {
	switch p {
	case VotingOpen, VotingClosed, Tallied:
		return true
	case RegisteringVoters, ProposalsRegistrationOpen, ProposalsRegistrationClosed:
		return false
	default:
		panic(fmt.Sprintf("ballot: invalid phase %d", uint8(p)))
	}
}

// IsTallied reports whether the terminal phase has been reached.
func (p Phase) IsTallied() bool {
	switch p {
	case Tallied:
		return true
	case RegisteringVoters, ProposalsRegistrationOpen, ProposalsRegistrationClosed, VotingOpen, VotingClosed:
		return false
	default:
		panic(fmt.Sprintf("ballot: invalid phase %d", uint8(p)))
	}
}

// PhaseController owns the session's phase cursor.
type PhaseController struct {
	current Phase
}

func (c *PhaseController) Current() Phase {
	return c.current
}

// advance moves the cursor exactly one step and returns the previous and new phase.
func (c *PhaseController) advance() (Phase, Phase, error) {
	next, ok := c.current.next()
	if !ok {
		return c.current, c.current, ErrProcessEnded
	}
	prev := c.current
	c.current = next
	return prev, next, nil
}

// require fails with ErrWrongPhase unless allowed holds for the current phase.
func (c *PhaseController) require(allowed func(Phase) bool, want string) error {
	if !allowed(c.current) {
		return fmt.Errorf("%w: requires %s, current phase is %s", ErrWrongPhase, want, c.current)
	}
	return nil
}
