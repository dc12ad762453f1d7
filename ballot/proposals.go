// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "fmt"

// Proposal is a submitted entry. Its position in the registry is its ID.
type Proposal struct {
	Description string
	VoteCount   uint64
}

// ProposalSummary is a proposal as seen by a voter. VoteCount is nil until
// voting has opened.
type ProposalSummary struct {
	ID          int
	Description string
	VoteCount   *uint64
}

// ProposalRegistry is an append-only list of proposals.
type ProposalRegistry struct {
	proposals []Proposal
}

func (r *ProposalRegistry) clone() ProposalRegistry {
	return ProposalRegistry{proposals: append([]Proposal(nil), r.proposals...)}
}

func (r *ProposalRegistry) Len() int {
	return len(r.proposals)
}

func (r *ProposalRegistry) get(id int) (Proposal, error) {
	if id < 0 || id >= len(r.proposals) {
		return Proposal{}, fmt.Errorf("%w: %d", ErrNoSuchProposal, id)
	}
	return r.proposals[id], nil
}

func (r *ProposalRegistry) add(description string) int {
	r.proposals = append(r.proposals, Proposal{Description: description})
	return len(r.proposals) - 1
}

func (r *ProposalRegistry) increment(id int) error {
	if _, err := r.get(id); err != nil {
		return err
	}
	r.proposals[id].VoteCount++
	return nil
}

// counts returns the tallies in ID order.
func (r *ProposalRegistry) counts() []uint64 {
	out := make([]uint64, len(r.proposals))
	for i, p := range r.proposals {
		out[i] = p.VoteCount
	}
	return out
}

// SubmitProposal appends a proposal and returns its ID. Registered voters
// only, while proposal registration is open. Whitespace-only descriptions
// are accepted.
func (s *Session) SubmitProposal(caller Identity, description string) (int, error) {
	if err := s.requireVoter(caller); err != nil {
		return 0, err
	}
	if err := s.pause.requireDisengaged(); err != nil {
		return 0, err
	}
	if err := s.phase.require(Phase.AcceptsProposals, "proposal registration to be open"); err != nil {
		return 0, err
	}
	if description == "" {
		return 0, ErrEmptyDescription
	}

	id := s.proposals.add(description)
	s.emit(proposalRegistered(id))
	return id, nil
}

// DescriptionOf returns the text of proposal id.
func (s *Session) DescriptionOf(caller Identity, id int) (string, error) {
	if err := s.requireVoter(caller); err != nil {
		return "", err
	}
	p, err := s.proposals.get(id)
	if err != nil {
		return "", err
	}
	return p.Description, nil
}

// VoteCountOf returns the running tally of proposal id once voting has opened.
func (s *Session) VoteCountOf(caller Identity, id int) (uint64, error) {
	if err := s.requireVoter(caller); err != nil {
		return 0, err
	}
	if err := s.phase.require(Phase.ExposesVotes, "voting to have opened"); err != nil {
		return 0, err
	}
	p, err := s.proposals.get(id)
	if err != nil {
		return 0, err
	}
	return p.VoteCount, nil
}

// Proposals lists every proposal in ID order.
func (s *Session) Proposals(caller Identity) ([]ProposalSummary, error) {
	if err := s.requireVoter(caller); err != nil {
		return nil, err
	}
	visible := s.phase.Current().ExposesVotes()
	out := make([]ProposalSummary, len(s.proposals.proposals))
	for i, p := range s.proposals.proposals {
		out[i] = ProposalSummary{ID: i, Description: p.Description}
		if visible {
			count := p.VoteCount
			out[i].VoteCount = &count
		}
	}
	return out, nil
}
