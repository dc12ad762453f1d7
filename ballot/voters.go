// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

// VoteRecord is either NotVoted or VotedFor. Once a voter holds a VotedFor
// record it is never replaced.
type VoteRecord interface {
	voteRecord()
}

// NotVoted is the record of a registered voter who has not cast a ballot.
type NotVoted struct{}

// VotedFor is the record of a cast ballot.
type VotedFor struct {
	ProposalID int
}

func (NotVoted) voteRecord() {}
func (VotedFor) voteRecord() {}

// Voter is a registered identity and its vote record.
type Voter struct {
	Vote VoteRecord
}

// HasVoted reports whether the voter's record is VotedFor.
func (v Voter) HasVoted() bool {
	_, ok := v.Vote.(VotedFor)
	return ok
}

// VoterRegistry owns the set of registered identities. Entries are never removed.
type VoterRegistry struct {
	voters map[Identity]*Voter
}

func newVoterRegistry() VoterRegistry {
	return VoterRegistry{voters: make(map[Identity]*Voter)}
}

func (r *VoterRegistry) clone() VoterRegistry {
	c := VoterRegistry{voters: make(map[Identity]*Voter, len(r.voters))}
	for id, v := range r.voters {
		cp := *v
		c.voters[id] = &cp
	}
	return c
}

// Len returns the number of registered voters.
func (r *VoterRegistry) Len() int {
	return len(r.voters)
}

// IsRegistered reports whether id has been registered.
func (r *VoterRegistry) IsRegistered(id Identity) bool {
	_, ok := r.voters[id]
	return ok
}

// Lookup returns a copy of the voter entry for id.
func (r *VoterRegistry) Lookup(id Identity) (Voter, bool) {
	v, ok := r.voters[id]
	if !ok {
		return Voter{}, false
	}
	return *v, true
}

// register admits id. Registering an existing identity keeps its record.
func (r *VoterRegistry) register(id Identity) {
	if _, ok := r.voters[id]; ok {
		return
	}
	r.voters[id] = &Voter{Vote: NotVoted{}}
}

// markVoted writes the voter's record exactly once.
func (r *VoterRegistry) markVoted(id Identity, proposalID int) error {
	v, ok := r.voters[id]
	if !ok {
		return ErrNotRegistered
	}
	if v.HasVoted() {
		return ErrAlreadyVoted
	}
	v.Vote = VotedFor{ProposalID: proposalID}
	return nil
}

// RegisterVoter admits identity as a voter. Administrator only, during
// RegisteringVoters, while not paused.
func (s *Session) RegisterVoter(caller, identity Identity) error {
	if err := s.owner.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.pause.requireDisengaged(); err != nil {
		return err
	}
	if err := s.phase.require(Phase.AcceptsVoterRegistration, "voter registration"); err != nil {
		return err
	}
	if identity == "" {
		return ErrInvalidIdentity
	}

	s.voters.register(identity)
	s.emit(voterRegistered(identity))
	return nil
}

// IsRegistered reports whether identity is registered. The caller must be a
// registered voter.
func (s *Session) IsRegistered(caller, identity Identity) (bool, error) {
	if err := s.requireVoter(caller); err != nil {
		return false, err
	}
	if !s.voters.IsRegistered(identity) {
		return false, ErrUnknownIdentity
	}
	return true, nil
}

// HasVoted reports whether identity has cast its vote. Available once voting opens.
func (s *Session) HasVoted(caller, identity Identity) (bool, error) {
	v, err := s.votedRecord(caller, identity)
	if err != nil {
		return false, err
	}
	return v.HasVoted(), nil
}

// VotedProposalOf returns identity's vote record. Available once voting opens.
func (s *Session) VotedProposalOf(caller, identity Identity) (VoteRecord, error) {
	v, err := s.votedRecord(caller, identity)
	if err != nil {
		return nil, err
	}
	return v.Vote, nil
}

func (s *Session) votedRecord(caller, identity Identity) (Voter, error) {
	if err := s.requireVoter(caller); err != nil {
		return Voter{}, err
	}
	if err := s.phase.require(Phase.ExposesVotes, "voting to have opened"); err != nil {
		return Voter{}, err
	}
	v, ok := s.voters.Lookup(identity)
	if !ok {
		return Voter{}, ErrUnknownIdentity
	}
	return v, nil
}

func (s *Session) requireVoter(caller Identity) error {
	if !s.voters.IsRegistered(caller) {
		return ErrNotRegistered
	}
	return nil
}
