// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

// CastVote records caller's single, permanent vote for proposalID.
func (s *Session) CastVote(caller Identity, proposalID int) error {
	if err := s.requireVoter(caller); err != nil {
		return err
	}
	if err := s.pause.requireDisengaged(); err != nil {
		return err
	}
	if err := s.phase.require(Phase.AcceptsVotes, "voting to be open"); err != nil {
		return err
	}
	voter, _ := s.voters.Lookup(caller)
	if voter.HasVoted() {
		return ErrAlreadyVoted
	}
	if _, err := s.proposals.get(proposalID); err != nil {
		return err
	}

	// Both writes are validated above and cannot fail past this point.
	if err := s.proposals.increment(proposalID); err != nil {
		return err
	}
	if err := s.voters.markVoted(caller, proposalID); err != nil {
		return err
	}
	s.emit(voteCast(caller, proposalID))
	return nil
}
