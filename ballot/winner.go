// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "fmt"

// WinnerRule selects the winning proposal from the final tallies.
type WinnerRule string

const (
	// RuleMax picks the proposal with the most votes. The lowest ID wins
	// ties, so proposal 0 wins when nobody voted.
	RuleMax WinnerRule = "max"

	// RulePairwise sets the target count to the larger of each adjacent
	// pair while scanning forward, then picks the first proposal whose
	// count equals the final target. Only the last pair determines the
	// target, so a larger count earlier in the list can lose. Proposal 0 is
	// returned when nothing matches.
	RulePairwise WinnerRule = "pairwise"
)

// ParseWinnerRule validates s. An empty string selects RuleMax.
func ParseWinnerRule(s string) (WinnerRule, error) {
	switch WinnerRule(s) {
	case "", RuleMax:
		return RuleMax, nil
	case RulePairwise:
		return RulePairwise, nil
	default:
		return "", fmt.Errorf("unknown winner rule %q", s)
	}
}

func (r WinnerRule) pick(counts []uint64) int {
	switch r {
	case RulePairwise:
		return pickPairwise(counts)
	default:
		return pickMax(counts)
	}
}

func pickMax(counts []uint64) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}

func pickPairwise(counts []uint64) int {
	var target uint64
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[i-1] {
			target = counts[i]
		} else {
			target = counts[i-1]
		}
	}
	for i, c := range counts {
		if c == target {
			return i
		}
	}
	return 0
}

// WinnerResolver owns the recorded winning proposal ID.
type WinnerResolver struct {
	rule     WinnerRule
	winner   int
	resolved bool
}

func (w WinnerResolver) Rule() WinnerRule {
	return w.rule
}

// Recorded returns the winning ID and whether it has been resolved.
func (w WinnerResolver) Recorded() (int, bool) {
	return w.winner, w.resolved
}

// ResolveWinner computes and records the winning proposal. Administrator
// only, once Tallied is reached. Later calls return the recorded ID.
func (s *Session) ResolveWinner(caller Identity) (int, error) {
	if err := s.owner.requireAdmin(caller); err != nil {
		return 0, err
	}
	if !s.phase.Current().IsTallied() {
		return 0, ErrNotYetTallied
	}
	if id, ok := s.winner.Recorded(); ok {
		return id, nil
	}

	s.winner.winner = s.winner.rule.pick(s.proposals.counts())
	s.winner.resolved = true
	s.emit(winnerResolved(s.winner.winner))
	return s.winner.winner, nil
}

// RecordWinner restores a winning ID that was resolved earlier, without
// consulting the winner rule. It is subject to the same administrator and
// phase checks as ResolveWinner. Restoring the already recorded ID is a
// no-op; restoring a different one fails.
func (s *Session) RecordWinner(caller Identity, id int) error {
	if err := s.owner.requireAdmin(caller); err != nil {
		return err
	}
	if !s.phase.Current().IsTallied() {
		return ErrNotYetTallied
	}
	if recorded, ok := s.winner.Recorded(); ok {
		if recorded != id {
			return fmt.Errorf("winner already recorded as proposal %d, not %d", recorded, id)
		}
		return nil
	}
	// Proposal 0 is the default winner even when nothing was proposed.
	if id < 0 || (id > 0 && id >= s.proposals.Len()) {
		return ErrNoSuchProposal
	}

	s.winner.winner = id
	s.winner.resolved = true
	s.emit(winnerResolved(id))
	return nil
}

// Winner returns the recorded winning proposal ID to a registered voter.
// It fails with ErrNotYetTallied before Tallied, and also in Tallied until
// ResolveWinner has recorded a result; no default ID is reported.
func (s *Session) Winner(caller Identity) (int, error) {
	if err := s.requireVoter(caller); err != nil {
		return 0, err
	}
	id, ok := s.winner.Recorded()
	if !s.phase.Current().IsTallied() || !ok {
		return 0, ErrNotYetTallied
	}
	return id, nil
}
