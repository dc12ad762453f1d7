// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "errors"

// Config fixes the parameters of a session at deployment.
type Config struct {
	Admin      Identity
	WinnerRule WinnerRule
}

// Session is a single voting session. It is not safe for concurrent use;
// callers must apply operations one at a time.
type Session struct {
	owner     Ownership
	pause     PauseSwitch
	phase     PhaseController
	voters    VoterRegistry
	proposals ProposalRegistry
	winner    WinnerResolver
	treasury  Treasury

	notifier Notifier
}

func NewSession(cfg Config) (*Session, error) {
	if cfg.Admin == "" {
		return nil, errors.New("administrator identity is required")
	}
	rule, err := ParseWinnerRule(string(cfg.WinnerRule))
	if err != nil {
		return nil, err
	}

	return &Session{
		owner:    Ownership{admin: cfg.Admin},
		voters:   newVoterRegistry(),
		winner:   WinnerResolver{rule: rule},
		treasury: newTreasury(),
	}, nil
}

// Clone returns a deep copy sharing the notifier.
func (s *Session) Clone() *Session {
	return &Session{
		owner:     s.owner,
		pause:     s.pause,
		phase:     s.phase,
		voters:    s.voters.clone(),
		proposals: s.proposals.clone(),
		winner:    s.winner,
		treasury:  s.treasury.clone(),
		notifier:  s.notifier,
	}
}

// SetNotifier replaces the event sink. A nil notifier discards events.
func (s *Session) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *Session) emit(e Event) {
	if s.notifier != nil {
		s.notifier.Notify(e)
	}
}

func (s *Session) Admin() Identity { return s.owner.Admin() }

func (s *Session) Phase() Phase { return s.phase.Current() }

func (s *Session) Paused() bool { return s.pause.Engaged() }

func (s *Session) WinnerRule() WinnerRule { return s.winner.Rule() }

// VoterCount returns the number of registered voters.
func (s *Session) VoterCount() int { return s.voters.Len() }

// ProposalCount returns the number of submitted proposals.
func (s *Session) ProposalCount() int { return s.proposals.Len() }

// AdvancePhase moves the session to the next phase.
func (s *Session) AdvancePhase(caller Identity) error {
	if err := s.owner.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.pause.requireDisengaged(); err != nil {
		return err
	}
	prev, next, err := s.phase.advance()
	if err != nil {
		return err
	}
	s.emit(phaseChanged(prev, next))
	return nil
}

// Pause engages the pause switch.
func (s *Session) Pause(caller Identity) error {
	if err := s.owner.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.pause.engage(); err != nil {
		return err
	}
	s.emit(paused(caller))
	return nil
}

// Unpause disengages the pause switch.
func (s *Session) Unpause(caller Identity) error {
	if err := s.owner.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.pause.disengage(); err != nil {
		return err
	}
	s.emit(unpaused(caller))
	return nil
}
