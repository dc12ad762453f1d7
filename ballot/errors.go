// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "errors"

var (
	ErrUnauthorized     = errors.New("caller is not the administrator")
	ErrNotRegistered    = errors.New("caller is not a registered voter")
	ErrUnknownIdentity  = errors.New("identity is not registered")
	ErrWrongPhase       = errors.New("operation not allowed in current phase")
	ErrProcessEnded     = errors.New("voting process has ended")
	ErrAlreadyVoted     = errors.New("voter has already voted")
	ErrNoSuchProposal   = errors.New("proposal does not exist")
	ErrEmptyDescription = errors.New("proposal description is empty")
	ErrServicePaused    = errors.New("service is paused")
	ErrServiceNotPaused = errors.New("service is not paused")
	ErrNotYetTallied    = errors.New("votes have not been tallied")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidIdentity  = errors.New("identity must not be empty")
)
