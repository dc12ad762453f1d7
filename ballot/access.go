// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

// Identity is a caller principal.
type Identity string

// Ownership answers whether a caller is the administrator.
type Ownership struct {
	admin Identity
}

func (o Ownership) Admin() Identity {
	return o.admin
}

func (o Ownership) requireAdmin(caller Identity) error {
	if caller == "" || caller != o.admin {
		return ErrUnauthorized
	}
	return nil
}

// PauseSwitch short-circuits state-mutating voting operations while engaged.
type PauseSwitch struct {
	engaged bool
}

func (p PauseSwitch) Engaged() bool {
	return p.engaged
}

func (p PauseSwitch) requireDisengaged() error {
	if p.engaged {
		return ErrServicePaused
	}
	return nil
}

func (p *PauseSwitch) engage() error {
	if p.engaged {
		return ErrServicePaused
	}
	p.engaged = true
	return nil
}

func (p *PauseSwitch) disengage() error {
	if !p.engaged {
		return ErrServiceNotPaused
	}
	p.engaged = false
	return nil
}
