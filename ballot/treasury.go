// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "fmt"

// Treasury holds value sent to the service. It is independent of voting state.
type Treasury struct {
	held     uint64
	accounts map[Identity]uint64
}

func newTreasury() Treasury {
	return Treasury{accounts: make(map[Identity]uint64)}
}

func (t *Treasury) clone() Treasury {
	c := Treasury{held: t.held, accounts: make(map[Identity]uint64, len(t.accounts))}
	for id, amount := range t.accounts {
		c.accounts[id] = amount
	}
	return c
}

// Held returns the balance in custody.
func (t Treasury) Held() uint64 {
	return t.held
}

// AccountBalance returns the amount paid out to id.
func (t Treasury) AccountBalance(id Identity) uint64 {
	return t.accounts[id]
}

// Deposit adds amount to the service's custody.
func (s *Session) Deposit(from Identity, amount uint64) error {
	if from == "" {
		return ErrInvalidIdentity
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	if s.treasury.held+amount < s.treasury.held {
		return fmt.Errorf("%w: deposit of %d overflows balance", ErrInvalidAmount, amount)
	}

	s.treasury.held += amount
	s.emit(fundsDeposited(from, amount))
	return nil
}

// WithdrawFunds moves the entire held balance to the administrator's
// account and returns the amount moved.
func (s *Session) WithdrawFunds(caller Identity) (uint64, error) {
	if err := s.owner.requireAdmin(caller); err != nil {
		return 0, err
	}

	amount := s.treasury.held
	s.treasury.held = 0
	s.treasury.accounts[caller] += amount
	s.emit(fundsWithdrawn(caller, amount))
	return amount, nil
}

// Funds returns the held balance and the administrator's account balance.
func (s *Session) Funds(caller Identity) (held, paidOut uint64, err error) {
	if err := s.owner.requireAdmin(caller); err != nil {
		return 0, 0, err
	}
	return s.treasury.Held(), s.treasury.AccountBalance(caller), nil
}
