// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"testing"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/notify"
	"github.com/danielhkuo/quickly-vote/testutil"
)

const admin = testutil.TestAdmin

type testEnv struct {
	ledger *ledger.Ledger
	hub    *notify.Hub
	cfg    cliparse.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testutil.GetTestConfig()
	hub := notify.NewHub(16)
	l, err := ledger.Open(context.Background(), testutil.SetupTestDB(t), cfg.SessionConfig(), hub)
	if err != nil {
		t.Fatalf("Failed to open ledger: %v", err)
	}
	return &testEnv{ledger: l, hub: hub, cfg: cfg}
}

func (e *testEnv) headers(identity string) map[string]string {
	return testutil.IdentityHeaders(e.cfg, identity)
}

func (e *testEnv) exec(t *testing.T, cmd ledger.Command) ledger.Result {
	t.Helper()
	res, err := e.ledger.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Failed to execute %s: %v", cmd.Kind, err)
	}
	return res
}

func (e *testEnv) advanceTo(t *testing.T, target ballot.Phase) {
	t.Helper()
	for {
		var current ballot.Phase
		_ = e.ledger.Read(func(v ledger.View) error {
			current = v.Phase()
			return nil
		})
		if current >= target {
			return
		}
		e.exec(t, ledger.AdvancePhase(admin))
	}
}

// seedProposals registers voters, has the first one submit each description
// and leaves the session in target.
func (e *testEnv) seedProposals(t *testing.T, voters []string, descriptions []string, target ballot.Phase) {
	t.Helper()
	for _, v := range voters {
		e.exec(t, ledger.RegisterVoter(admin, ballot.Identity(v)))
	}
	e.advanceTo(t, ballot.ProposalsRegistrationOpen)
	for _, d := range descriptions {
		e.exec(t, ledger.SubmitProposal(ballot.Identity(voters[0]), d))
	}
	e.advanceTo(t, target)
}
