// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/notify"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func newTestServer(t *testing.T) (string, string) {
	t.Helper()

	cfg := testutil.GetTestConfig()
	hub := notify.NewHub(16)
	l, err := ledger.Open(context.Background(), testutil.SetupTestDB(t), cfg.SessionConfig(), hub)
	require.NoError(t, err)

	server := httptest.NewServer(router.NewRouter(l, hub, cfg))
	t.Cleanup(server.Close)
	return server.URL, cfg.IdentityKeySalt
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestKeyCommand(t *testing.T) {
	out, err := run(t, "key", "alice", "--salt", "pepper")
	require.NoError(t, err)
	assert.Equal(t, auth.GenerateIdentityKey("alice", "pepper"), strings.TrimSpace(out))

	t.Setenv("IDENTITY_KEY_SALT", "")
	_, err = run(t, "key", "alice")
	assert.Error(t, err)
}

func TestIdentityNeedsKey(t *testing.T) {
	t.Setenv("BALLOT_KEY", "")
	t.Setenv("IDENTITY_KEY_SALT", "")

	_, err := run(t, "status", "--identity", "alice")
	assert.ErrorContains(t, err, "--key or --salt")
}

func TestSessionCommands(t *testing.T) {
	server, salt := newTestServer(t)
	as := func(identity string, args ...string) (string, error) {
		return run(t, append([]string{"--server", server, "--identity", identity, "--salt", salt}, args...)...)
	}

	out, err := as(testutil.TestAdmin, "register", "alice", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, `"identity": "alice"`)
	assert.Contains(t, out, `"identity": "bob"`)

	out, err = as(testutil.TestAdmin, "advance")
	require.NoError(t, err)
	assert.Equal(t, "registering_voters -> proposals_registration_open\n", out)

	out, err = as("alice", "propose", "Team", "lunch")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = as("mallory", "propose", "Sneaky")
	assert.ErrorContains(t, err, "not_registered")

	for i := 0; i < 2; i++ {
		_, err = as(testutil.TestAdmin, "advance")
		require.NoError(t, err)
	}

	out, err = as("bob", "vote", "0")
	require.NoError(t, err)
	assert.Equal(t, "voted for proposal 0\n", out)

	out, err = as("alice", "proposals")
	require.NoError(t, err)
	assert.Equal(t, "0\t1\tTeam lunch\n", out)

	_, err = as("bob", "vote", "zero")
	assert.ErrorContains(t, err, "invalid proposal id")

	out, err = run(t, "--server", server, "events", "--after", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "proposal_registered"`)
	assert.NotContains(t, out, `"kind": "voter_registered"`)
}

func TestFundsCommands(t *testing.T) {
	server, salt := newTestServer(t)
	as := func(identity string, args ...string) (string, error) {
		return run(t, append([]string{"--server", server, "--identity", identity, "--salt", salt}, args...)...)
	}

	_, err := as("donor", "deposit", "25")
	require.NoError(t, err)

	_, err = as("donor", "withdraw")
	assert.ErrorContains(t, err, "unauthorized")

	out, err := as(testutil.TestAdmin, "withdraw")
	require.NoError(t, err)
	assert.Contains(t, out, `"amount": 25`)

	out, err = as(testutil.TestAdmin, "funds")
	require.NoError(t, err)
	assert.Contains(t, out, `"paid_out": 25`)
}
