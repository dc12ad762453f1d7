// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
)

const defaultServer = "http://localhost:3318"

type globalOptions struct {
	server   string
	identity string
	key      string
	salt     string
}

// NewRootCmd builds the ballotctl command tree. Flags fall back to
// BALLOT_SERVER, BALLOT_IDENTITY, BALLOT_KEY and IDENTITY_KEY_SALT.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "ballotctl",
		Short:        "ballotctl - drive a Quickly Vote session",
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&opts.server, "server", "s", envOr("BALLOT_SERVER", defaultServer), "server base URL")
	root.PersistentFlags().StringVarP(&opts.identity, "identity", "i", os.Getenv("BALLOT_IDENTITY"), "identity to act as (empty for anonymous)")
	root.PersistentFlags().StringVarP(&opts.key, "key", "k", os.Getenv("BALLOT_KEY"), "identity key")
	root.PersistentFlags().StringVar(&opts.salt, "salt", os.Getenv("IDENTITY_KEY_SALT"), "derive the identity key from the server salt instead of --key")

	root.AddCommand(
		newKeyCmd(opts),
		newStatusCmd(opts),
		newAdvanceCmd(opts),
		newPauseCmd(opts),
		newUnpauseCmd(opts),
		newRegisterCmd(opts),
		newVoterCmd(opts),
		newProposeCmd(opts),
		newProposalsCmd(opts),
		newVoteCmd(opts),
		newResolveCmd(opts),
		newWinnerCmd(opts),
		newDepositCmd(opts),
		newWithdrawCmd(opts),
		newFundsCmd(opts),
		newEventsCmd(opts),
	)
	return root
}

func (o *globalOptions) client() (*client.Client, error) {
	switch {
	case o.identity == "":
		return client.New(o.server), nil
	case o.key != "":
		return client.New(o.server, client.WithIdentity(o.identity, o.key)), nil
	case o.salt != "":
		return client.New(o.server, client.WithSalt(o.identity, o.salt)), nil
	default:
		return nil, errors.New("--identity needs --key or --salt")
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// printJSON writes v indented to the command's output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}
