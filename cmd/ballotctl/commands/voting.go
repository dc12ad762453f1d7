// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newVoteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <proposal-id>",
		Short: "cast your vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid proposal id %q", args[0])
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.CastVote(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "voted for proposal %d\n", id)
			return nil
		},
	}
}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "record the winning proposal (admin, tallied only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			id, err := c.ResolveWinner(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newWinnerCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "winner",
		Short: "show the recorded winner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			w, err := c.Winner(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, w)
		},
	}
}
