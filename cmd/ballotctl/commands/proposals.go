// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProposeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "propose <description>",
		Short: "submit a proposal and print its id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			id, err := c.SubmitProposal(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newProposalsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "proposals",
		Short: "list proposals (with vote counts once voting opens)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			proposals, err := c.Proposals(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range proposals {
				if p.VoteCount != nil {
					fmt.Fprintf(out, "%d\t%d\t%s\n", p.ID, *p.VoteCount, p.Description)
				} else {
					fmt.Fprintf(out, "%d\t%s\n", p.ID, p.Description)
				}
			}
			return nil
		},
	}
}
