// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"github.com/spf13/cobra"
)

func newRegisterCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register <identity>...",
		Short: "register voters and print their identity keys (admin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			for _, identity := range args {
				reg, err := c.RegisterVoter(cmd.Context(), identity)
				if err != nil {
					return err
				}
				if err := printJSON(cmd, reg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVoterCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "voter <identity>",
		Short: "show a voter's registration and vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			status, err := c.Voter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, status)
		},
	}
}
