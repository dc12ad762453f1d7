// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

func newKeyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "key <identity>",
		Short: "print the identity key for an identity (needs --salt)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.salt == "" {
				return errors.New("--salt or IDENTITY_KEY_SALT required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateIdentityKey(args[0], opts.salt))
			return nil
		},
	}
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show the current phase and session counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			status, err := c.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, status)
		},
	}
}

func newAdvanceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "advance",
		Short: "move the session to the next phase (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			step, err := c.AdvancePhase(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", step.Previous, step.Phase)
			return nil
		},
	}
}

func newPauseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "engage the pause switch (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.Pause(cmd.Context()); err != nil {
				return err
			}
			return printJSON(cmd, models.PauseResponse{Paused: true})
		},
	}
}

func newUnpauseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unpause",
		Short: "release the pause switch (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.Unpause(cmd.Context()); err != nil {
				return err
			}
			return printJSON(cmd, models.PauseResponse{Paused: false})
		},
	}
}
