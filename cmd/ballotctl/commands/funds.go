// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/models"
)

func newDepositCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <amount>",
		Short: "deposit funds into the service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.Deposit(cmd.Context(), amount); err != nil {
				return err
			}
			return printJSON(cmd, models.AmountResponse{Amount: amount})
		},
	}
}

func newWithdrawCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "sweep held funds to the administrator (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			amount, err := c.Withdraw(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, models.AmountResponse{Amount: amount})
		},
	}
}

func newFundsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "funds",
		Short: "show held and paid-out balances (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			funds, err := c.Funds(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, funds)
		},
	}
}
