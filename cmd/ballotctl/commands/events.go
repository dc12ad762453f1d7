// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
	"github.com/danielhkuo/quickly-vote/ledger"
)

const reconnectDelay = time.Second

func newEventsCmd(opts *globalOptions) *cobra.Command {
	var after int64
	var limit int
	var follow bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "print session notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if !follow {
				page, err := c.Events(cmd.Context(), after, limit)
				if err != nil {
					return err
				}
				return printJSON(cmd, page)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return followStream(ctx, cmd, c, after)
		},
	}

	cmd.Flags().Int64Var(&after, "after", 0, "only notifications with a greater sequence number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (server default when 0)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "stream notifications until interrupted")
	return cmd
}

// followStream prints live notifications, resuming after the last one seen
// whenever the server drops the stream.
func followStream(ctx context.Context, cmd *cobra.Command, c *client.Client, after int64) error {
	for {
		last, err := c.Stream(ctx, after, func(r ledger.Record) error {
			return printJSON(cmd, r)
		})
		after = last
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, client.ErrStreamDropped):
			fmt.Fprintf(cmd.ErrOrStderr(), "stream dropped, resuming after %d\n", after)
		case err != nil:
			return err
		default:
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}
