// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command ballotctl drives a Quickly Vote server from the terminal.
package main

import (
	"context"
	"os"

	"github.com/danielhkuo/quickly-vote/cmd/ballotctl/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
