// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify broadcasts committed session events to live listeners.

The ledger publishes every record after its transaction commits:

	hub := notify.NewHub(64)
	l, err := ledger.Open(ctx, conn, cfg.SessionConfig(), hub)

Listeners subscribe and read until the channel closes:

	sub := hub.Subscribe()
	defer sub.Close()
	for r := range sub.C() {
		...
	}

Publish never blocks the ledger. A subscriber whose buffer is full is
dropped and its channel closed; the listener reconnects and replays from
the persisted log with ledger.Events, so delivery is at-least-once.
*/
package notify
