// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quickly-vote/ledger"
)

// ErrStreamDropped means the server disconnected the listener for falling
// behind. Resume with the last sequence number received.
var ErrStreamDropped = errors.New("event stream dropped by server")

// Stream calls fn for every notification after the given sequence number
// until ctx is done, fn returns an error, or the connection ends. It returns
// the last sequence number delivered to fn.
func (c *Client) Stream(ctx context.Context, after int64, fn func(ledger.Record) error) (int64, error) {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http") + "/events/stream?after=" + strconv.FormatInt(after, 10)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return after, fmt.Errorf("failed to open event stream: %w", err)
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	last := after
	for {
		var r ledger.Record
		if err := conn.ReadJSON(&r); err != nil {
			if ctx.Err() != nil {
				return last, ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
				return last, ErrStreamDropped
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return last, nil
			}
			return last, err
		}
		if err := fn(r); err != nil {
			return last, err
		}
		last = r.Seq
	}
}
