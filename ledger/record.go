// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"time"

	"github.com/danielhkuo/quickly-vote/ballot"
)

// Record is a persisted notification.
type Record struct {
	Seq       int64     `json:"seq"`
	ID        string    `json:"id"`
	EntrySeq  int64     `json:"entry_seq"`
	EmittedAt time.Time `json:"emitted_at"`
	ballot.Event
}

// Publisher receives records after they are committed, in sequence order.
type Publisher interface {
	Publish(Record)
}
