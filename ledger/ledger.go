// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-vote/ballot"
)

var ErrStorage = errors.New("failed to persist command")

// View is the read-only surface of a session.
type View interface {
	Admin() ballot.Identity
	Phase() ballot.Phase
	Paused() bool
	WinnerRule() ballot.WinnerRule
	VoterCount() int
	ProposalCount() int

	IsRegistered(caller, identity ballot.Identity) (bool, error)
	HasVoted(caller, identity ballot.Identity) (bool, error)
	VotedProposalOf(caller, identity ballot.Identity) (ballot.VoteRecord, error)
	DescriptionOf(caller ballot.Identity, id int) (string, error)
	VoteCountOf(caller ballot.Identity, id int) (uint64, error)
	Proposals(caller ballot.Identity) ([]ballot.ProposalSummary, error)
	Winner(caller ballot.Identity) (int, error)
	Funds(caller ballot.Identity) (held, paidOut uint64, err error)
}

// Ledger hosts the session. It applies commands one at a time, journals
// each accepted command together with the notifications it produced, and
// rebuilds the session from the journal on Open.
type Ledger struct {
	mu        sync.RWMutex
	db        *sql.DB
	session   *ballot.Session
	nextEntry int64
	nextEvent int64
	publisher Publisher
	now       func() time.Time
}

// Open replays the journal stored in db into a new session.
func Open(ctx context.Context, db *sql.DB, cfg ballot.Config, publisher Publisher) (*Ledger, error) {
	session, err := ballot.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		db:        db,
		session:   session,
		nextEntry: 1,
		nextEvent: 1,
		publisher: publisher,
		now:       time.Now,
	}

	if err := l.replay(ctx); err != nil {
		return nil, err
	}

	var lastEvent int64
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM session_event`).Scan(&lastEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to read event sequence: %w", err)
	}
	l.nextEvent = lastEvent + 1

	slog.Info("session restored",
		"entries", l.nextEntry-1,
		"phase", session.Phase().String(),
		"voters", session.VoterCount(),
		"proposals", session.ProposalCount(),
	)
	return l, nil
}

func (l *Ledger) replay(ctx context.Context) error {
	rows, err := l.db.QueryContext(ctx, `
		SELECT seq, kind, caller, payload
		FROM journal_entry
		ORDER BY seq
	`)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		var kind, caller, payload string
		if err := rows.Scan(&seq, &kind, &caller, &payload); err != nil {
			return fmt.Errorf("failed to scan journal entry: %w", err)
		}

		cmd := Command{Kind: Kind(kind), Caller: ballot.Identity(caller)}
		if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
			return fmt.Errorf("failed to decode journal entry %d: %w", seq, err)
		}
		if seq != l.nextEntry {
			return fmt.Errorf("journal gap: expected entry %d, found %d", l.nextEntry, seq)
		}
		if _, err := apply(l.session, cmd); err != nil {
			return fmt.Errorf("journal entry %d (%s) no longer applies: %w", seq, kind, err)
		}
		l.nextEntry++
	}
	return rows.Err()
}

// Execute applies cmd. On error nothing is applied or persisted.
func (l *Ledger) Execute(ctx context.Context, cmd Command) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cmd.Kind == KindResolveWinner {
		cmd.Winner = nil
	}

	draft := l.session.Clone()
	var emitted []ballot.Event
	draft.SetNotifier(ballot.NotifierFunc(func(e ballot.Event) {
		emitted = append(emitted, e)
	}))

	res, err := apply(draft, cmd)
	if err != nil {
		return Result{}, err
	}
	draft.SetNotifier(nil)

	// Commands that change nothing (a repeated resolution) emit nothing and
	// are not journaled.
	if len(emitted) == 0 {
		return res, nil
	}

	if cmd.Kind == KindResolveWinner {
		winner := res.ProposalID
		cmd.Winner = &winner
	}

	records, err := l.persist(ctx, cmd, emitted)
	if err != nil {
		slog.Error("failed to persist command", "kind", cmd.Kind, "caller", cmd.Caller, "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	l.session = draft
	l.nextEntry++
	l.nextEvent += int64(len(records))
	res.Events = records

	slog.Info("command applied",
		"kind", cmd.Kind,
		"caller", cmd.Caller,
		"entry_seq", l.nextEntry-1,
		"events", len(records),
	)

	if l.publisher != nil {
		for _, r := range records {
			l.publisher.Publish(r)
		}
	}
	return res, nil
}

func (l *Ledger) persist(ctx context.Context, cmd Command, events []ballot.Event) ([]Record, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, err
	}

	now := l.now().UTC()
	stamp := now.Format(time.RFC3339Nano)

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO journal_entry (seq, kind, caller, payload, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`, l.nextEntry, string(cmd.Kind), string(cmd.Caller), string(payload), stamp)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(events))
	for i, e := range events {
		records[i] = Record{
			Seq:       l.nextEvent + int64(i),
			ID:        uuid.NewString(),
			EntrySeq:  l.nextEntry,
			EmittedAt: now,
			Event:     e,
		}
		body, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO session_event (seq, id, entry_seq, kind, payload, emitted_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, records[i].Seq, records[i].ID, records[i].EntrySeq, string(e.Kind), string(body), stamp)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return records, nil
}

// Read calls fn with the current session while holding a read lock.
func (l *Ledger) Read(fn func(View) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(l.session)
}

// Events returns up to limit persisted records with Seq greater than after.
func (l *Ledger) Events(ctx context.Context, after int64, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT seq, id, entry_seq, payload, emitted_at
		FROM session_event
		WHERE seq > $1
		ORDER BY seq
		LIMIT $2
	`, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		var payload, emittedAt string
		if err := rows.Scan(&r.Seq, &r.ID, &r.EntrySeq, &payload, &emittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &r.Event); err != nil {
			return nil, fmt.Errorf("failed to decode event %d: %w", r.Seq, err)
		}
		r.EmittedAt, err = time.Parse(time.RFC3339Nano, emittedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event %d timestamp: %w", r.Seq, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
