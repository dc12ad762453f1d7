// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Column types are limited to what both postgres and sqlite accept.
// Timestamps are stored as RFC 3339 text.
const schema = `
-- Accepted commands, in the order they were applied
CREATE TABLE IF NOT EXISTS journal_entry (
    seq BIGINT PRIMARY KEY,
    kind TEXT NOT NULL,
    caller TEXT NOT NULL,
    payload TEXT NOT NULL,
    recorded_at TEXT NOT NULL
);

-- Notifications emitted by accepted commands
CREATE TABLE IF NOT EXISTS session_event (
    seq BIGINT PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    entry_seq BIGINT NOT NULL REFERENCES journal_entry(seq),
    kind TEXT NOT NULL,
    payload TEXT NOT NULL,
    emitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_event_entry_seq ON session_event(entry_seq);
CREATE INDEX IF NOT EXISTS idx_session_event_kind ON session_event(kind);
`
