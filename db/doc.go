// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open selects a driver by database type:

	conn, err := db.Open("sqlite", "file:ballot.db")
	conn, err := db.Open("postgres", "postgres://...")

sqlite (modernc.org/sqlite) is the default and needs no server. postgres
uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - journal_entry: every accepted command, by sequence number
  - session_event: notifications emitted by those commands

	journal_entry 1──* session_event

The session state itself is not stored; it is rebuilt at startup by
replaying journal_entry in order.
*/
package db
