// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote runs a single phase-gated voting session: an administrator
registers voters, voters submit proposals, each voter casts one vote, and
the administrator closes voting and records the winner.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_IDENTITY=chair IDENTITY_KEY_SALT=secret go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..." -admin chair -key-salt secret

Values in a .env file in the working directory are loaded first.

# Configuration

Required settings:

  - ADMIN_IDENTITY (-admin): The administrator's identity
  - IDENTITY_KEY_SALT (-key-salt): Secret for identity key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:quickly-vote.db for sqlite)
  - WINNER_RULE (-winner-rule): max or pairwise (default: max)
  - RATE_LIMIT (-rate-limit): Writes per second per client, 0 disables
  - TRUST_PROXY (-trust-proxy): Identify clients by X-Forwarded-For (default: false)
  - ALLOWED_ORIGIN (-origin): CORS origin, empty reflects the caller

The administrator's identity key is GenerateIdentityKey(ADMIN_IDENTITY,
IDENTITY_KEY_SALT); `ballotctl key` prints it.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ballot: The voting session (phases, voters, proposals, votes, winner)
  - ledger: Serializes commands, journals them, replays on startup
  - notify: Live fan-out of committed notifications
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - models: Request/response types
  - auth: Identity key generation and validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing
  - client, cmd/ballotctl: Go client and command-line tool

See package documentation for each component.
*/
package main
