// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default for sqlite: file:quickly-vote.db)
  - AdminIdentity: The session administrator (required)
  - IdentityKeySalt: Secret for identity key HMAC (required)
  - WinnerRule: max or pairwise (default: max)
  - RateLimit: Mutating requests per second per client, 0 disables
  - TrustProxy: Key rate limits on forwarding headers (default: false)
  - AllowedOrigin: CORS origin, empty allows any

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin        Administrator identity
	-key-salt     Identity key salt
	-winner-rule  Winner rule
	-rate-limit   Requests per second per client
	-trust-proxy  Trust X-Forwarded-For and X-Real-IP
	-origin       Allowed CORS origin
	-env-file     Env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	ADMIN_IDENTITY    → -admin
	IDENTITY_KEY_SALT → -key-salt
	WINNER_RULE       → -winner-rule
	RATE_LIMIT        → -rate-limit
	TRUST_PROXY       → -trust-proxy
	ALLOWED_ORIGIN    → -origin

CLI flags take precedence over environment variables. The env file is
loaded with github.com/joho/godotenv and never overrides variables that are
already set. A missing default .env is ignored; a missing file named with
-env-file is an error.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_IDENTITY must be provided
  - IDENTITY_KEY_SALT must be provided
  - DATABASE_URL must be provided for postgres
*/
package cliparse
