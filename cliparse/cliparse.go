// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/ballot"
)

const defaultEnvFile = ".env"

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	IdentityKeySalt string
	AdminIdentity   string
	WinnerRule      ballot.WinnerRule
	RateLimit       float64
	TrustProxy      bool
	AllowedOrigin   string
}

// SessionConfig returns the parameters the voting session is created with.
func (c Config) SessionConfig() ballot.Config {
	return ballot.Config{
		Admin:      ballot.Identity(c.AdminIdentity),
		WinnerRule: c.WinnerRule,
	}
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, winnerRule, rateLimit, trustProxy string

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin (default: any)")
	fs.StringVar(&rateLimit, "rate-limit", "", "Mutating requests per second per client (0 disables)")
	fs.StringVar(&trustProxy, "trust-proxy", "", "Key rate limits on X-Forwarded-For (only behind a reverse proxy)")

	// Session parameters
	fs.StringVar(&cfg.AdminIdentity, "admin", "", "Administrator identity")
	fs.StringVar(&winnerRule, "winner-rule", "", "Winner rule (max or pairwise)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentityKeySalt, "key-salt", "", "Identity key salt (prefer env)")

	fs.StringVar(&envFile, "env-file", defaultEnvFile, "File of KEY=value pairs loaded into the environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := godotenv.Load(envFile); err != nil {
		if envFile != defaultEnvFile || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:quickly-vote.db"
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	if rateLimit == "" {
		rateLimit = os.Getenv("RATE_LIMIT")
	}
	if rateLimit != "" {
		limit, err := strconv.ParseFloat(rateLimit, 64)
		if err != nil || limit < 0 {
			return Config{}, errors.New("invalid rate limit")
		}
		cfg.RateLimit = limit
	}

	if trustProxy == "" {
		trustProxy = os.Getenv("TRUST_PROXY")
	}
	if trustProxy != "" {
		trust, err := strconv.ParseBool(trustProxy)
		if err != nil {
			return Config{}, errors.New("invalid trust proxy setting")
		}
		cfg.TrustProxy = trust
	}

	if winnerRule == "" {
		winnerRule = os.Getenv("WINNER_RULE")
	}
	rule, err := ballot.ParseWinnerRule(winnerRule)
	if err != nil {
		return Config{}, err
	}
	cfg.WinnerRule = rule

	if cfg.AdminIdentity == "" {
		cfg.AdminIdentity = os.Getenv("ADMIN_IDENTITY")
	}
	if cfg.AdminIdentity == "" {
		return Config{}, errors.New("ADMIN_IDENTITY required")
	}

	// Secrets - MUST be provided
	if cfg.IdentityKeySalt == "" {
		cfg.IdentityKeySalt = os.Getenv("IDENTITY_KEY_SALT")
	}
	if cfg.IdentityKeySalt == "" {
		return Config{}, errors.New("IDENTITY_KEY_SALT required")
	}

	return cfg, nil
}
