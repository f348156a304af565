// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Database types accepted by DATABASE_TYPE / --database-type.
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMemory   = "memory"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	AdminKeySalt string `env:"ADMIN_KEY_SALT"`
	IPHashSalt   string `env:"IP_HASH_SALT"`
	ListLimit    int    `env:"LIST_LIMIT" envDefault:"0"`
	Environment  string `env:"ENVIRONMENT" envDefault:"production"`
}

func (c Config) IsDevEnvironment() bool {
	return c.Environment == "dev"
}

// Load reads .env files (missing files are ignored) and then the process
// environment. Variables already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// BindFlags registers command-line flags on fs. Each flag defaults to the
// value already in cfg, so flags override the environment.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", cfg.DatabaseURL, "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", cfg.DatabaseType, "Database type (sqlite, postgres or memory)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", cfg.AdminKeySalt, "Admin key salt (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", cfg.IPHashSalt, "IP hash salt (prefer env, defaults to admin salt)")

	fs.IntVar(&cfg.ListLimit, "list-limit", cfg.ListLimit, "Maximum questions in the listing (0 = no limit)")
	fs.StringVar(&cfg.Environment, "environment", cfg.Environment, "Environment name (dev enables development logging)")
}

// Validate checks connection settings and fills derived defaults. Secrets
// are checked separately by RequireSecrets.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case DatabaseMemory:
	default:
		return fmt.Errorf("unsupported database type %q", c.DatabaseType)
	}

	if c.IPHashSalt == "" {
		c.IPHashSalt = c.AdminKeySalt
	}

	if c.ListLimit < 0 {
		return errors.New("list limit cannot be negative")
	}

	return nil
}

// RequireSecrets checks the salts needed by commands that issue or verify
// admin keys. Validate must have run first.
func (c Config) RequireSecrets() error {
	if c.AdminKeySalt == "" {
		return errors.New("ADMIN_KEY_SALT required")
	}
	return nil
}
