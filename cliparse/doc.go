// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing.

# Sources

Settings are read in three layers, later ones winning:

 1. a .env file in the working directory (optional)
 2. environment variables
 3. command-line flags

# Settings

Required:

  - DATABASE_URL (-d): connection string, unless DATABASE_TYPE is memory
  - ADMIN_KEY_SALT (--admin-salt): secret for admin key HMAC; checked by
    RequireSecrets, which only serve and seed call

Optional:

  - PORT (-p): server port (default 3318)
  - DATABASE_TYPE (-t): sqlite (default), postgres or memory
  - IP_HASH_SALT (--ip-salt): secret for hashing voter addresses,
    defaults to ADMIN_KEY_SALT
  - LIST_LIMIT (--list-limit): cap on the question listing, 0 for none
  - ENVIRONMENT (--environment): "dev" switches to development logging

# Usage

	cfg, err := cliparse.Load()
	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	// after flag parsing
	err = cfg.Validate()

The cli package wires these into the cobra root command.
*/
package cliparse
