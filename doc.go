// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for pollbooth.

pollbooth publishes questions on a schedule, accepts votes for one choice
while a question is open and reports the tallies.

# Starting the Server

	ADMIN_KEY_SALT=... go run . serve

Or with flags:

	go run . serve -p 3318 -t postgres -d "postgres://..."

With no DATABASE_TYPE, data lives in a sqlite file given by DATABASE_URL
(for example file:polls.db).

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - DATABASE_URL (-d): unless DATABASE_TYPE=memory

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - IP_HASH_SALT (--ip-salt): Secret for hashing voter addresses
  - LIST_LIMIT (--list-limit): Cap on the listing (default: none)
  - ENVIRONMENT (--environment): "dev" switches to development logging

Values are read from .env first, then the environment, then flags.

# Architecture

  - polls: domain types, lifecycle predicates, voting service, Store interface
  - db: database/sql Store for sqlite and postgres, schema
  - memstore: in-memory Store
  - handlers: HTTP request handlers (questions, admin, voters)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin keys, voter identity, JSON helpers
  - models: Request/response types
  - auth: Admin keys, voter tokens, IP hashing
  - cliparse: Configuration parsing
  - cli: cobra commands (serve, migrate, seed, export, list)

See package documentation for each component.
*/
package main
