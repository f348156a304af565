// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/db"
	"github.com/danielhkuo/pollbooth/memstore"
	"github.com/danielhkuo/pollbooth/polls"
)

// openStore connects the configured backend and makes sure the schema
// exists. The returned func releases it.
func openStore(cfg cliparse.Config) (polls.Store, func() error, error) {
	if cfg.DatabaseType == cliparse.DatabaseMemory {
		return memstore.New(), func() error { return nil }, nil
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("schema creation failed: %w", err)
	}
	return db.NewStore(conn), conn.Close, nil
}
