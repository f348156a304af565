// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/db"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config
			if cfg.DatabaseType == cliparse.DatabaseMemory {
				return errors.New("memory database has no schema to migrate")
			}

			conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.CreateSchema(conn); err != nil {
				return fmt.Errorf("schema creation failed: %w", err)
			}

			opts.Logger.Infow("database schema ready", "type", cfg.DatabaseType)
			fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
			return nil
		},
	}
}
