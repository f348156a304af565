// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/polls"
)

// RootOptions holds the configuration shared by all commands.
type RootOptions struct {
	Config cliparse.Config
	Logger *zap.SugaredLogger // built from Config when nil
	Clock  polls.Clock        // SystemClock when nil
}

// NewRootCommand creates the root command. cfg carries values already loaded
// from .env and the environment; flags override them.
func NewRootCommand(cfg cliparse.Config) *cobra.Command {
	return newRootCommand(&RootOptions{Config: cfg})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pollbooth",
		Short:         "pollbooth - questions, choices and votes",
		Long:          "A polling service: publish questions on a schedule, collect one vote per submission and report results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Config.Validate(); err != nil {
				return err
			}
			if opts.Logger == nil {
				logger, err := NewLogger(opts.Config)
				if err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
				opts.Logger = logger
			}
			if opts.Clock == nil {
				opts.Clock = polls.SystemClock{}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cliparse.BindFlags(cmd.PersistentFlags(), &opts.Config)

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// NewLogger builds the process logger: development output when
// ENVIRONMENT=dev, JSON production output otherwise.
func NewLogger(cfg cliparse.Config) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevEnvironment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar().With("environment", cfg.Environment), nil
}

func (o *RootOptions) service(store polls.Store) *polls.Service {
	return polls.NewService(store, o.Clock, o.Logger, polls.WithListLimit(o.Config.ListLimit))
}
