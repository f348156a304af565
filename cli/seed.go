// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/polls"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Create questions and choices from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Config.RequireSecrets(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			fixture, err := ReadFixture(f)
			if err != nil {
				return err
			}

			store, closeStore, err := openStore(opts.Config)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := opts.service(store)
			out := cmd.OutOrStdout()
			for i, fq := range fixture.Questions {
				choices := make([]string, 0, len(fq.Choices))
				for _, c := range fq.Choices {
					if c.Votes != 0 {
						opts.Logger.Warnw("ignoring votes in fixture", "question", fq.Text, "choice", c.Text)
					}
					choices = append(choices, c.Text)
				}

				qc, err := svc.CreateQuestion(cmd.Context(), polls.NewQuestion{
					Text:    fq.Text,
					PubDate: fq.PubDate,
					EndDate: fq.EndDate,
					Choices: choices,
				})
				if err != nil {
					return fmt.Errorf("question %d: %w", i+1, err)
				}

				fmt.Fprintf(out, "%s\t%s\tadmin_key=%s\n",
					qc.Question.ID, qc.Question.Text,
					auth.GenerateAdminKey(qc.Question.ID, opts.Config.AdminKeySalt))
			}
			return nil
		},
	}
}
