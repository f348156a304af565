// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/pollbooth/models"
)

// Output formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
)

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every question, its choices and tallies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != FormatYAML && format != FormatJSON {
				return fmt.Errorf("invalid format %q: must be one of [yaml json]", format)
			}

			store, closeStore, err := openStore(opts.Config)
			if err != nil {
				return err
			}
			defer closeStore()

			fixture, err := buildFixture(cmd.Context(), opts.service(store))
			if err != nil {
				return err
			}
			return writeFixture(cmd.OutOrStdout(), format, fixture)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatYAML, "output format (yaml|json)")
	return cmd
}

func writeFixture(w io.Writer, format string, f Fixture) error {
	if format == FormatJSON {
		b, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every question with its status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("invalid format %q: must be one of [text json]", format)
			}

			store, closeStore, err := openStore(opts.Config)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := opts.service(store)
			questions, err := svc.ListQuestions(cmd.Context())
			if err != nil {
				return err
			}

			now := svc.Now()
			summaries := make([]models.QuestionSummary, 0, len(questions))
			for _, q := range questions {
				summaries = append(summaries, models.QuestionSummary{
					Question:             q,
					Status:               q.Status(now),
					WasPublishedRecently: q.WasPublishedRecently(now),
				})
			}

			out := cmd.OutOrStdout()
			if format == FormatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tPUBLISHED\tENDS\tRECENT\tTEXT")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
					s.ID, s.Status,
					s.PubDate.Format("2006-01-02 15:04"),
					s.EndDate.Format("2006-01-02 15:04"),
					s.WasPublishedRecently, s.Text)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatText, "output format (text|json)")
	return cmd
}
