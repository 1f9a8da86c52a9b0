// Package main provides the CLI entrypoint for meeting-conflicts.
//
// meeting-conflicts rewrites data/pcconflicts.csv into
// data/meeting_conflicts.csv, replacing each conflict email with the
// registrant's zoom_email from data/registrants.csv where one exists.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"meeting-conflicts/internal/layout"
	"meeting-conflicts/internal/logging"
	"meeting-conflicts/internal/remap"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "meeting-conflicts",
		Short:         "Generate meeting_conflicts.csv with zoom emails",
		Long:          `Replaces emails in data/pcconflicts.csv with zoom_email from data/registrants.csv and writes data/meeting_conflicts.csv.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Discover()
			if err != nil {
				return err
			}

			return generate(l, stdout, stderr)
		},
	}
}

func generate(l layout.Layout, stdout, stderr io.Writer) error {
	log := logging.New(stderr, zerolog.InfoLevel)

	report, err := remap.Run(l, log)
	if err != nil {
		return err
	}

	printSummary(stdout, report)

	return nil
}

func printSummary(w io.Writer, r remap.Report) {
	fmt.Fprintf(w, "✓ Generated %s\n", r.OutputPath)
	fmt.Fprintf(w, "  Total conflicts: %d\n", r.Total)
	fmt.Fprintf(w, "  Emails replaced: %d\n", r.Replaced)
	fmt.Fprintf(w, "  Emails unchanged: %d\n", r.Unchanged)
}
