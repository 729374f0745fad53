// Package cmd defines and implements the CLI commands for the jobfeed
// executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobfeed",
		Short: "Aggregates remote job feeds into one dataset",
		Long: `jobfeed ingests job postings from configured RSS feeds and JSON APIs,
normalizes and classifies them, removes duplicates across sources, and
writes a single consolidated JSON document for a downstream site build
to consume.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (defaults and env vars apply when omitted)")
	cmd.AddCommand(newAggregateCmd())

	return cmd
}

// Execute is the main entry point. A failed run exits non-zero.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
