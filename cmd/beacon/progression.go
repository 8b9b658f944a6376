package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/beacon/internal/config"
	"github.com/nao1215/beacon/internal/history"
	"github.com/nao1215/beacon/internal/log"
)

// NewProgressionCmd creates the progression command.
func NewProgressionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progression <url>",
		Short: "Show how one URL's scores changed across a collection's runs",
		Long: `Progression tracks a single URL's scores across the runs of one
collection, oldest first, with per-run deltas relative to the first
audited run.

The series is sparse: runs that did not audit the URL are skipped, so a
URL added to the list mid-history still yields a coherent trend.

Examples:
  # Track a URL across the "audit" collection
  beacon progression --name audit https://example.com

  # Export the trend as Markdown
  beacon progression --name audit --markdown https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runProgressionCmd,
	}

	cmd.Flags().StringP("name", "n", "",
		"Collection (run base) name to track the URL across (required)")
	cmd.Flags().StringP("reports-dir", "r", config.DefaultReportsDir,
		"Root directory to scan for run directories")
	addOutputFlags(cmd)

	return cmd
}

// runProgressionCmd executes the progression command.
func runProgressionCmd(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	if name == "" {
		if name = os.Getenv(config.EnvName); name == "" {
			return errors.New("collection name is required (use --name or BEACON_NAME)")
		}
	}

	reportsDir, err := cmd.Flags().GetString("reports-dir")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))

	collections, err := history.NewAggregator(history.WithLogger(logger)).
		Load(context.Background(), reportsDir)
	if err != nil {
		return err
	}

	c := history.FindCollection(collections, name)
	if c == nil {
		return fmt.Errorf("no collection named %q under %s (run 'beacon history' to list collections)",
			name, reportsDir)
	}

	writer, cleanup, err := resolveWriter(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = writer.WriteProgression(history.Progression(c, args[0]))
	return err
}
