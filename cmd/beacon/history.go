package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/beacon/internal/config"
	"github.com/nao1215/beacon/internal/history"
	"github.com/nao1215/beacon/internal/log"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [collection]",
		Short: "Browse the audit history stored under the reports directory",
		Long: `History rebuilds the audit history from the run directories under the
reports root. Runs sharing a base name form a collection.

Without arguments it lists all collections. With a collection name it
lists that collection's runs, newest first. With --run it shows one
run's per-URL score breakdown.

Nothing is cached: every invocation rescans the reports directory, so
the output always matches what is on disk.

Examples:
  # List all collections
  beacon history

  # List the runs of the "audit" collection, worst score first
  beacon history audit --sort score

  # Show one run's per-URL scores
  beacon history audit --run audit_20250101_000000

  # Export the overview as Markdown
  beacon history --markdown -o history.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("reports-dir", "r", config.DefaultReportsDir,
		"Root directory to scan for run directories")
	cmd.Flags().StringP("sort", "s", string(history.SortByName),
		"Collection sort key: name, score, time, or runs")
	cmd.Flags().String("run", "",
		"Show one run of the given collection by its directory name")
	addOutputFlags(cmd)

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	reportsDir, err := cmd.Flags().GetString("reports-dir")
	if err != nil {
		return err
	}
	sortFlag, err := cmd.Flags().GetString("sort")
	if err != nil {
		return err
	}
	sortKey, err := history.ParseSortKey(sortFlag)
	if err != nil {
		return err
	}
	runName, err := cmd.Flags().GetString("run")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))

	collections, err := history.NewAggregator(history.WithLogger(logger)).
		Load(context.Background(), reportsDir)
	if err != nil {
		return err
	}

	writer, cleanup, err := resolveWriter(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Overview: no collection named.
	if len(args) == 0 {
		if runName != "" {
			return fmt.Errorf("--run requires a collection name argument")
		}
		history.SortCollections(collections, sortKey)
		_, err := writer.WriteCollections(collections)
		return err
	}

	name := args[0]
	c := history.FindCollection(collections, name)
	if c == nil {
		return fmt.Errorf("no collection named %q under %s (run 'beacon history' to list collections)",
			name, reportsDir)
	}

	if runName == "" {
		_, err := writer.WriteCollection(c)
		return err
	}

	for _, run := range c.Runs {
		if run.Name == runName {
			_, err := writer.WriteRun(run)
			return err
		}
	}

	return fmt.Errorf("no run named %q in collection %q", runName, name)
}
