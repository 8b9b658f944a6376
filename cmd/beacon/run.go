package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/beacon/internal/audit"
	"github.com/nao1215/beacon/internal/config"
	"github.com/nao1215/beacon/internal/log"
	"github.com/nao1215/beacon/internal/runner"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [url...]",
		Short: "Audit a list of URLs and store the reports in a run directory",
		Long: `Run audits every given URL with the Lighthouse CLI, strictly one at a
time, and writes one HTML report artifact per URL into a fresh
timestamped run directory under the reports root.

URLs are taken from the positional arguments, or from a URL list file
(one URL per line) when no arguments are given. A failing audit is
recorded and skipped; it never aborts the rest of the batch.

Examples:
  # Audit two URLs into reports/audit_<timestamp>/
  beacon run --name audit https://example.com https://example.org

  # Audit the URLs listed in urls.txt
  beacon run --name audit --file urls.txt

  # Annotate the run for later reference
  beacon run --name audit --note "after image optimization" https://example.com

  # Pass extra arguments to Lighthouse
  beacon run --name audit --extra-arg=--only-categories=performance https://example.com

Environment variables BEACON_NAME and BEACON_REPORT_PREFIX override the
--name and --prefix flags, so CI setups can pin them without editing the
invocation.`,
		Args: cobra.ArbitraryArgs,
		RunE: runRunCmd,
	}

	cmd.Flags().StringP("name", "n", "",
		"Run base name; the run directory is named <name>_<timestamp> (required unless BEACON_NAME is set)")
	cmd.Flags().StringP("file", "f", config.DefaultURLFile,
		"URL list file, one URL per line (used when no URLs are given as arguments)")
	cmd.Flags().StringP("reports-dir", "r", config.DefaultReportsDir,
		"Root directory for run directories")
	cmd.Flags().StringP("prefix", "p", config.DefaultReportPrefix,
		"Artifact file name prefix")
	cmd.Flags().String("note", "",
		"Free-text note stored in the run directory's metadata file")
	cmd.Flags().String("lighthouse", config.DefaultLighthousePath,
		"Lighthouse binary path or name resolved via PATH")
	cmd.Flags().String("chrome-flags", config.DefaultChromeFlags,
		"Flags passed to the Chrome instance Lighthouse launches")
	cmd.Flags().StringArray("extra-arg", nil,
		"Extra argument appended to every Lighthouse invocation (repeatable)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultAuditTimeout,
		"Timeout for a single URL's audit (0 disables the limit)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .beacon in current or home directory)")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildRunConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Cancel the batch between URLs on Ctrl-C; the partial run directory
	// stays valid for the history commands.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("received shutdown signal, finishing the current audit...")
		cancel()
	}()

	return runBatch(ctx, cfg, logger)
}

// buildRunConfig creates a Config from flags, the optional config file, and
// environment variables. Precedence, lowest to highest: built-in defaults,
// config file, flags, environment.
func buildRunConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	explicitPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = explicitPath

	// If the user explicitly named a config file, a missing file is an
	// error. Otherwise a missing file just means defaults.
	configPath := config.FindConfigFile(explicitPath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if explicitPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, explicitPath)
	}

	if err := applyRunFlags(cmd, cfg); err != nil {
		return nil, err
	}

	// Environment beats flags.
	if name := os.Getenv(config.EnvName); name != "" {
		cfg.Name = name
	}
	if prefix := os.Getenv(config.EnvReportPrefix); prefix != "" {
		cfg.ReportPrefix = prefix
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if err := resolveTargets(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyRunFlags overlays flag values onto the Config. Flags the user did not
// set keep the config file's (or built-in) values.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("name") || cfg.Name == "" {
		name, err := flags.GetString("name")
		if err != nil {
			return err
		}
		if name != "" {
			cfg.Name = name
		}
	}
	if flags.Changed("file") {
		file, err := flags.GetString("file")
		if err != nil {
			return err
		}
		cfg.URLFile = file
	}
	if flags.Changed("reports-dir") {
		dir, err := flags.GetString("reports-dir")
		if err != nil {
			return err
		}
		cfg.ReportsDir = dir
	}
	if flags.Changed("prefix") {
		prefix, err := flags.GetString("prefix")
		if err != nil {
			return err
		}
		cfg.ReportPrefix = prefix
	}
	if flags.Changed("lighthouse") {
		path, err := flags.GetString("lighthouse")
		if err != nil {
			return err
		}
		cfg.LighthousePath = path
	}
	if flags.Changed("chrome-flags") {
		chromeFlags, err := flags.GetString("chrome-flags")
		if err != nil {
			return err
		}
		cfg.ChromeFlags = chromeFlags
	}
	if flags.Changed("extra-arg") {
		extra, err := flags.GetStringArray("extra-arg")
		if err != nil {
			return err
		}
		cfg.ExtraArgs = extra
	}
	if flags.Changed("timeout") {
		timeout, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.AuditTimeout = timeout
	}

	note, err := flags.GetString("note")
	if err != nil {
		return err
	}
	cfg.Note = note

	return nil
}

// resolveTargets fills cfg.Targets from positional arguments or the URL
// list file.
func resolveTargets(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		cfg.Targets = args
		return nil
	}

	urls, err := runner.ReadURLFile(cfg.URLFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no URLs given and URL file %s does not exist", cfg.URLFile)
		}
		return err
	}
	cfg.Targets = urls

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runBatch wires the audit engine and the runner, executes the batch, and
// prints the summary.
func runBatch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	engine := audit.NewLighthouse(
		audit.WithPath(cfg.LighthousePath),
		audit.WithChromeFlags(cfg.ChromeFlags),
		audit.WithExtraArgs(cfg.ExtraArgs),
		audit.WithTimeout(cfg.AuditTimeout),
		audit.WithLogger(logger),
	)

	r := runner.New(engine,
		runner.WithReportPrefix(cfg.ReportPrefix),
		runner.WithNote(cfg.Note),
		runner.WithLogger(logger),
	)

	fmt.Printf("Auditing %d URL(s) as %q...\n\n", len(cfg.Targets), cfg.Name)
	startTime := time.Now()

	result, err := r.RunBatch(ctx, cfg.Name, cfg.Targets, cfg.ReportsDir)
	if err != nil {
		if errors.Is(err, context.Canceled) && result != nil {
			fmt.Printf("\nRun cancelled after %d of %d URL(s). Partial results: %s\n",
				result.Attempted, len(cfg.Targets), result.Dir)
			return nil
		}
		return err
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Run complete in %s: %d succeeded, %d failed\n",
		elapsed.Round(time.Millisecond), result.Succeeded, result.Failed)
	fmt.Printf("Reports: %s\n", result.Dir)

	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "  failed: %s (%s)\n", failure.URL, failure.Reason)
	}

	return nil
}
