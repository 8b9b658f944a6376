package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nao1215/beacon/internal/artifact"
	"github.com/nao1215/beacon/internal/audit"
	"github.com/nao1215/beacon/internal/model"
)

// MetadataFilename is the optional free-text file written into a run
// directory. The runner treats its content as opaque; the history commands
// surface it as display text.
const MetadataFilename = "metadata.txt"

// Runner executes batch audit runs with a configured audit engine.
type Runner struct {
	// engine produces one report artifact per audited URL.
	engine audit.Engine

	// prefix is the artifact file name prefix.
	prefix string

	// note is free-text run metadata, written to MetadataFilename when
	// non-empty.
	note string

	// now supplies the run start time; injectable for tests.
	now func() time.Time

	// logger is used for structured logging during the batch.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithReportPrefix sets the artifact file name prefix.
// If empty, the prefix "report" is kept.
func WithReportPrefix(prefix string) Option {
	return func(r *Runner) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithNote sets the free-text metadata written into the run directory.
func WithNote(note string) Option {
	return func(r *Runner) {
		r.note = note
	}
}

// WithClock overrides the time source used for the run timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner driving the given audit engine.
func New(engine audit.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine: engine,
		prefix: "report",
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// URLFailure records one URL whose audit failed.
type URLFailure struct {
	// URL is the target that failed.
	URL string `json:"url"`

	// Reason is the audit engine's error text.
	Reason string `json:"reason"`
}

// Result summarizes one batch run.
type Result struct {
	// Dir is the created run directory path.
	Dir string `json:"dir"`

	// Attempted is the number of URLs the batch tried to audit.
	Attempted int `json:"attempted"`

	// Succeeded is the number of URLs that produced an artifact.
	Succeeded int `json:"succeeded"`

	// Failed is the number of URLs whose audit failed.
	Failed int `json:"failed"`

	// Failures details each failed URL, in input order.
	Failures []URLFailure `json:"failures,omitempty"`
}

// RunBatch audits every URL in input order, strictly sequentially, writing
// one artifact per successful audit into a fresh run directory under
// reportsDir. Per-URL failures are recorded in the Result and do not abort
// the batch.
//
// Cancellation is honored between URLs only: an in-flight audit finishes
// (or is killed by the engine's own context handling), and the partial
// Result is returned together with ctx.Err(). The partially-populated run
// directory remains valid for the read path.
func (r *Runner) RunBatch(ctx context.Context, name string, urls []string, reportsDir string) (*Result, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	targets := cleanURLs(urls)
	if len(targets) == 0 {
		return nil, ErrNoURLs
	}

	dir, err := r.createRunDir(name, reportsDir)
	if err != nil {
		return nil, err
	}

	r.logger.Info("starting batch run",
		"name", name,
		"dir", dir,
		"urls", len(targets),
	)

	result := &Result{Dir: dir}
	for i, target := range targets {
		// The only cancellation point: before starting the next audit.
		if err := ctx.Err(); err != nil {
			r.logger.Warn("batch cancelled",
				"completed", result.Attempted,
				"remaining", len(targets)-result.Attempted,
			)
			return result, err
		}

		result.Attempted++

		outputPath := filepath.Join(dir, artifact.Filename(target, r.prefix))
		r.logger.Info("auditing URL",
			"url", target,
			"index", i+1,
			"total", len(targets),
		)

		if err := r.engine.Audit(ctx, target, outputPath); err != nil {
			// Failure isolation: record and move on to the next URL.
			result.Failed++
			result.Failures = append(result.Failures, URLFailure{
				URL:    target,
				Reason: err.Error(),
			})
			r.logger.Warn("audit failed",
				"url", target,
				"error", err,
			)
			continue
		}

		result.Succeeded++
	}

	r.writeMetadata(dir)

	r.logger.Info("batch run complete",
		"dir", dir,
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)

	return result, nil
}

// createRunDir creates reportsDir (if needed) and a fresh timestamped run
// directory inside it. The run directory itself is created with os.Mkdir,
// not MkdirAll: if it already exists the runner must not write into it,
// because existing run directories are immutable.
func (r *Runner) createRunDir(name, reportsDir string) (string, error) {
	if err := os.MkdirAll(reportsDir, 0750); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrCreateRunDir, reportsDir, err)
	}

	dir := filepath.Join(reportsDir, model.RunDirName(name, r.now()))
	if err := os.Mkdir(dir, 0750); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrCreateRunDir, dir, err)
	}

	return dir, nil
}

// writeMetadata persists the optional free-text metadata file. A write
// failure is logged but never fails the batch: the artifacts are already
// on disk and remain aggregatable.
func (r *Runner) writeMetadata(dir string) {
	if r.note == "" {
		return
	}

	path := filepath.Join(dir, MetadataFilename)
	if err := os.WriteFile(path, []byte(r.note), 0600); err != nil {
		r.logger.Error("failed to write run metadata",
			"path", path,
			"error", err,
		)
	}
}

// cleanURLs trims whitespace and drops blank entries, preserving input order.
func cleanURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		cleaned = append(cleaned, u)
	}
	return cleaned
}
