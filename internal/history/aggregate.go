package history

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/beacon/internal/artifact"
	"github.com/nao1215/beacon/internal/model"
)

// defaultParallelism bounds concurrent run loading. Artifacts are multi-MB
// HTML files, so a handful of readers saturates the disk without ballooning
// memory.
const defaultParallelism = 4

// Aggregator turns scanned run directories into collections by parsing
// every artifact and grouping runs by base name.
type Aggregator struct {
	// extractor locates the embedded payload inside each artifact.
	extractor artifact.Extractor

	// parallelism bounds the number of runs loaded concurrently.
	parallelism int

	// logger is used for structured logging of degraded artifacts.
	logger *slog.Logger
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithExtractor overrides the payload extractor.
func WithExtractor(extractor artifact.Extractor) AggregatorOption {
	return func(a *Aggregator) {
		if extractor != nil {
			a.extractor = extractor
		}
	}
}

// WithParallelism bounds the number of runs loaded concurrently.
// Values below one are ignored.
func WithParallelism(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n > 0 {
			a.parallelism = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) AggregatorOption {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAggregator creates an Aggregator with the standard script extractor.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		extractor:   artifact.NewScriptExtractor(),
		parallelism: defaultParallelism,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load scans reportsRoot and aggregates the result. It is the one-call
// entry point for the read-path commands.
func (a *Aggregator) Load(ctx context.Context, reportsRoot string) ([]*model.Collection, error) {
	dirs, err := Scan(reportsRoot)
	if err != nil {
		return nil, err
	}
	return a.Aggregate(ctx, dirs)
}

// Aggregate parses every artifact of every run directory and groups the
// resulting runs into collections by base name. Collections appear in the
// order their base name was first seen in dirs; within a collection, runs
// are ordered newest first and the URL set is the sorted union across all
// runs.
func (a *Aggregator) Aggregate(ctx context.Context, dirs []RawRunDir) ([]*model.Collection, error) {
	runs := make([]*model.Run, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runs[i] = a.loadRun(dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return groupRuns(runs), nil
}

// loadRun parses every artifact of one run directory. Unreadable or
// unparseable artifacts degrade to an unparsed report entry instead of
// failing the load, so one corrupt file never hides a run.
func (a *Aggregator) loadRun(dir RawRunDir) *model.Run {
	run := &model.Run{
		Name:      dir.Name,
		BaseName:  dir.BaseName,
		Timestamp: dir.Timestamp,
		Metadata:  dir.Metadata,
		Reports:   make([]model.ReportFile, 0, len(dir.ArtifactPaths)),
	}

	for _, path := range dir.ArtifactPaths {
		run.Reports = append(run.Reports, a.loadReport(path))
	}
	run.Score = run.ComputeScore()

	return run
}

// loadReport reads and parses a single artifact file.
func (a *Aggregator) loadReport(path string) model.ReportFile {
	report := model.ReportFile{Filename: filepath.Base(path)}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from scanning the reports root
	if err != nil {
		a.logger.Warn("failed to read report artifact",
			"path", path,
			"error", err,
		)
		return report
	}

	parsed := artifact.Parse(data, a.extractor)
	if parsed == nil {
		a.logger.Warn("report artifact carries no audit payload",
			"path", path,
		)
		return report
	}

	report.URL = parsed.URL
	report.Categories = parsed.Categories
	report.Score = parsed.Score
	report.Parsed = true

	return report
}

// groupRuns builds collections from loaded runs, preserving first-seen
// base name order.
func groupRuns(runs []*model.Run) []*model.Collection {
	byName := make(map[string]*model.Collection)
	var collections []*model.Collection

	for _, run := range runs {
		c, ok := byName[run.BaseName]
		if !ok {
			c = &model.Collection{Name: run.BaseName}
			byName[run.BaseName] = c
			collections = append(collections, c)
		}
		c.Runs = append(c.Runs, run)
	}

	for _, c := range collections {
		sort.SliceStable(c.Runs, func(i, j int) bool {
			return c.Runs[i].Timestamp.After(c.Runs[j].Timestamp)
		})
		c.URLs = collectionURLs(c.Runs)
	}

	return collections
}

// collectionURLs computes the sorted union of decoded URLs across runs.
// Artifacts without a payload carry no URL and contribute nothing.
func collectionURLs(runs []*model.Run) []string {
	seen := make(map[string]struct{})
	for _, run := range runs {
		for _, report := range run.Reports {
			if report.URL == "" {
				continue
			}
			seen[report.URL] = struct{}{}
		}
	}

	urls := make([]string, 0, len(seen))
	for url := range seen {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	return urls
}
