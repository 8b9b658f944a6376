package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/beacon/internal/model"
)

// SimpleWriter outputs human-readable text views.
// This format is designed for terminal display with aligned columns and
// clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteCollections outputs the collection overview as an aligned table.
func (w *SimpleWriter) WriteCollections(collections []*model.Collection) (int, error) {
	var sb strings.Builder

	writeRule(&sb, '=')
	sb.WriteString("COLLECTIONS\n")
	writeRule(&sb, '=')
	sb.WriteString("\n")

	if len(collections) == 0 {
		sb.WriteString("  No runs found under the reports directory.\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("  %-24s %6s %-20s %6s %-8s\n",
		"NAME", "RUNS", "LAST RUN", "SCORE", "BAND"))
	for _, c := range collections {
		last := "-"
		if run := c.LastRun(); run != nil {
			last = run.Timestamp.Format(timestampFormat)
		}
		sb.WriteString(fmt.Sprintf("  %-24s %6d %-20s %6d %-8s\n",
			truncateString(c.Name, 24),
			len(c.Runs),
			last,
			c.LastScore(),
			model.ScoreBand(c.LastScore()),
		))
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteCollection outputs one collection's run history, newest first.
func (w *SimpleWriter) WriteCollection(c *model.Collection) (int, error) {
	var sb strings.Builder

	writeRule(&sb, '=')
	sb.WriteString(fmt.Sprintf("COLLECTION: %s\n", c.Name))
	writeRule(&sb, '=')
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Runs: %d    URLs tracked: %d\n\n", len(c.Runs), len(c.URLs)))

	sb.WriteString(fmt.Sprintf("  %-32s %8s %6s %-8s\n", "RUN", "REPORTS", "SCORE", "BAND"))
	for _, run := range c.Runs {
		sb.WriteString(fmt.Sprintf("  %-32s %8d %6d %-8s\n",
			run.Name, len(run.Reports), run.Score, model.ScoreBand(run.Score)))
		if run.Metadata != "" {
			sb.WriteString(fmt.Sprintf("    note: %s\n", truncateString(run.Metadata, 60)))
		}
	}

	if w.verbose && len(c.URLs) > 0 {
		sb.WriteString("\n")
		writeRule(&sb, '-')
		sb.WriteString("TRACKED URLS\n")
		writeRule(&sb, '-')
		for _, url := range c.URLs {
			sb.WriteString(fmt.Sprintf("  %s\n", url))
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteRun outputs one run with a per-URL score breakdown.
func (w *SimpleWriter) WriteRun(run *model.Run) (int, error) {
	var sb strings.Builder

	writeRule(&sb, '=')
	sb.WriteString(fmt.Sprintf("RUN: %s\n", run.Name))
	writeRule(&sb, '=')
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Date:    %s\n", run.Timestamp.Format(timestampFormat)))
	sb.WriteString(fmt.Sprintf("  Reports: %d\n", len(run.Reports)))
	sb.WriteString(fmt.Sprintf("  Score:   %d (%s)\n", run.Score, model.ScoreBand(run.Score)))
	if run.Metadata != "" {
		sb.WriteString(fmt.Sprintf("  Note:    %s\n", run.Metadata))
	}
	sb.WriteString("\n")

	if len(run.Reports) == 0 {
		sb.WriteString("  No report artifacts in this run.\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("  %-44s %5s %5s %5s %5s %6s\n",
		"URL", "PERF", "A11Y", "BP", "SEO", "SCORE"))
	for _, r := range run.Reports {
		if !r.Parsed {
			sb.WriteString(fmt.Sprintf("  %-44s %29s\n",
				truncateString(r.Filename, 44), "(no audit payload)"))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-44s %5s %5s %5s %5s %6d\n",
			truncateString(r.URL, 44),
			categoryCell(&r, model.CategoryPerformance),
			categoryCell(&r, model.CategoryAccessibility),
			categoryCell(&r, model.CategoryBestPractices),
			categoryCell(&r, model.CategorySEO),
			r.Score,
		))
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteProgression outputs one URL's score series, oldest first.
func (w *SimpleWriter) WriteProgression(p *model.Progression) (int, error) {
	var sb strings.Builder

	writeRule(&sb, '=')
	sb.WriteString(fmt.Sprintf("PROGRESSION: %s\n", p.URL))
	writeRule(&sb, '=')
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Collection: %s\n\n", p.Collection))

	if len(p.Points) == 0 {
		sb.WriteString("  No audited runs for this URL.\n")
		return w.output.Write([]byte(sb.String()))
	}

	deltas := p.Deltas()
	sb.WriteString(fmt.Sprintf("  %-20s %6s %6s %-8s\n", "DATE", "SCORE", "DELTA", "BAND"))
	for i, point := range p.Points {
		sb.WriteString(fmt.Sprintf("  %-20s %6d %+6d %-8s\n",
			point.Timestamp.Format(timestampFormat),
			point.Score,
			deltas[i],
			model.ScoreBand(point.Score),
		))
		if w.verbose && point.Metadata != "" {
			sb.WriteString(fmt.Sprintf("    note: %s\n", truncateString(point.Metadata, 60)))
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// categoryCell formats one category score, or "-" when the category is
// absent from the payload.
func categoryCell(r *model.ReportFile, id string) string {
	if score, ok := r.CategoryScore(id); ok {
		return fmt.Sprintf("%d", score)
	}
	return "-"
}

// writeRule writes a 70-character horizontal rule.
func writeRule(sb *strings.Builder, ch rune) {
	sb.WriteString(strings.Repeat(string(ch), 70))
	sb.WriteString("\n")
}
