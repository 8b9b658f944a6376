package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/beacon/internal/model"
)

// MarkdownWriter outputs history views in Markdown format.
// This format is designed for documentation, dashboards, and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteCollections outputs the collection overview in Markdown format.
func (w *MarkdownWriter) WriteCollections(collections []*model.Collection) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Audit Collections")
	md.PlainText("")

	if len(collections) == 0 {
		md.PlainText("No runs found under the reports directory.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(collections))
	for i, c := range collections {
		last := "-"
		if run := c.LastRun(); run != nil {
			last = run.Timestamp.Format(timestampFormat)
		}
		rows[i] = []string{
			c.Name,
			strconv.Itoa(len(c.Runs)),
			last,
			strconv.Itoa(c.LastScore()),
			model.ScoreBand(c.LastScore()),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Collection", "Runs", "Last Run", "Score", "Band"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeBandChart(md, collections)

	return len(md.String()), md.Build()
}

// writeBandChart writes a mermaid pie chart of the score band distribution
// across the newest run of each collection.
func (w *MarkdownWriter) writeBandChart(md *markdown.Markdown, collections []*model.Collection) {
	bands := make(map[string]uint64)
	for _, c := range collections {
		bands[model.ScoreBand(c.LastScore())]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Score Band Distribution"),
		piechart.WithShowData(true),
	)
	for _, band := range []string{"good", "average", "poor"} {
		if bands[band] > 0 {
			chart.LabelAndIntValue(band, bands[band])
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteCollection outputs one collection's run history in Markdown format.
func (w *MarkdownWriter) WriteCollection(c *model.Collection) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Collection: " + c.Name)
	md.PlainText("")

	rows := make([][]string, len(c.Runs))
	for i, run := range c.Runs {
		rows[i] = []string{
			run.Name,
			run.Timestamp.Format(timestampFormat),
			strconv.Itoa(len(run.Reports)),
			strconv.Itoa(run.Score),
			model.ScoreBand(run.Score),
			markdownCell(run.Metadata),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Run", "Date", "Reports", "Score", "Band", "Note"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(c.URLs) > 0 {
		md.H2("Tracked URLs")
		md.PlainText("")
		md.BulletList(c.URLs...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteRun outputs one run with a per-URL score breakdown in Markdown format.
func (w *MarkdownWriter) WriteRun(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Run: " + run.Name)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Date", run.Timestamp.Format(timestampFormat)},
			{"Reports", strconv.Itoa(len(run.Reports))},
			{"Score", strconv.Itoa(run.Score)},
			{"Band", model.ScoreBand(run.Score)},
			{"Note", markdownCell(run.Metadata)},
		},
	})
	md.PlainText("")

	unparsed := 0
	rows := make([][]string, len(run.Reports))
	for i, r := range run.Reports {
		if !r.Parsed {
			unparsed++
			rows[i] = []string{"`" + r.Filename + "`", "-", "-", "-", "-", "0"}
			continue
		}
		rows[i] = []string{
			truncateString(r.URL, 60),
			markdownCategoryCell(&r, model.CategoryPerformance),
			markdownCategoryCell(&r, model.CategoryAccessibility),
			markdownCategoryCell(&r, model.CategoryBestPractices),
			markdownCategoryCell(&r, model.CategorySEO),
			strconv.Itoa(r.Score),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Performance", "Accessibility", "Best Practices", "SEO", "Score"},
		Rows:   rows,
	})
	md.PlainText("")

	if unparsed > 0 {
		md.Warningf("%d artifact(s) carried no audit payload and count as score 0.", unparsed)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteProgression outputs one URL's score series in Markdown format.
func (w *MarkdownWriter) WriteProgression(p *model.Progression) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Progression: " + p.URL)
	md.PlainText("")
	md.PlainText("Collection: `" + p.Collection + "`")
	md.PlainText("")

	if len(p.Points) == 0 {
		md.Note("No audited runs for this URL.")
		return len(md.String()), md.Build()
	}

	deltas := p.Deltas()
	rows := make([][]string, len(p.Points))
	for i, point := range p.Points {
		rows[i] = []string{
			point.Timestamp.Format(timestampFormat),
			strconv.Itoa(point.Score),
			formatDelta(deltas[i]),
			model.ScoreBand(point.Score),
			markdownCell(point.Metadata),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Date", "Score", "Delta", "Band", "Note"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeTrendAlert(md, deltas)

	return len(md.String()), md.Build()
}

// writeTrendAlert writes an alert summarizing the overall trend.
func (w *MarkdownWriter) writeTrendAlert(md *markdown.Markdown, deltas []int) {
	last := deltas[len(deltas)-1]
	switch {
	case last > 0:
		md.Tipf("Score improved by %d points since the first audited run.", last)
	case last < 0:
		md.Warningf("Score dropped by %d points since the first audited run.", -last)
	default:
		md.Note("Score is unchanged since the first audited run.")
	}
	md.PlainText("")
}

// markdownCategoryCell formats one category score, or "-" when absent.
func markdownCategoryCell(r *model.ReportFile, id string) string {
	if score, ok := r.CategoryScore(id); ok {
		return strconv.Itoa(score)
	}
	return "-"
}

// markdownCell substitutes "-" for empty table cells.
func markdownCell(s string) string {
	if s == "" {
		return "-"
	}
	return truncateString(s, 60)
}

// formatDelta renders a signed delta with an explicit plus sign.
func formatDelta(d int) string {
	if d > 0 {
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}
