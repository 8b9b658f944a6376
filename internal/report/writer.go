package report

import (
	"io"

	"github.com/nao1215/beacon/internal/model"
)

// Writer defines the interface for history output.
// Implementations render the same views in different formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteCollections renders the collection overview list.
	// Returns the number of bytes written and any error encountered.
	WriteCollections(collections []*model.Collection) (int, error)

	// WriteCollection renders one collection's run history.
	WriteCollection(c *model.Collection) (int, error)

	// WriteRun renders one run with its per-URL report details.
	WriteRun(run *model.Run) (int, error)

	// WriteProgression renders one URL's score series over a collection.
	WriteProgression(p *model.Progression) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write history views, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteCollections renders the overview to all configured Writers.
// Returns the total bytes written. Stops on first error encountered.
func (m *MultiWriter) WriteCollections(collections []*model.Collection) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteCollections(collections)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteCollection renders one collection to all configured Writers.
func (m *MultiWriter) WriteCollection(c *model.Collection) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteCollection(c)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteRun renders one run to all configured Writers.
func (m *MultiWriter) WriteRun(run *model.Run) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteRun(run)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteProgression renders one progression to all configured Writers.
func (m *MultiWriter) WriteProgression(p *model.Progression) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteProgression(p)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// timestampFormat is the display format for run timestamps.
const timestampFormat = "2006-01-02 15:04:05"

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
