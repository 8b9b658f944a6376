package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/beacon/internal/model"
)

// testCollection builds a two-run collection with sample data for testing.
func testCollection() *model.Collection {
	older := &model.Run{
		Name:      "audit_20250101_000000",
		BaseName:  "audit",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Reports: []model.ReportFile{
			{
				Filename: "report_a_example__abc123.html",
				URL:      "https://a.example/",
				Categories: map[string]int{
					model.CategoryPerformance:   70,
					model.CategoryAccessibility: 80,
				},
				Score:  75,
				Parsed: true,
			},
		},
		Score: 75,
	}
	newer := &model.Run{
		Name:      "audit_20250202_000000",
		BaseName:  "audit",
		Timestamp: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
		Metadata:  "after image optimization",
		Reports: []model.ReportFile{
			{
				Filename: "report_a_example__def456.html",
				URL:      "https://a.example/",
				Categories: map[string]int{
					model.CategoryPerformance:   95,
					model.CategoryAccessibility: 90,
				},
				Score:  93,
				Parsed: true,
			},
			{
				Filename: "report_broken__ghi789.html",
			},
		},
		Score: 47,
	}

	return &model.Collection{
		Name: "audit",
		URLs: []string{"https://a.example/"},
		Runs: []*model.Run{newer, older},
	}
}

// TestSimpleWriter tests the human-readable text writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("collection overview lists every collection", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		_, err := w.WriteCollections([]*model.Collection{testCollection()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "COLLECTIONS") {
			t.Error("expected output to contain the overview header")
		}
		if !strings.Contains(output, "audit") {
			t.Error("expected output to contain the collection name")
		}
		if !strings.Contains(output, "poor") {
			t.Error("expected output to contain the last run's score band")
		}
	})

	t.Run("empty overview says so", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteCollections(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No runs found") {
			t.Error("expected an empty-state message")
		}
	})

	t.Run("collection view lists runs newest first", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteCollection(testCollection()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		first := strings.Index(output, "audit_20250202_000000")
		second := strings.Index(output, "audit_20250101_000000")
		if first < 0 || second < 0 {
			t.Fatal("expected both run names in the output")
		}
		if first > second {
			t.Error("expected the newer run to be listed first")
		}
		if !strings.Contains(output, "after image optimization") {
			t.Error("expected the run note in the output")
		}
	})

	t.Run("verbose collection view lists tracked URLs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.WriteCollection(testCollection()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "https://a.example/") {
			t.Error("expected the tracked URL in verbose output")
		}
	})

	t.Run("run view marks artifacts without payload", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteRun(testCollection().Runs[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "no audit payload") {
			t.Error("expected a marker for the unparsed artifact")
		}
		if !strings.Contains(output, "https://a.example/") {
			t.Error("expected the audited URL in the output")
		}
	})

	t.Run("progression view shows score deltas", func(t *testing.T) {
		t.Parallel()

		p := &model.Progression{
			Collection: "audit",
			URL:        "https://a.example/",
			Points: []model.ProgressionPoint{
				{Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Score: 75},
				{Timestamp: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), Score: 93},
			},
		}

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteProgression(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "+18") {
			t.Errorf("expected the delta +18 in the output, got:\n%s", output)
		}
	})

	t.Run("empty progression says so", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		p := &model.Progression{Collection: "audit", URL: "https://gone.example/"}
		if _, err := w.WriteProgression(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No audited runs") {
			t.Error("expected an empty-state message")
		}
	})
}

// TestJSONWriter tests the machine-readable JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("collections marshal as a JSON array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.WriteCollections([]*model.Collection{testCollection()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded []model.Collection
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded) != 1 || decoded[0].Name != "audit" {
			t.Errorf("unexpected decoded collections: %+v", decoded)
		}
	})

	t.Run("nil collections marshal as an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.WriteCollections(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected [], got %q", buf.String())
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.WriteRun(testCollection().Runs[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("progression round-trips", func(t *testing.T) {
		t.Parallel()

		p := &model.Progression{
			Collection: "audit",
			URL:        "https://a.example/",
			Points: []model.ProgressionPoint{
				{RunName: "audit_20250101_000000", Score: 75},
			},
		}

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		if _, err := w.WriteProgression(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded model.Progression
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.URL != p.URL || len(decoded.Points) != 1 {
			t.Errorf("unexpected decoded progression: %+v", decoded)
		}
	})
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("collection overview renders a table and chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteCollections([]*model.Collection{testCollection()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Audit Collections") {
			t.Error("expected the overview heading")
		}
		if !strings.Contains(output, "| audit |") {
			t.Error("expected a table row for the collection")
		}
		if !strings.Contains(output, "mermaid") {
			t.Error("expected a mermaid chart block")
		}
	})

	t.Run("run view warns about unparsed artifacts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteRun(testCollection().Runs[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "no audit payload") {
			t.Error("expected a warning about unparsed artifacts")
		}
		if !strings.Contains(output, "https://a.example/") {
			t.Error("expected the audited URL in the table")
		}
	})

	t.Run("progression view summarizes the trend", func(t *testing.T) {
		t.Parallel()

		p := &model.Progression{
			Collection: "audit",
			URL:        "https://a.example/",
			Points: []model.ProgressionPoint{
				{Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Score: 75},
				{Timestamp: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), Score: 93},
			},
		}

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		if _, err := w.WriteProgression(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "improved by 18") {
			t.Errorf("expected an improvement alert, got:\n%s", output)
		}
	})
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, jsonBuf bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&jsonBuf))

	if _, err := mw.WriteCollections([]*model.Collection{testCollection()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.Len() == 0 || jsonBuf.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}
