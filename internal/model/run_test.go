package model

import (
	"testing"
	"time"
)

// TestRunComputeScore verifies run-level scoring, in particular that
// artifacts without a parseable payload drag the mean down as zeros.
func TestRunComputeScore(t *testing.T) {
	t.Parallel()

	t.Run("mean of report scores", func(t *testing.T) {
		t.Parallel()

		run := &Run{Reports: []ReportFile{
			{Filename: "a.html", Score: 90, Parsed: true},
			{Filename: "b.html", Score: 70, Parsed: true},
		}}
		if got := run.ComputeScore(); got != 80 {
			t.Errorf("expected 80, got %d", got)
		}
	})

	t.Run("unparsed artifact contributes zero", func(t *testing.T) {
		t.Parallel()

		run := &Run{Reports: []ReportFile{
			{Filename: "a.html", Score: 90, Parsed: true},
			{Filename: "broken.html", Score: 0, Parsed: false},
		}}
		if got := run.ComputeScore(); got != 45 {
			t.Errorf("expected 45, got %d", got)
		}
	})

	t.Run("empty run scores zero", func(t *testing.T) {
		t.Parallel()

		run := &Run{}
		if got := run.ComputeScore(); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

// TestRunFindReport verifies lookup by decoded URL.
func TestRunFindReport(t *testing.T) {
	t.Parallel()

	run := &Run{Reports: []ReportFile{
		{Filename: "a.html", URL: "https://example.com/", Parsed: true},
		{Filename: "b.html", URL: "https://example.com/about", Parsed: true},
	}}

	t.Run("finds matching URL", func(t *testing.T) {
		t.Parallel()
		got := run.FindReport("https://example.com/about")
		if got == nil {
			t.Fatal("expected a report, got nil")
		}
		if got.Filename != "b.html" {
			t.Errorf("expected 'b.html', got %q", got.Filename)
		}
	})

	t.Run("returns nil for unknown URL", func(t *testing.T) {
		t.Parallel()
		if got := run.FindReport("https://example.com/missing"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}

// TestCollectionLastRun verifies that LastRun follows the newest-first
// run ordering and tolerates empty collections.
func TestCollectionLastRun(t *testing.T) {
	t.Parallel()

	t.Run("first run is the last run", func(t *testing.T) {
		t.Parallel()

		newest := &Run{Name: "audit_20250202_000000", Timestamp: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), Score: 88}
		oldest := &Run{Name: "audit_20250101_000000", Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Score: 70}
		c := &Collection{Name: "audit", Runs: []*Run{newest, oldest}}

		if c.LastRun() != newest {
			t.Error("expected LastRun to be the first element")
		}
		if c.LastScore() != 88 {
			t.Errorf("expected LastScore 88, got %d", c.LastScore())
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		c := &Collection{Name: "audit"}
		if c.LastRun() != nil {
			t.Error("expected nil LastRun for empty collection")
		}
		if c.LastScore() != 0 {
			t.Errorf("expected LastScore 0, got %d", c.LastScore())
		}
	})
}

// TestProgressionDeltas verifies delta-vs-first-point computation.
func TestProgressionDeltas(t *testing.T) {
	t.Parallel()

	t.Run("deltas relative to first point", func(t *testing.T) {
		t.Parallel()

		p := &Progression{Points: []ProgressionPoint{
			{Score: 70},
			{Score: 85},
			{Score: 65},
		}}
		got := p.Deltas()
		want := []int{0, 15, -5}
		if len(got) != len(want) {
			t.Fatalf("expected %d deltas, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("delta[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("empty series yields nil", func(t *testing.T) {
		t.Parallel()
		p := &Progression{}
		if got := p.Deltas(); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
