package model

import (
	"testing"
	"time"
)

// TestRunDirName verifies the on-disk run directory naming convention.
// This format is compatibility-relevant: the scanner must recover the base
// name and timestamp from any name the runner produces.
func TestRunDirName(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 2, 2, 13, 4, 5, 0, time.UTC)

	t.Run("simple base name", func(t *testing.T) {
		t.Parallel()
		got := RunDirName("audit", ts)
		if got != "audit_20250202_130405" {
			t.Errorf("expected 'audit_20250202_130405', got %q", got)
		}
	})

	t.Run("base name with underscores", func(t *testing.T) {
		t.Parallel()
		got := RunDirName("my_site_audit", ts)
		if got != "my_site_audit_20250202_130405" {
			t.Errorf("expected 'my_site_audit_20250202_130405', got %q", got)
		}
	})
}

// TestParseRunDirName exercises both valid names and the silent rejection
// of directories that do not follow the convention.
func TestParseRunDirName(t *testing.T) {
	t.Parallel()

	t.Run("round trip through RunDirName", func(t *testing.T) {
		t.Parallel()

		ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		base, parsed, ok := ParseRunDirName(RunDirName("audit", ts))
		if !ok {
			t.Fatal("expected ok=true")
		}
		if base != "audit" {
			t.Errorf("expected base 'audit', got %q", base)
		}
		if !parsed.Equal(ts) {
			t.Errorf("expected timestamp %v, got %v", ts, parsed)
		}
	})

	t.Run("base name keeps its own underscores", func(t *testing.T) {
		t.Parallel()

		base, _, ok := ParseRunDirName("my_site_audit_20250101_000000")
		if !ok {
			t.Fatal("expected ok=true")
		}
		if base != "my_site_audit" {
			t.Errorf("expected base 'my_site_audit', got %q", base)
		}
	})

	t.Run("rejects non-matching names", func(t *testing.T) {
		t.Parallel()

		names := []string{
			"",
			"audit",
			"audit_2025_0101",
			"audit_20250101",
			"audit_20250101_00000",   // time too short
			"audit_20250101_0000000", // time too long
			"20250101_000000",        // empty base name
			"notes",
		}
		for _, name := range names {
			if _, _, ok := ParseRunDirName(name); ok {
				t.Errorf("expected %q to be rejected", name)
			}
		}
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		t.Parallel()

		if _, _, ok := ParseRunDirName("audit_20251399_000000"); ok {
			t.Error("expected month 13 / day 99 to be rejected")
		}
		if _, _, ok := ParseRunDirName("audit_20250101_250000"); ok {
			t.Error("expected hour 25 to be rejected")
		}
	})
}
