package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/beacon/internal/config"
)

// TestNewRunCmd tests the run command creation.
func TestNewRunCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRunCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "run [url...]" {
			t.Errorf("expected use 'run [url...]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has name flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("name")
		if flag == nil {
			t.Fatal("expected name flag")
		}
		if flag.Shorthand != "n" {
			t.Errorf("expected shorthand 'n', got %q", flag.Shorthand)
		}
	})

	t.Run("has file flag with default URL list", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("file")
		if flag == nil {
			t.Fatal("expected file flag")
		}
		if flag.DefValue != config.DefaultURLFile {
			t.Errorf("expected default %q, got %q", config.DefaultURLFile, flag.DefValue)
		}
	})

	t.Run("has timeout flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("timeout")
		if flag == nil {
			t.Fatal("expected timeout flag")
		}
		if flag.Shorthand != "t" {
			t.Errorf("expected shorthand 't', got %q", flag.Shorthand)
		}
	})

	t.Run("has chrome-flags flag with headless default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("chrome-flags")
		if flag == nil {
			t.Fatal("expected chrome-flags flag")
		}
		if !strings.Contains(flag.DefValue, "--headless") {
			t.Errorf("expected headless default, got %q", flag.DefValue)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})
}

// TestBuildRunConfig tests configuration assembly from flags, files, and
// environment variables.
func TestBuildRunConfig(t *testing.T) {
	t.Run("flags populate the config", func(t *testing.T) {
		cmd := NewRunCmd()
		if err := cmd.Flags().Parse([]string{
			"--name", "audit",
			"--prefix", "perf",
			"--reports-dir", "out",
			"--timeout", "90s",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildRunConfig(cmd, []string{"https://a.example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Name != "audit" {
			t.Errorf("Name = %q, want 'audit'", cfg.Name)
		}
		if cfg.ReportPrefix != "perf" {
			t.Errorf("ReportPrefix = %q, want 'perf'", cfg.ReportPrefix)
		}
		if cfg.ReportsDir != "out" {
			t.Errorf("ReportsDir = %q, want 'out'", cfg.ReportsDir)
		}
		if cfg.AuditTimeout != 90*time.Second {
			t.Errorf("AuditTimeout = %v, want 90s", cfg.AuditTimeout)
		}
		if len(cfg.Targets) != 1 || cfg.Targets[0] != "https://a.example" {
			t.Errorf("unexpected targets: %v", cfg.Targets)
		}
	})

	t.Run("environment overrides flags", func(t *testing.T) {
		t.Setenv(config.EnvName, "from-env")
		t.Setenv(config.EnvReportPrefix, "env-prefix")

		cmd := NewRunCmd()
		if err := cmd.Flags().Parse([]string{"--name", "from-flag", "--prefix", "flag-prefix"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildRunConfig(cmd, []string{"https://a.example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Name != "from-env" {
			t.Errorf("Name = %q, want environment value", cfg.Name)
		}
		if cfg.ReportPrefix != "env-prefix" {
			t.Errorf("ReportPrefix = %q, want environment value", cfg.ReportPrefix)
		}
	})

	t.Run("config file fills unset flags", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".beacon")
		content := "name: from-file\nlighthouse:\n  timeout: 2m\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRunCmd()
		if err := cmd.Flags().Parse([]string{"--config", path}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildRunConfig(cmd, []string{"https://a.example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Name != "from-file" {
			t.Errorf("Name = %q, want config file value", cfg.Name)
		}
		if cfg.AuditTimeout != 2*time.Minute {
			t.Errorf("AuditTimeout = %v, want 2m", cfg.AuditTimeout)
		}
	})

	t.Run("flag beats config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".beacon")
		if err := os.WriteFile(path, []byte("name: from-file\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRunCmd()
		if err := cmd.Flags().Parse([]string{"--config", path, "--name", "from-flag"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildRunConfig(cmd, []string{"https://a.example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name != "from-flag" {
			t.Errorf("Name = %q, want flag value", cfg.Name)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		cmd := NewRunCmd()
		path := filepath.Join(t.TempDir(), "nope.yaml")
		if err := cmd.Flags().Parse([]string{"--config", path}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildRunConfig(cmd, []string{"https://a.example"}); err == nil {
			t.Error("expected an error for a missing explicit config file")
		}
	})

	t.Run("targets fall back to the URL file", func(t *testing.T) {
		dir := t.TempDir()
		urlFile := filepath.Join(dir, "urls.txt")
		if err := os.WriteFile(urlFile, []byte("https://a.example\nhttps://b.example\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRunCmd()
		if err := cmd.Flags().Parse([]string{"--name", "audit", "--file", urlFile}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildRunConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Targets) != 2 {
			t.Errorf("expected 2 targets from the URL file, got %v", cfg.Targets)
		}
	})

	t.Run("missing URL file without arguments is an error", func(t *testing.T) {
		cmd := NewRunCmd()
		missing := filepath.Join(t.TempDir(), "none.txt")
		if err := cmd.Flags().Parse([]string{"--name", "audit", "--file", missing}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildRunConfig(cmd, nil); err == nil {
			t.Error("expected an error when no URLs are available")
		}
	})
}
