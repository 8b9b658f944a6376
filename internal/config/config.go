package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "beacon"

	// DefaultReportsDir is where run directories are created. It is
	// relative to the working directory so a project keeps its audit
	// history next to its URL list.
	DefaultReportsDir = "reports"

	// DefaultURLFile is the default input list, one URL per line.
	DefaultURLFile = "urls.txt"

	// DefaultReportPrefix prefixes every artifact file name inside a run
	// directory.
	DefaultReportPrefix = "report"

	// DefaultLighthousePath is the audit engine binary resolved via PATH.
	// The Lighthouse CLI must be installed separately (npm install -g
	// lighthouse).
	DefaultLighthousePath = "lighthouse"

	// DefaultChromeFlags are passed to the Chrome instance Lighthouse
	// launches. Headless because batch runs have no display, no sandbox
	// for container compatibility, and no cache so repeated audits of the
	// same URL measure cold loads.
	DefaultChromeFlags = "--headless --no-sandbox --disable-cache"

	// DefaultAuditTimeout bounds a single URL's audit. Lighthouse runs a
	// full page load plus tracing, so a generous limit avoids false
	// failures on slow targets while still unsticking a hung Chrome.
	DefaultAuditTimeout = 5 * time.Minute
)

// Environment variables honored by the run command. They mirror the flags
// of the same name and take precedence over them, so CI setups can pin the
// run name without editing the invocation.
const (
	// EnvName overrides the --name flag.
	EnvName = "BEACON_NAME"

	// EnvReportPrefix overrides the --prefix flag.
	EnvReportPrefix = "BEACON_REPORT_PREFIX"
)

// Config holds all configuration options for a batch audit run.
// It is populated from CLI flags, environment variables, and the optional
// .beacon config file, then passed through the application via dependency
// injection rather than global state.
type Config struct {
	// Name is the run's base name. The run directory is named
	// "<Name>_<timestamp>". Required.
	Name string

	// Targets is the list of URLs to audit, in input order.
	Targets []string

	// URLFile is the path of the URL list file used when no positional
	// targets are given.
	URLFile string

	// ReportsDir is the root directory under which run directories are
	// created and scanned.
	ReportsDir string

	// ReportPrefix prefixes every artifact file name.
	ReportPrefix string

	// Note is free-text run metadata. When non-empty it is written to the
	// run directory's metadata file and surfaced by the history commands.
	Note string

	// LighthousePath is the audit engine binary path or name.
	LighthousePath string

	// ChromeFlags is the value passed to Lighthouse's --chrome-flags.
	ChromeFlags string

	// ExtraArgs are appended verbatim to the Lighthouse invocation.
	ExtraArgs []string

	// AuditTimeout bounds each URL's audit subprocess. Zero means no limit.
	AuditTimeout time.Duration

	// ConfigFilePath is the explicit config file path, if the user gave one.
	ConfigFilePath string

	// Verbose enables slog.LevelDebug output. When false, only warnings
	// and errors are logged.
	Verbose bool
}

// NewConfig creates a Config with default values. Many defaults are
// non-zero, so relying on zero values would be wrong; the constructor also
// documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		URLFile:        DefaultURLFile,
		ReportsDir:     DefaultReportsDir,
		ReportPrefix:   DefaultReportPrefix,
		LighthousePath: DefaultLighthousePath,
		ChromeFlags:    DefaultChromeFlags,
		AuditTimeout:   DefaultAuditTimeout,
	}
}

// ApplyFile overlays values from a config file onto the Config. Only fields
// the file actually sets are applied, so flags keep their defaults when the
// file is silent.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.Name != "" {
		c.Name = f.Name
	}
	if f.ReportPrefix != "" {
		c.ReportPrefix = f.ReportPrefix
	}
	if f.ReportsDir != "" {
		c.ReportsDir = f.ReportsDir
	}
	if f.URLFile != "" {
		c.URLFile = f.URLFile
	}
	if f.Lighthouse.Path != "" {
		c.LighthousePath = f.Lighthouse.Path
	}
	if f.Lighthouse.ChromeFlags != "" {
		c.ChromeFlags = f.Lighthouse.ChromeFlags
	}
	if len(f.Lighthouse.ExtraArgs) > 0 {
		c.ExtraArgs = f.Lighthouse.ExtraArgs
	}
	if f.Lighthouse.Timeout > 0 {
		c.AuditTimeout = time.Duration(f.Lighthouse.Timeout)
	}
}

// Validate checks if the configuration is valid. It is called once after
// flag parsing, before the run directory is created, so invalid input never
// leaves a half-created run behind. The first error found is returned;
// fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}

	if len(c.Targets) == 0 {
		return ErrNoTargets
	}

	if c.AuditTimeout < 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// XDGConfigDir returns the XDG config directory for beacon.
// On Linux: ~/.config/beacon
// On macOS: ~/Library/Application Support/beacon
// On Windows: %APPDATA%\beacon
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
