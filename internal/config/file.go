package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// File represents the structure of the .beacon configuration file.
// Every field is optional; unset fields leave the built-in defaults (or
// flag values) untouched.
type File struct {
	// Name is the default run base name.
	Name string `yaml:"name,omitempty"`

	// ReportPrefix is the default artifact file name prefix.
	ReportPrefix string `yaml:"report_prefix,omitempty"`

	// ReportsDir is the default reports root directory.
	ReportsDir string `yaml:"reports_dir,omitempty"`

	// URLFile is the default URL list path.
	URLFile string `yaml:"url_file,omitempty"`

	// Lighthouse groups the audit engine settings.
	Lighthouse LighthouseConfig `yaml:"lighthouse,omitempty"`
}

// LighthouseConfig configures how the Lighthouse CLI is invoked.
type LighthouseConfig struct {
	// Path is the binary path or name resolved via PATH.
	Path string `yaml:"path,omitempty"`

	// ChromeFlags is passed to Lighthouse's --chrome-flags option.
	ChromeFlags string `yaml:"chrome_flags,omitempty"`

	// ExtraArgs are appended verbatim to every invocation, e.g.
	// ["--only-categories=performance,seo"].
	ExtraArgs []string `yaml:"extra_args,omitempty"`

	// Timeout bounds a single URL's audit, e.g. "3m".
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Duration is a time.Duration that unmarshals from YAML strings in
// time.ParseDuration syntax ("90s", "3m"). yaml.v3 has no built-in
// duration support.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"3m\": %w", err)
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
