// Package config provides configuration structures and utilities for beacon.
// It defines the options for running batch audits, the defaults recovered
// from the .beacon YAML configuration file, and validation of the assembled
// configuration.
//
// Configuration is always passed explicitly into the packages that need it.
// Environment variables are read only in the cmd layer while building a
// Config, never by the orchestrator or the read path, which keeps both
// testable without environment mutation.
package config
