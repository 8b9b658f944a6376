package config

import "errors"

// Configuration validation errors.
// Package-level sentinel errors let callers use errors.Is() for
// programmatic handling while still carrying human-readable messages.
var (
	// ErrEmptyName is returned when no run name is configured. The name
	// comes from --name, the BEACON_NAME environment variable, or the
	// config file; at least one must be set.
	ErrEmptyName = errors.New("run name is required: set --name, BEACON_NAME, or 'name' in the config file")

	// ErrNoTargets is returned when neither positional URLs nor a readable
	// URL list file provided any targets.
	ErrNoTargets = errors.New("no URLs to audit: pass URLs as arguments or provide a non-empty URL file")

	// ErrInvalidTimeout is returned when the audit timeout is negative.
	// Use 0 to disable the per-URL timeout.
	ErrInvalidTimeout = errors.New("invalid audit timeout: must be non-negative")
)
