package runner

import "errors"

// Fatal orchestration errors. All abort before any URL is attempted, so a
// failed precondition never leaves a half-created run behind.
var (
	// ErrEmptyName is returned when the run base name is empty or blank.
	ErrEmptyName = errors.New("run name must not be empty")

	// ErrNoURLs is returned when the URL list contains no non-blank entries.
	ErrNoURLs = errors.New("URL list must not be empty")

	// ErrCreateRunDir is returned (wrapped, with the directory and cause)
	// when the run directory cannot be created.
	ErrCreateRunDir = errors.New("cannot create run directory")
)
