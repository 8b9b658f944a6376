package audit

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/nao1215/beacon/internal/log"
)

// Engine runs one audit against a target URL, writing the report artifact
// to outputPath. Implementations must treat the call as atomic: on error
// the caller assumes no usable artifact was produced.
type Engine interface {
	Audit(ctx context.Context, targetURL, outputPath string) error
}

// maxStderrInError bounds how much subprocess stderr is carried in an
// error message. Lighthouse can be very chatty on failure.
const maxStderrInError = 512

// Lighthouse drives the Lighthouse CLI as a subprocess.
//
// Design decision: we shell out instead of talking to Chrome's debugging
// protocol ourselves because the artifact format and the scoring belong to
// Lighthouse; reimplementing them would fork the format this tool must
// remain compatible with.
type Lighthouse struct {
	// path is the binary path or name resolved via PATH.
	path string

	// chromeFlags is passed as a single --chrome-flags value.
	chromeFlags string

	// extraArgs are appended verbatim to every invocation.
	extraArgs []string

	// timeout bounds a single audit. Zero means no limit beyond ctx.
	timeout time.Duration

	// logger is used for per-invocation debug logging.
	logger *slog.Logger
}

// Option configures a Lighthouse engine.
type Option func(*Lighthouse)

// WithPath sets the Lighthouse binary path or name.
func WithPath(path string) Option {
	return func(l *Lighthouse) {
		if path != "" {
			l.path = path
		}
	}
}

// WithChromeFlags sets the flags passed to the Chrome instance Lighthouse
// launches.
func WithChromeFlags(flags string) Option {
	return func(l *Lighthouse) {
		l.chromeFlags = flags
	}
}

// WithExtraArgs appends additional CLI arguments to every invocation.
func WithExtraArgs(args []string) Option {
	return func(l *Lighthouse) {
		l.extraArgs = args
	}
}

// WithTimeout bounds each audit subprocess. Zero disables the limit.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Lighthouse) {
		l.timeout = timeout
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lighthouse) {
		l.logger = logger
	}
}

// NewLighthouse creates a Lighthouse engine with the given options.
func NewLighthouse(opts ...Option) *Lighthouse {
	l := &Lighthouse{
		path: "lighthouse",
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// Audit runs Lighthouse against targetURL, writing the HTML artifact to
// outputPath. The subprocess inherits ctx, so cancelling the batch kills an
// in-flight Chrome instead of orphaning it.
func (l *Lighthouse) Audit(ctx context.Context, targetURL, outputPath string) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	args := l.args(targetURL, outputPath)

	l.logger.Debug("invoking audit engine",
		"binary", l.path,
		"target", targetURL,
		"output", outputPath,
	)

	cmd := exec.CommandContext(ctx, l.path, args...) //nolint:gosec // Binary path is user configuration
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("lighthouse failed for %s: %w%s",
			log.RedactURL(targetURL), err, stderrDetail(stderr.Bytes()))
	}

	return nil
}

// args builds the CLI argument list for one audit.
func (l *Lighthouse) args(targetURL, outputPath string) []string {
	args := []string{
		targetURL,
		"--output=html",
		"--output-path=" + outputPath,
		"--quiet",
	}
	if l.chromeFlags != "" {
		args = append(args, "--chrome-flags="+l.chromeFlags)
	}
	return append(args, l.extraArgs...)
}

// stderrDetail formats a truncated stderr tail for inclusion in an error.
func stderrDetail(stderr []byte) string {
	s := strings.TrimSpace(string(stderr))
	if s == "" {
		return ""
	}
	if len(s) > maxStderrInError {
		s = s[len(s)-maxStderrInError:]
	}
	return " (stderr: " + s + ")"
}
