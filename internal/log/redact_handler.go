package log

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
)

// sensitiveParams contains query parameter names whose values are masked
// when a URL is logged. These commonly carry signed-URL secrets or session
// material that must not end up in log aggregation.
var sensitiveParams = map[string]bool{
	"token":        true,
	"access_token": true,
	"id_token":     true,
	"api_key":      true,
	"apikey":       true,
	"key":          true,
	"auth":         true,
	"signature":    true,
	"sig":          true,
	"session":      true,
	"session_id":   true,
	"sid":          true,
	"password":     true,
	"secret":       true,
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "xxxxx"

// RedactHandler wraps an slog.Handler and scrubs credentials out of URL
// attribute values before they reach the underlying handler: basic-auth
// userinfo is masked and sensitive query parameter values are replaced.
//
// Design decision: a handler wrapper rather than a helper function, so the
// scrubbing applies to every log statement regardless of which package
// emitted it, and composes with any underlying handler (text, JSON).
type RedactHandler struct {
	// handler is the underlying slog handler that receives scrubbed records.
	handler slog.Handler
}

// NewRedactHandler creates a RedactHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle scrubs the record's attributes and passes it on.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	scrubbed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		scrubbed.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, scrubbed)
}

// WithAttrs returns a new handler with the given attributes added,
// scrubbed first.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redactAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr scrubs a single attribute, recursively handling groups.
func (h *RedactHandler) redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = h.redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if a.Value.Kind() == slog.KindString {
		value := a.Value.String()
		if scrubbed := RedactURL(value); scrubbed != value {
			return slog.String(a.Key, scrubbed)
		}
	}

	return a
}

// RedactURL masks credentials embedded in an http(s) URL: userinfo and the
// values of sensitive query parameters. Non-URL strings and URLs without
// credentials are returned unchanged, so the function is safe to apply to
// arbitrary attribute values.
func RedactURL(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	changed := false

	if u.User != nil {
		// Keep the username so related log lines stay correlatable, but
		// mask the password unconditionally.
		u.User = url.UserPassword(u.User.Username(), MaskValue)
		changed = true
	}

	query := u.Query()
	for name := range query {
		if sensitiveParams[strings.ToLower(name)] {
			query.Set(name, MaskValue)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
		return u.String()
	}

	return raw
}

// NewLogger creates a slog.Logger that writes text records to w through a
// RedactHandler. When verbose is true the level is Debug, otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewRedactHandler(textHandler))
}
