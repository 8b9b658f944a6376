// Package log provides slog helpers for beacon.
//
// Batch audit targets are often staging or preview URLs that embed
// credentials: basic-auth userinfo, signed-URL tokens, session parameters.
// Those URLs flow through nearly every log statement in the orchestrator,
// so the RedactHandler scrubs them once, centrally, instead of trusting
// every call site to remember.
package log
