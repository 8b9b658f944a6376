// Package audit defines the boundary to the external audit engine.
//
// The engine is the Lighthouse CLI, driven as a subprocess: given a target
// URL and an output path it produces a self-contained HTML report artifact
// with an embedded JSON payload. A non-zero exit is the only failure
// signal; no partial-result contract is assumed.
//
// The Engine interface exists so the orchestrator and its tests never
// depend on a real Lighthouse installation.
package audit
