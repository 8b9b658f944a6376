// Package model defines the core data structures used throughout beacon.
//
// This package contains the following main types:
//   - ReportFile: The parsed view of one audit report artifact
//   - Run: One orchestrator execution, materialized as a timestamped directory
//   - Collection: All runs sharing a base name, viewed as a history
//   - Progression: The chronological score series of one URL across a collection
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (artifact, runner, history, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The run directory naming convention lives here too, because it is the only
// persisted, compatibility-relevant format the tool owns. Both the write path
// (runner) and the read path (history) derive it from this package.
package model
