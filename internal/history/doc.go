// Package history reconstructs the audit history from the reports root.
//
// Nothing here mutates the filesystem and no state is kept between scans:
// runs, collections, and progressions are recomputed from the run
// directories on every call. That makes the read path safe to invoke
// repeatedly and concurrently with an in-flight batch run, since a partially
// populated run directory simply aggregates with fewer report files.
//
// The flow is Scan (directory enumeration), then Aggregator (artifact
// parsing and grouping), then Progression (per-URL series over one
// collection).
package history
