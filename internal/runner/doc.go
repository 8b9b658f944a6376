// Package runner orchestrates batch audit runs.
//
// A run turns a URL list into one timestamped directory of report
// artifacts under the reports root. URLs are audited strictly sequentially
// in input order: the audit engine is resource-heavy, and concurrent
// audits of the same origin both skew the measurements and risk rate
// limiting. One URL's failure is recorded and never aborts the batch.
//
// The runner only ever adds files to a directory it created itself; it
// never rewrites or deletes anything. That is what lets the read path scan
// the reports root concurrently with an in-flight run without locking.
package runner
