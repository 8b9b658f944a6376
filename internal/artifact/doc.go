// Package artifact handles the per-URL report artifacts produced by the
// Lighthouse CLI: naming them on the write path and parsing them on the
// read path.
//
// The write path uses Filename to turn an arbitrary URL into a
// collision-resistant, filesystem-safe file name. The read path uses an
// Extractor to locate the embedded JSON payload inside the HTML artifact
// and Parse to normalize it into category scores.
//
// Design decision: extraction is isolated behind the Extractor interface
// because the artifact format belongs to the external audit engine, not to
// this tool. If a future Lighthouse release moves or renames the embedded
// payload, only the extractor changes. Extraction and parsing never return
// errors for malformed artifacts; they degrade to "no data" so that one
// broken artifact cannot fail a whole history scan.
package artifact
