package model

import "time"

// Run is one orchestrator execution against one URL list, materialized as a
// timestamped directory under the reports root. Runs are immutable once
// written; the read path reconstructs them from disk on every scan.
type Run struct {
	// Name is the full directory name: "<base>_<YYYYMMDD>_<HHMMSS>".
	Name string `json:"name"`

	// BaseName is the name the run was started with.
	BaseName string `json:"base_name"`

	// Timestamp is the run start time recovered from the directory name.
	Timestamp time.Time `json:"timestamp"`

	// Reports holds the parsed view of each artifact in the directory,
	// in directory listing order.
	Reports []ReportFile `json:"reports"`

	// Metadata is the opaque free-text content of the run's metadata file,
	// empty when no metadata file exists.
	Metadata string `json:"metadata,omitempty"`

	// Score is the rounded mean of the report scores. Artifacts without a
	// parseable payload contribute 0. A run with no artifacts scores 0.
	Score int `json:"score"`
}

// ComputeScore derives the run-level score from the report list.
// Unparsed artifacts count as 0 so that a run full of broken artifacts
// scores low instead of being dropped.
func (r *Run) ComputeScore() int {
	scores := make([]int, 0, len(r.Reports))
	for _, report := range r.Reports {
		scores = append(scores, report.Score)
	}
	return RoundedMean(scores)
}

// FindReport returns the first report whose decoded URL equals url,
// or nil when the run contains no artifact for that URL.
func (r *Run) FindReport(url string) *ReportFile {
	for i := range r.Reports {
		if r.Reports[i].URL == url {
			return &r.Reports[i]
		}
	}
	return nil
}
