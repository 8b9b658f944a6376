package model

import "time"

// ProgressionPoint is one run's scores for a single URL.
type ProgressionPoint struct {
	// RunName is the run directory name the point was taken from.
	RunName string `json:"run_name"`

	// Timestamp is the run start time.
	Timestamp time.Time `json:"timestamp"`

	// Categories maps category identifiers to integer scores for this URL.
	Categories map[string]int `json:"categories,omitempty"`

	// Score is the URL's overall score in this run.
	Score int `json:"score"`

	// Metadata is the run's opaque metadata text, if any.
	Metadata string `json:"metadata,omitempty"`
}

// Progression is the chronological series of one URL's scores across a
// collection's runs. Points are ordered oldest first, the reverse of the
// collection's run ordering. The series is sparse: a run without an artifact
// for the URL contributes no point.
type Progression struct {
	// Collection is the collection (base) name the series was derived from.
	Collection string `json:"collection"`

	// URL is the decoded URL the series tracks.
	URL string `json:"url"`

	// Points is ordered oldest to newest.
	Points []ProgressionPoint `json:"points"`
}

// Deltas returns, for each point, the overall score change relative to the
// first point. The first point's delta is 0. An empty series yields nil.
func (p *Progression) Deltas() []int {
	if len(p.Points) == 0 {
		return nil
	}

	first := p.Points[0].Score
	deltas := make([]int, len(p.Points))
	for i, point := range p.Points {
		deltas[i] = point.Score - first
	}
	return deltas
}
