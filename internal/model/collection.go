package model

// Collection groups all runs sharing a base name into a browsable history.
//
// Design decision: a Collection is a computed view, not a stored aggregate.
// It has no identity on disk and is rebuilt from the run directories on
// every scan, so there is no consistency to maintain between reads.
type Collection struct {
	// Name is the shared base name of the runs.
	Name string `json:"name"`

	// URLs is the sorted union of decoded URLs observed across all runs.
	// Using the union means a URL removed from the input list between runs
	// still appears in the collection's history.
	URLs []string `json:"urls"`

	// Runs is ordered newest first.
	Runs []*Run `json:"runs"`
}

// LastRun returns the newest run, or nil for an empty collection.
func (c *Collection) LastRun() *Run {
	if len(c.Runs) == 0 {
		return nil
	}
	return c.Runs[0]
}

// LastScore returns the newest run's score, or 0 for an empty collection.
func (c *Collection) LastScore() int {
	if last := c.LastRun(); last != nil {
		return last.Score
	}
	return 0
}
