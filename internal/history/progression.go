package history

import "github.com/nao1215/beacon/internal/model"

// Progression derives the chronological score series of one URL across a
// collection's runs. The series is sparse: runs without an artifact for the
// URL contribute no point, so a URL added to (or removed from) the input
// list mid-history still yields a coherent series. Points are ordered oldest
// first, the natural reading order for a trend.
func Progression(c *model.Collection, url string) *model.Progression {
	p := &model.Progression{
		Collection: c.Name,
		URL:        url,
	}

	// Collection runs are newest first; walk backwards for oldest first.
	for i := len(c.Runs) - 1; i >= 0; i-- {
		run := c.Runs[i]
		report := run.FindReport(url)
		if report == nil || !report.Parsed {
			continue
		}

		p.Points = append(p.Points, model.ProgressionPoint{
			RunName:    run.Name,
			Timestamp:  run.Timestamp,
			Categories: report.Categories,
			Score:      report.Score,
			Metadata:   run.Metadata,
		})
	}

	return p
}

// FindCollection returns the collection with the given base name, or nil.
func FindCollection(collections []*model.Collection, name string) *model.Collection {
	for _, c := range collections {
		if c.Name == name {
			return c
		}
	}
	return nil
}
