package artifact

import (
	"encoding/json"
	"math"
	"net/url"

	"github.com/nao1215/beacon/internal/model"
)

// ParsedReport is the normalized audit payload of a single artifact.
type ParsedReport struct {
	// URL is the canonical displayed URL, percent-decoded when possible.
	// If decoding fails the raw form is retained; the artifact is never
	// dropped over a decode failure.
	URL string

	// Categories maps category identifiers to integer scores in [0, 100].
	// Only categories present in the payload with a non-null score appear.
	Categories map[string]int

	// Score is the rounded mean of the present category scores, or 0 when
	// the payload carries zero scored categories.
	Score int
}

// payload mirrors the subset of the Lighthouse result JSON we consume.
// Older CLI versions emit finalUrl instead of finalDisplayedUrl, and a
// category's score is null when the category errored during the audit.
type payload struct {
	RequestedURL      string              `json:"requestedUrl"`
	FinalURL          string              `json:"finalUrl"`
	FinalDisplayedURL string              `json:"finalDisplayedUrl"`
	Categories        map[string]category `json:"categories"`
}

type category struct {
	Score *float64 `json:"score"`
}

// Parse extracts and normalizes the embedded payload of one report
// artifact. It returns nil when the artifact carries no payload or the
// payload is not valid JSON; callers must treat nil as "unknown score",
// not as a failed scan. A non-nil result with an empty Categories map means
// the payload was present but no category carried a score: that artifact
// legitimately scores 0 and is distinguishable from the nil case.
func Parse(artifact []byte, extractor Extractor) *ParsedReport {
	raw, ok := extractor.Extract(artifact)
	if !ok {
		return nil
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}

	report := &ParsedReport{
		URL:        decodeURL(displayedURL(&p)),
		Categories: make(map[string]int, len(p.Categories)),
	}

	scores := make([]int, 0, len(p.Categories))
	for id, cat := range p.Categories {
		if cat.Score == nil {
			continue
		}
		percent := int(math.Round(*cat.Score * 100))
		report.Categories[id] = percent
		scores = append(scores, percent)
	}
	report.Score = model.RoundedMean(scores)

	return report
}

// displayedURL picks the canonical URL field, newest first.
func displayedURL(p *payload) string {
	if p.FinalDisplayedURL != "" {
		return p.FinalDisplayedURL
	}
	if p.FinalURL != "" {
		return p.FinalURL
	}
	return p.RequestedURL
}

// decodeURL percent-decodes the displayed URL. On failure the raw form is
// returned so the artifact still aggregates under some stable key.
func decodeURL(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
