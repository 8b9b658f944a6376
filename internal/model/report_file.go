package model

// Standard Lighthouse category identifiers. The embedded payload may carry
// any category set; these four are what current Lighthouse versions emit.
const (
	CategoryPerformance   = "performance"
	CategoryAccessibility = "accessibility"
	CategoryBestPractices = "best-practices"
	CategorySEO           = "seo"
)

// StandardCategories lists the standard category identifiers in display order.
var StandardCategories = []string{
	CategoryPerformance,
	CategoryAccessibility,
	CategoryBestPractices,
	CategorySEO,
}

// ReportFile is the parsed, in-memory representation of one report artifact.
// It is derived on every scan and never persisted.
//
// Parsed distinguishes "payload present but zero categories" (Parsed=true,
// Score=0) from "no payload at all" (Parsed=false). Both render as score 0
// at the run level, but callers that care (e.g. the progression view) can
// tell them apart.
type ReportFile struct {
	// Filename is the artifact file name inside its run directory.
	Filename string `json:"filename"`

	// URL is the canonical displayed URL decoded from the payload.
	// If percent-decoding failed, this holds the raw, undecoded form.
	// Empty when the artifact carried no payload.
	URL string `json:"url,omitempty"`

	// Categories maps category identifiers to integer scores in [0, 100].
	// Categories absent from the payload are absent from the map.
	Categories map[string]int `json:"categories,omitempty"`

	// Score is the rounded mean of the present category scores,
	// or 0 when no category is present.
	Score int `json:"score"`

	// Parsed reports whether an embedded payload was found and decoded.
	Parsed bool `json:"parsed"`
}

// CategoryScore returns the score for the given category and whether the
// category was present in the payload.
func (r *ReportFile) CategoryScore(id string) (int, bool) {
	score, ok := r.Categories[id]
	return score, ok
}
