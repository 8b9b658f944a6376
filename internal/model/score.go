package model

import "math"

// Score bands used by the Lighthouse scoring scale.
// Scores are integer percentages in [0, 100].
const (
	// ScoreGoodThreshold is the lower bound of the "good" band.
	ScoreGoodThreshold = 90

	// ScorePoorThreshold is the upper bound (exclusive) of the "poor" band.
	ScorePoorThreshold = 50
)

// RoundedMean returns the arithmetic mean of values rounded to the nearest
// integer. An empty input yields 0, not an error: a run with no parseable
// artifacts and an artifact with no categories both legitimately score 0.
func RoundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return int(math.Round(float64(sum) / float64(len(values))))
}

// ScoreBand classifies a score using the Lighthouse bands:
// "good" (>= 90), "average" (50-89), or "poor" (< 50).
func ScoreBand(score int) string {
	switch {
	case score >= ScoreGoodThreshold:
		return "good"
	case score >= ScorePoorThreshold:
		return "average"
	default:
		return "poor"
	}
}
