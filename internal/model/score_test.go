package model

import "testing"

// TestRoundedMean verifies the rounding semantics shared by artifact-level
// and run-level scoring.
func TestRoundedMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{name: "empty input yields zero", values: nil, want: 0},
		{name: "single value", values: []int{73}, want: 73},
		{name: "four lighthouse categories", values: []int{95, 80, 100, 90}, want: 91}, // round(365/4)
		{name: "rounds half up", values: []int{50, 51}, want: 51},                      // round(50.5)
		{name: "rounds down below half", values: []int{50, 50, 51}, want: 50},
		{name: "all zeros", values: []int{0, 0, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RoundedMean(tt.values); got != tt.want {
				t.Errorf("RoundedMean(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

// TestScoreBand verifies the Lighthouse score banding.
func TestScoreBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{100, "good"},
		{90, "good"},
		{89, "average"},
		{50, "average"},
		{49, "poor"},
		{0, "poor"},
	}

	for _, tt := range tests {
		if got := ScoreBand(tt.score); got != tt.want {
			t.Errorf("ScoreBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
