package domain

import "testing"

func TestLookupDifficulty(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		topic string
		want  float64
	}{
		{"exact keyword", "calculus", 0.8},
		{"keyword inside phrase", "Advanced Calculus II", 0.8},
		{"longest keyword wins", "Organic Chemistry exam", 0.85},
		{"case and whitespace normalized", "  HISTORY  ", 0.4},
		{"unknown topic gets default", "underwater basket weaving", DefaultDifficulty},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := LookupDifficulty(tc.topic); got != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, got)
			}
		})
	}
}

func TestEstimateHours(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		difficulty float64
		knowledge  float64
		want       int
	}{
		{"hard topic from scratch", 0.8, 0, 17},
		{"mid topic from scratch", 0.5, 0, 12},
		{"hardest topic", 1, 0, 20},
		{"mostly known easy topic floors at one", 0, 0.99, 1},
		{"half known", 0.5, 0.5, 6},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := EstimateHours(tc.difficulty, tc.knowledge); got != tc.want {
				t.Fatalf("expected %d hours, got %d", tc.want, got)
			}
		})
	}
}
