package quiz

import "testing"

func TestScoreDeltas(t *testing.T) {
	tests := []struct {
		name      string
		outcome   Outcome
		wantScore int
		wantTier  int
	}{
		{"correct", OutcomeCorrect, 5, 1},
		{"incorrect with attempts left", OutcomeIncorrect, -2, 0},
		{"exhausted", OutcomeExhausted, -4, -1},
		{"skipped", OutcomeSkipped, -2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tier := ScoreDeltas(tt.outcome)
			if score != tt.wantScore || tier != tt.wantTier {
				t.Errorf("ScoreDeltas(%v) = (%d, %d), want (%d, %d)",
					tt.outcome, score, tier, tt.wantScore, tt.wantTier)
			}
		})
	}
}

func TestContributionGraded(t *testing.T) {
	spec := ModeSpelling.Spec()

	tests := []struct {
		name     string
		outcome  Outcome
		attempts int
		want     float64
	}{
		{"correct first try", OutcomeCorrect, 1, 1.0},
		{"correct after one retry", OutcomeCorrect, 2, 0.8},
		{"correct after two retries", OutcomeCorrect, 3, 0.5},
		{"exhausted", OutcomeExhausted, 3, 0},
		{"skipped", OutcomeSkipped, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contribution(spec, tt.outcome, tt.attempts)
			if got != tt.want {
				t.Errorf("Contribution = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContributionBinary(t *testing.T) {
	spec := ModeChoice.Spec()

	if got := Contribution(spec, OutcomeCorrect, 1); got != 1.0 {
		t.Errorf("correct contribution = %v, want 1.0", got)
	}
	if got := Contribution(spec, OutcomeExhausted, 1); got != 0 {
		t.Errorf("exhausted contribution = %v, want 0", got)
	}
}
