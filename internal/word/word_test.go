package word

import "testing"

func TestNudge(t *testing.T) {
	tests := []struct {
		name  string
		tier  Tier
		delta int
		want  Tier
	}{
		{"new up", TierNew, 1, TierInProgress},
		{"in progress up", TierInProgress, 1, TierMastered},
		{"needs review up", TierNeedsReview, 1, TierInProgress},
		{"mastered up stays", TierMastered, 1, TierMastered},
		{"new down", TierNew, -1, TierNeedsReview},
		{"mastered down", TierMastered, -1, TierNeedsReview},
		{"needs review down stays", TierNeedsReview, -1, TierNeedsReview},
		{"zero delta", TierInProgress, 0, TierInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nudge(tt.tier, tt.delta); got != tt.want {
				t.Errorf("Nudge(%s, %d) = %s, want %s", tt.tier, tt.delta, got, tt.want)
			}
		})
	}
}

func TestValidTier(t *testing.T) {
	for _, s := range []string{"new", "in_progress", "needs_review", "mastered"} {
		if !ValidTier(s) {
			t.Errorf("ValidTier(%q) = false, want true", s)
		}
	}
	if ValidTier("legendary") {
		t.Error("ValidTier accepted an unknown tier")
	}
}
