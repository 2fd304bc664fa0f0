package quiz

// Score table. Skips and exhaustion nudge tiers downward; the values
// feed the adaptive difficulty signal and must not be smoothed out.
const (
	scoreCorrect   = 5
	scoreIncorrect = -2
	scoreExhaust   = -2
)

// Accuracy contributions for graded (spelling-style) modes.
const (
	contributionFull  = 1.0
	contributionRetry = 0.8 // correct on the 2nd attempt
	contributionSlow  = 0.5 // correct on the 3rd or later attempt
)

// Outcome classifies one settled quiz event.
type Outcome int

const (
	// OutcomeCorrect is a correct submission (on any attempt).
	OutcomeCorrect Outcome = iota

	// OutcomeIncorrect is a wrong submission with attempts remaining.
	OutcomeIncorrect

	// OutcomeExhausted is the wrong submission that used the last attempt.
	OutcomeExhausted

	// OutcomeSkipped is a learner-initiated skip.
	OutcomeSkipped
)

// ScoreDeltas returns the (score, tier) deltas for one event.
// An exhausting submission is a wrong attempt plus the exhaustion
// penalty; a skip is the exhaustion penalty alone.
func ScoreDeltas(outcome Outcome) (scoreDelta, tierDelta int) {
	switch outcome {
	case OutcomeCorrect:
		return scoreCorrect, 1
	case OutcomeIncorrect:
		return scoreIncorrect, 0
	case OutcomeExhausted:
		return scoreIncorrect + scoreExhaust, -1
	case OutcomeSkipped:
		return scoreExhaust, -1
	}
	return 0, 0
}

// Contribution returns the session-local accuracy weight for a settled
// word. Graded modes reward fast correctness; binary modes only care
// whether the word ended correct.
func Contribution(spec ModeSpec, outcome Outcome, attempts int) float64 {
	if outcome != OutcomeCorrect {
		return 0
	}
	if !spec.GradedRetries {
		return contributionFull
	}
	switch {
	case attempts <= 1:
		return contributionFull
	case attempts == 2:
		return contributionRetry
	default:
		return contributionSlow
	}
}
