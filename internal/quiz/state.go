package quiz

import (
	"time"

	"github.com/abhisek/lexiz/internal/word"
)

// Phase is the externally observable session phase.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseLoadingFirst
	PhasePresenting
	PhaseWaiting
	PhaseAnswered
	PhaseComplete
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseLoadingFirst:
		return "loading-first-content"
	case PhasePresenting:
		return "presenting"
	case PhaseWaiting:
		return "waiting-for-content"
	case PhaseAnswered:
		return "answered"
	case PhaseComplete:
		return "complete"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// State is the mutable record of one running session. Only the
// Controller writes it; it is consumed into a Summary at the end or
// discarded on abandonment.
type State struct {
	// Words is the fixed play order built at start.
	Words []word.Word

	// Cursor indexes the next word to present. After every settled step
	// len(Played) == Cursor.
	Cursor int

	// Played holds every settled word, including skips, in play order.
	Played []word.Word

	// CorrectIDs is the set of words answered correctly.
	CorrectIDs map[word.ID]bool

	// Contributions maps every played word to its accuracy weight.
	Contributions map[word.ID]float64

	// ScoreDeltas accumulates each word's raw score change across its
	// submissions, applied to the store once per word at finalize.
	ScoreDeltas map[word.ID]int

	// TierDeltas records each settled word's tier nudge, applied once
	// per word at finalize.
	TierDeltas map[word.ID]int

	// Score is the running session score.
	Score int

	// Streak counters. BestStreak never decreases.
	Streak     int
	BestStreak int

	// StartedAt is when the session began (injected clock).
	StartedAt time.Time

	// Complete is true once every pool word has been played.
	Complete bool
}

// NewState creates the state for a freshly built pool.
func NewState(words []word.Word, startedAt time.Time) *State {
	return &State{
		Words:         words,
		CorrectIDs:    make(map[word.ID]bool),
		Contributions: make(map[word.ID]float64),
		ScoreDeltas:   make(map[word.ID]int),
		TierDeltas:    make(map[word.ID]int),
		StartedAt:     startedAt,
	}
}
