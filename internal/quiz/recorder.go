package quiz

import (
	"context"

	"github.com/abhisek/lexiz/internal/word"
)

// Summary is the aggregate record of a finished or abandoned session.
type Summary struct {
	SessionID       string
	QuizType        string
	Score           int
	CorrectAnswers  int
	TotalPlayed     int
	DurationSeconds float64
	Accuracy        float64
	PracticedIDs    []word.ID
	CorrectIDs      []word.ID
}

// Recorder turns a session State into a Summary and fans it out: one
// session record to analytics, one difficulty mutation per played word.
type Recorder struct {
	gateway   DifficultyGateway
	analytics Analytics
	clock     Clock
}

// NewRecorder creates a Recorder.
func NewRecorder(gateway DifficultyGateway, analytics Analytics, clock Clock) *Recorder {
	return &Recorder{gateway: gateway, analytics: analytics, clock: clock}
}

// Finalize builds and emits the summary for s. A session with nothing
// played produces no record and returns nil.
func (r *Recorder) Finalize(ctx context.Context, sessionID string, mode Mode, s *State) *Summary {
	if s == nil || len(s.Played) == 0 {
		return nil
	}

	var contribSum float64
	correct := make([]word.ID, 0, len(s.Played))
	practiced := make([]word.ID, 0, len(s.Played))
	for _, w := range s.Played {
		practiced = append(practiced, w.ID)
		contribSum += s.Contributions[w.ID]
		if s.CorrectIDs[w.ID] {
			correct = append(correct, w.ID)
		}
	}

	summary := &Summary{
		SessionID:       sessionID,
		QuizType:        string(mode),
		Score:           s.Score,
		CorrectAnswers:  len(correct),
		TotalPlayed:     len(s.Played),
		DurationSeconds: r.clock.Now().Sub(s.StartedAt).Seconds(),
		Accuracy:        contribSum / float64(len(s.Played)),
		PracticedIDs:    practiced,
		CorrectIDs:      correct,
	}

	r.analytics.RecordSession(ctx, *summary)

	// Best-effort difficulty mutation, once per played word. A persist
	// failure is reported and the loop continues.
	for _, w := range s.Played {
		err := r.gateway.ApplyDelta(ctx, w.ID, s.ScoreDeltas[w.ID], s.TierDeltas[w.ID])
		if err != nil {
			r.analytics.RecordEvent(ctx, "persist_error", map[string]any{
				"word_id": string(w.ID),
				"error":   err.Error(),
			})
		}
	}

	return summary
}
