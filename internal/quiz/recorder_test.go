package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/word"
)

func TestFinalizeBuildsSummary(t *testing.T) {
	gateway := &memGateway{}
	analytics := &memAnalytics{}
	clock := newFakeClock()

	words := quizWords(3)
	state := NewState(words, clock.Now())
	clock.Advance(2 * time.Minute)

	for _, w := range words {
		state.Played = append(state.Played, w)
		state.Cursor++
	}
	state.CorrectIDs[words[0].ID] = true
	state.CorrectIDs[words[1].ID] = true
	state.Contributions[words[0].ID] = 1.0
	state.Contributions[words[1].ID] = 0.8
	state.Contributions[words[2].ID] = 0
	state.ScoreDeltas[words[0].ID] = 5
	state.ScoreDeltas[words[1].ID] = 3
	state.ScoreDeltas[words[2].ID] = -8
	state.TierDeltas[words[0].ID] = 1
	state.TierDeltas[words[1].ID] = 1
	state.TierDeltas[words[2].ID] = -1
	state.Score = 0

	rec := NewRecorder(gateway, analytics, clock)
	summary := rec.Finalize(context.Background(), "sess-1", ModeSpelling, state)
	if summary == nil {
		t.Fatal("no summary")
	}

	if summary.TotalPlayed != 3 || summary.CorrectAnswers != 2 {
		t.Errorf("played/correct = %d/%d, want 3/2", summary.TotalPlayed, summary.CorrectAnswers)
	}
	if summary.Accuracy != 0.6 {
		t.Errorf("accuracy = %v, want 0.6", summary.Accuracy)
	}
	if summary.DurationSeconds != 120 {
		t.Errorf("duration = %v, want 120", summary.DurationSeconds)
	}
	if summary.QuizType != "spelling" {
		t.Errorf("quiz type = %q, want spelling", summary.QuizType)
	}

	if got, ok := analytics.lastSession(); !ok || got.SessionID != "sess-1" {
		t.Errorf("analytics session = %+v, ok = %v", got, ok)
	}

	// One difficulty mutation per played word, deltas as accumulated.
	if gateway.callCount() != 3 {
		t.Fatalf("gateway calls = %d, want 3", gateway.callCount())
	}
	delta, _ := gateway.deltaFor(words[2].ID)
	if delta.score != -8 || delta.tier != -1 {
		t.Errorf("delta = (%d, %d), want (-8, -1)", delta.score, delta.tier)
	}
}

func TestFinalizeNothingPlayed(t *testing.T) {
	gateway := &memGateway{}
	analytics := &memAnalytics{}
	clock := newFakeClock()

	rec := NewRecorder(gateway, analytics, clock)
	state := NewState(quizWords(3), clock.Now())

	if summary := rec.Finalize(context.Background(), "sess-1", ModeChoice, state); summary != nil {
		t.Fatal("empty session produced a summary")
	}
	if _, ok := analytics.lastSession(); ok {
		t.Error("empty session was recorded")
	}
	if gateway.callCount() != 0 {
		t.Error("empty session mutated difficulty")
	}
}

func TestFinalizePersistErrorReported(t *testing.T) {
	gateway := &memGateway{err: errors.New("db locked")}
	analytics := &memAnalytics{}
	clock := newFakeClock()

	words := quizWords(2)
	state := NewState(words, clock.Now())
	for _, w := range words {
		state.Played = append(state.Played, w)
		state.Cursor++
		state.CorrectIDs[w.ID] = true
		state.Contributions[w.ID] = 1.0
		state.ScoreDeltas[w.ID] = 5
		state.TierDeltas[w.ID] = 1
	}

	rec := NewRecorder(gateway, analytics, clock)
	summary := rec.Finalize(context.Background(), "sess-1", ModeChoice, state)
	if summary == nil {
		t.Fatal("persist failure suppressed the summary")
	}
	// Both mutations were attempted and both failures reported.
	if gateway.callCount() != 2 {
		t.Errorf("gateway calls = %d, want 2", gateway.callCount())
	}
	if n := analytics.eventCount("persist_error"); n != 2 {
		t.Errorf("persist_error events = %d, want 2", n)
	}
}
