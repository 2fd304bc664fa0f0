package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lexiz/internal/quiz"
)

// snapshotKeep bounds how many progress snapshots are retained.
const snapshotKeep = 20

// Analytics adapts the event store to the quiz engine's telemetry
// contract. Failures are reported to stderr and swallowed; telemetry
// never interrupts a session.
type Analytics struct {
	events    EventRepo
	snapshots SnapshotRepo
	words     WordRepo
	seq       *sequenceCounter
}

// NewAnalytics creates the store-backed Analytics for s.
func NewAnalytics(s *Store) *Analytics {
	return &Analytics{
		events:    s.EventRepo(),
		snapshots: s.SnapshotRepo(),
		words:     s.WordRepo(),
		seq:       s.seq,
	}
}

// RecordSession persists a session summary and refreshes the progress
// snapshot.
func (a *Analytics) RecordSession(ctx context.Context, sum quiz.Summary) {
	practiced := make([]string, 0, len(sum.PracticedIDs))
	for _, id := range sum.PracticedIDs {
		practiced = append(practiced, string(id))
	}
	correct := make([]string, 0, len(sum.CorrectIDs))
	for _, id := range sum.CorrectIDs {
		correct = append(correct, string(id))
	}

	err := a.events.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      sum.SessionID,
		QuizType:       sum.QuizType,
		Score:          sum.Score,
		CorrectAnswers: sum.CorrectAnswers,
		TotalPlayed:    sum.TotalPlayed,
		DurationSecs:   sum.DurationSeconds,
		Accuracy:       sum.Accuracy,
		PracticedIDs:   practiced,
		CorrectIDs:     correct,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session: %v\n", err)
		return
	}

	a.snapshotProgress(ctx)
}

// RecordEvent persists a free-form analytics event.
func (a *Analytics) RecordEvent(ctx context.Context, name string, params map[string]any) {
	err := a.events.AppendAppEvent(ctx, AppEventData{Name: name, Params: params})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record event %s: %v\n", name, err)
	}
}

// snapshotProgress captures per-tier word counts after a session so the
// stats view can show progression without replaying events.
func (a *Analytics) snapshotProgress(ctx context.Context) {
	counts, total, err := a.words.TierCounts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to snapshot progress: %v\n", err)
		return
	}
	seqNum, err := a.seq.Current(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to snapshot progress: %v\n", err)
		return
	}

	err = a.snapshots.Save(ctx, &Snapshot{
		Sequence:  seqNum,
		Timestamp: time.Now().UTC(),
		Data: SnapshotData{
			Version:    1,
			TotalWords: total,
			TierCounts: counts,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to snapshot progress: %v\n", err)
		return
	}
	if err := a.snapshots.Prune(ctx, snapshotKeep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune snapshots: %v\n", err)
	}
}
