package quiz

import (
	"context"
	"time"

	"github.com/abhisek/lexiz/internal/word"
)

// WordSource supplies the read-only candidate snapshot a session draws
// from. Backed by the word store in the app; by fixtures in tests.
type WordSource interface {
	FetchCandidates(ctx context.Context, language string) ([]word.Word, error)
}

// DifficultyGateway mutates one word's persisted score and tier.
// Failures are reported, never fatal: the session continues.
type DifficultyGateway interface {
	ApplyDelta(ctx context.Context, id word.ID, scoreDelta, tierDelta int) error
}

// Analytics is the fire-and-forget telemetry sink.
type Analytics interface {
	RecordSession(ctx context.Context, s Summary)
	RecordEvent(ctx context.Context, name string, params map[string]any)
}

// Clock abstracts time for duration measurement in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used outside tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NopAnalytics discards everything. Useful when no store is attached.
type NopAnalytics struct{}

func (NopAnalytics) RecordSession(context.Context, Summary)                 {}
func (NopAnalytics) RecordEvent(context.Context, string, map[string]any)    {}
