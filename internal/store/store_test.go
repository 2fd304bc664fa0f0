package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/word"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWordAddAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Add(ctx, "Fernweh", "wanderlust", "de")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if w.WordID == "" {
		t.Fatal("expected generated word_id")
	}
	if w.Tier != "new" || w.Score != 0 {
		t.Errorf("new word tier/score = %s/%d, want new/0", w.Tier, w.Score)
	}

	// Same text in another language is fine.
	if _, err := repo.Add(ctx, "Fernweh", "wanderlust", "nl"); err != nil {
		t.Fatalf("add other language: %v", err)
	}
	// Duplicate (text, language) is rejected.
	if _, err := repo.Add(ctx, "Fernweh", "wanderlust", "de"); err == nil {
		t.Fatal("expected duplicate error")
	}

	list, err := repo.List(ctx, "de")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list(de) = %d words, want 1", len(list))
	}
	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list() = %d words, want 2", len(all))
	}
}

func TestWordApplyDelta(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Add(ctx, "Apfel", "apple", "de")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id := word.ID(w.WordID)

	if err := repo.ApplyDelta(ctx, id, 5, 1); err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	candidates, err := repo.FetchCandidates(ctx, "de")
	if err != nil {
		t.Fatalf("fetch candidates: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(candidates))
	}
	got := candidates[0]
	if got.Score != 5 {
		t.Errorf("score = %d, want 5", got.Score)
	}
	if got.Tier != word.TierInProgress {
		t.Errorf("tier = %s, want in_progress", got.Tier)
	}

	// Negative nudge drops to needs_review.
	if err := repo.ApplyDelta(ctx, id, -8, -1); err != nil {
		t.Fatalf("apply delta: %v", err)
	}
	candidates, _ = repo.FetchCandidates(ctx, "de")
	if candidates[0].Tier != word.TierNeedsReview {
		t.Errorf("tier = %s, want needs_review", candidates[0].Tier)
	}
	if candidates[0].Score != -3 {
		t.Errorf("score = %d, want -3", candidates[0].Score)
	}

	if err := repo.ApplyDelta(ctx, "missing", 1, 0); err == nil {
		t.Fatal("expected error for unknown word id")
	}
}

func TestTierCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	words := []struct{ text, translation string }{
		{"eins", "one"}, {"zwei", "two"}, {"drei", "three"},
	}
	for _, w := range words {
		if _, err := repo.Add(ctx, w.text, w.translation, "de"); err != nil {
			t.Fatalf("add %s: %v", w.text, err)
		}
	}

	counts, total, err := repo.TierCounts(ctx)
	if err != nil {
		t.Fatalf("tier counts: %v", err)
	}
	if total != 3 || counts["new"] != 3 {
		t.Errorf("counts = %v total %d, want 3 new", counts, total)
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		QuizType:       "spelling",
		Score:          18,
		CorrectAnswers: 4,
		TotalPlayed:    4,
		DurationSecs:   92.5,
		Accuracy:       0.95,
		PracticedIDs:   []string{"a", "b", "c", "d"},
		CorrectIDs:     []string{"a", "b", "c", "d"},
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.SessionID != "sess-1" || r.QuizType != "spelling" || r.Score != 18 {
		t.Errorf("record = %+v", r)
	}
	if r.Accuracy != 0.95 || r.DurationSecs != 92.5 {
		t.Errorf("accuracy/duration = %v/%v", r.Accuracy, r.DurationSecs)
	}
}

func TestGlobalSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave event types; sequences must be strictly increasing
	// across tables.
	if err := repo.AppendAppEvent(ctx, AppEventData{Name: "quiz_started"}); err != nil {
		t.Fatalf("append app event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "sess-1", WordID: "w1", QuizType: "choice", Outcome: "correct", Attempts: 1,
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "sess-1", QuizType: "choice"}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Sequence != 3 {
		t.Errorf("session event sequence = %d, want 3", records[0].Sequence)
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "story-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"ok":true}`},
		{Provider: "anthropic", Model: "m1", Purpose: "story-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "cloze-gen", InputTokens: 80, OutputTokens: 40, LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "cloze-gen" {
		t.Errorf("first record purpose = %s, want cloze-gen", records[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, records[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != records[1].ID {
		t.Fatalf("get returned %+v", got)
	}
	if missing, err := repo.GetLLMEvent(ctx, 99999); err != nil || missing != nil {
		t.Fatalf("get missing = %+v, %v; want nil, nil", missing, err)
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("purposes = %d, want 2", len(stats))
	}
	// Sorted by purpose: cloze-gen before story-gen.
	if stats[0].Purpose != "cloze-gen" || stats[0].Calls != 1 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Purpose != "story-gen" || stats[1].InputTokens != 220 || stats[1].AvgLatencyMs != 500 {
		t.Errorf("stats[1] = %+v", stats[1])
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 || usage[0].Model != "m1" || usage[0].Calls != 2 {
		t.Errorf("usage = %+v", usage)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data: SnapshotData{
				Version:    1,
				TotalWords: 10 + i,
				TierCounts: map[string]int{"new": 10 + i},
			},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Data.TotalWords != 12 {
		t.Fatalf("latest = %+v, want total 12", snap)
	}

	if err := repo.Prune(ctx, 1); err != nil {
		t.Fatalf("prune: %v", err)
	}
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil || snap.Data.TotalWords != 12 {
		t.Fatalf("prune removed the newest snapshot: %+v", snap)
	}
}
