package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/word"
)

// memSource implements WordSource over a fixed slice.
type memSource struct {
	words []word.Word
	err   error
}

func (s *memSource) FetchCandidates(_ context.Context, _ string) ([]word.Word, error) {
	return s.words, s.err
}

type deltaCall struct {
	id    word.ID
	score int
	tier  int
}

// memGateway implements DifficultyGateway and records every mutation.
type memGateway struct {
	mu    sync.Mutex
	calls []deltaCall
	err   error
}

func (g *memGateway) ApplyDelta(_ context.Context, id word.ID, scoreDelta, tierDelta int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, deltaCall{id: id, score: scoreDelta, tier: tierDelta})
	return g.err
}

func (g *memGateway) deltaFor(id word.ID) (deltaCall, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.calls {
		if c.id == id {
			return c, true
		}
	}
	return deltaCall{}, false
}

func (g *memGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// memAnalytics implements Analytics and records everything.
type memAnalytics struct {
	mu       sync.Mutex
	sessions []Summary
	events   []string
}

func (a *memAnalytics) RecordSession(_ context.Context, s Summary) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = append(a.sessions, s)
}

func (a *memAnalytics) RecordEvent(_ context.Context, name string, _ map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, name)
}

func (a *memAnalytics) lastSession() (Summary, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.sessions) == 0 {
		return Summary{}, false
	}
	return a.sessions[len(a.sessions)-1], true
}

func (a *memAnalytics) eventCount(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, e := range a.events {
		if e == name {
			n++
		}
	}
	return n
}

// fakeClock is a settable Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func quizWords(n int) []word.Word {
	words := make([]word.Word, n)
	for i := range words {
		words[i] = word.Word{
			ID:           word.ID(fmt.Sprintf("w%d", i)),
			Text:         fmt.Sprintf("Wort%d", i),
			Translation:  fmt.Sprintf("word%d", i),
			LanguageCode: "de",
			Tier:         word.TierInProgress,
		}
	}
	return words
}

type testRig struct {
	ctrl      *Controller
	gateway   *memGateway
	analytics *memAnalytics
	clock     *fakeClock
	gen       *contentgen.MockGenerator
}

func newTestRig(t *testing.T, preset Preset, candidates []word.Word, gen *contentgen.MockGenerator) *testRig {
	t.Helper()
	rig := &testRig{
		gateway:   &memGateway{},
		analytics: &memAnalytics{},
		clock:     newFakeClock(),
		gen:       gen,
	}
	var genIface contentgen.Generator
	if gen != nil {
		genIface = gen
	}
	ctrl, err := NewController(preset, Options{
		Source:    &memSource{words: candidates},
		Gateway:   rig.gateway,
		Analytics: rig.analytics,
		Clock:     rig.clock,
		Generator: genIface,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	rig.ctrl = ctrl
	return rig
}

// waitPhase polls until the controller reaches phase.
func waitPhase(t *testing.T, c *Controller, phase Phase) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Phase() == phase {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for phase %s, stuck in %s", phase, c.Phase())
}

// answerCorrectly submits the right answer for the presented word.
func answerCorrectly(t *testing.T, c *Controller) OutcomeEvent {
	t.Helper()
	w, ok := c.Current()
	if !ok {
		t.Fatalf("no current word in phase %s", c.Phase())
	}
	var answer string
	switch c.preset.Mode {
	case ModeChoice:
		answer = w.Translation
	default:
		answer = w.Text
	}
	ev, err := c.SubmitAnswer(context.Background(), answer)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !ev.Correct {
		t.Fatalf("answer %q for %s judged incorrect", answer, w.ID)
	}
	return ev
}

func TestStartInsufficientWords(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 5, Mode: ModeChoice}, quizWords(3), nil)

	err := rig.ctrl.Start(context.Background())
	var insufficient *InsufficientItemsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Start err = %v, want InsufficientItemsError", err)
	}
	if rig.ctrl.Phase() != PhaseNotStarted {
		t.Errorf("phase = %s, want not-started", rig.ctrl.Phase())
	}
	if played, total := rig.ctrl.Progress(); played != 0 || total != 0 {
		t.Errorf("progress = %d/%d, want 0/0", played, total)
	}
}

func TestChoiceModeFullSession(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 5, Mode: ModeChoice}, quizWords(10), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rig.ctrl.Phase() != PhasePresenting {
		t.Fatalf("phase after start = %s, want presenting", rig.ctrl.Phase())
	}

	rig.clock.Advance(90 * time.Second)

	for i := 0; i < 5; i++ {
		w, ok := rig.ctrl.Current()
		if !ok {
			t.Fatalf("step %d: no current word", i)
		}
		choices := rig.ctrl.Choices()
		if len(choices) != 4 {
			t.Fatalf("step %d: %d choices, want 4", i, len(choices))
		}
		found := false
		for _, choice := range choices {
			if choice == w.Translation {
				found = true
			}
		}
		if !found {
			t.Fatalf("step %d: correct translation missing from choices", i)
		}

		ev := answerCorrectly(t, rig.ctrl)
		if ev.ScoreDelta != 5 {
			t.Errorf("step %d: score delta = %d, want 5", i, ev.ScoreDelta)
		}
		if ev.Streak != i+1 {
			t.Errorf("step %d: streak = %d, want %d", i, ev.Streak, i+1)
		}

		if i < 4 {
			if err := rig.ctrl.Next(); err != nil {
				t.Fatalf("Next: %v", err)
			}
		}
	}

	if rig.ctrl.Phase() != PhaseComplete {
		t.Fatalf("phase = %s, want complete", rig.ctrl.Phase())
	}
	summary := rig.ctrl.Summary()
	if summary == nil {
		t.Fatal("no summary after completion")
	}
	if summary.Score != 25 {
		t.Errorf("score = %d, want 25", summary.Score)
	}
	if summary.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", summary.Accuracy)
	}
	if summary.TotalPlayed != 5 || summary.CorrectAnswers != 5 {
		t.Errorf("played/correct = %d/%d, want 5/5", summary.TotalPlayed, summary.CorrectAnswers)
	}
	if summary.DurationSeconds != 90 {
		t.Errorf("duration = %v, want 90", summary.DurationSeconds)
	}
	if rig.gateway.callCount() != 5 {
		t.Errorf("gateway calls = %d, want 5", rig.gateway.callCount())
	}
	if got, _ := rig.analytics.lastSession(); got.SessionID != summary.SessionID {
		t.Errorf("analytics recorded session %q, want %q", got.SessionID, summary.SessionID)
	}
}

func TestSpellingRetryContribution(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 4, Mode: ModeSpelling}, quizWords(4), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// First word: one wrong attempt, then correct. Contribution 0.8.
	ev, err := rig.ctrl.SubmitAnswer(ctx, "falsch")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if ev.Outcome != OutcomeIncorrect || ev.ScoreDelta != -2 {
		t.Fatalf("wrong attempt: outcome %v delta %d, want incorrect/-2", ev.Outcome, ev.ScoreDelta)
	}
	if rig.ctrl.Phase() != PhasePresenting {
		t.Fatalf("word settled after non-exhausting wrong attempt")
	}
	ev = answerCorrectly(t, rig.ctrl)
	if ev.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", ev.Attempts)
	}

	// Remaining three: correct first try.
	for i := 0; i < 3; i++ {
		if err := rig.ctrl.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
		answerCorrectly(t, rig.ctrl)
	}

	summary := rig.ctrl.Summary()
	if summary == nil {
		t.Fatal("no summary")
	}
	if summary.Accuracy != 0.95 {
		t.Errorf("accuracy = %v, want 0.95", summary.Accuracy)
	}
	if summary.Score != 18 {
		t.Errorf("score = %d, want 18", summary.Score)
	}
	if summary.CorrectAnswers != 4 {
		t.Errorf("correct = %d, want 4", summary.CorrectAnswers)
	}
}

func TestSpellingExhaustion(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 2, Mode: ModeSpelling}, quizWords(2), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w, _ := rig.ctrl.Current()

	for i := 0; i < 2; i++ {
		ev, err := rig.ctrl.SubmitAnswer(ctx, "falsch")
		if err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if ev.Outcome != OutcomeIncorrect {
			t.Fatalf("attempt %d outcome = %v, want incorrect", i+1, ev.Outcome)
		}
	}
	ev, err := rig.ctrl.SubmitAnswer(ctx, "falsch")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if ev.Outcome != OutcomeExhausted {
		t.Fatalf("third attempt outcome = %v, want exhausted", ev.Outcome)
	}
	if ev.ScoreDelta != -4 {
		t.Errorf("exhausting delta = %d, want -4", ev.ScoreDelta)
	}
	if ev.Expected != w.Text {
		t.Errorf("expected answer = %q, want %q", ev.Expected, w.Text)
	}
	if rig.ctrl.Phase() != PhaseAnswered {
		t.Fatalf("phase = %s, want answered", rig.ctrl.Phase())
	}

	if err := rig.ctrl.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	answerCorrectly(t, rig.ctrl)

	// The exhausted word accumulated -2, -2 and -4 across its attempts.
	delta, ok := rig.gateway.deltaFor(w.ID)
	if !ok {
		t.Fatalf("no difficulty mutation for %s", w.ID)
	}
	if delta.score != -8 || delta.tier != -1 {
		t.Errorf("delta for %s = (%d, %d), want (-8, -1)", w.ID, delta.score, delta.tier)
	}
}

func TestSkipScoredAsExhaustion(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 5, Mode: ModeChoice}, quizWords(5), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var skipped word.ID
	for i := 0; i < 5; i++ {
		if i == 2 {
			w, _ := rig.ctrl.Current()
			skipped = w.ID
			ev, err := rig.ctrl.Skip(ctx)
			if err != nil {
				t.Fatalf("Skip: %v", err)
			}
			if ev.Outcome != OutcomeSkipped || ev.ScoreDelta != -2 {
				t.Fatalf("skip: outcome %v delta %d, want skipped/-2", ev.Outcome, ev.ScoreDelta)
			}
			if ev.Streak != 0 {
				t.Errorf("streak after skip = %d, want 0", ev.Streak)
			}
		} else {
			answerCorrectly(t, rig.ctrl)
		}
		if i < 4 {
			if err := rig.ctrl.Next(); err != nil {
				t.Fatalf("Next: %v", err)
			}
		}
	}

	summary := rig.ctrl.Summary()
	if summary == nil {
		t.Fatal("no summary")
	}
	// Skips stay in the accuracy denominator.
	if summary.TotalPlayed != 5 {
		t.Errorf("played = %d, want 5", summary.TotalPlayed)
	}
	if summary.Accuracy != 0.8 {
		t.Errorf("accuracy = %v, want 0.8", summary.Accuracy)
	}
	if summary.Score != 18 {
		t.Errorf("score = %d, want 18", summary.Score)
	}
	delta, ok := rig.gateway.deltaFor(skipped)
	if !ok {
		t.Fatalf("no difficulty mutation for skipped word")
	}
	if delta.score != -2 || delta.tier != -1 {
		t.Errorf("skip delta = (%d, %d), want (-2, -1)", delta.score, delta.tier)
	}
}

func TestStreakTracking(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 4, Mode: ModeChoice}, quizWords(4), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	answerCorrectly(t, rig.ctrl)
	rig.ctrl.Next()
	answerCorrectly(t, rig.ctrl)
	rig.ctrl.Next()

	if _, streak, best := rig.ctrl.Score(); streak != 2 || best != 2 {
		t.Fatalf("streak/best = %d/%d, want 2/2", streak, best)
	}

	// A wrong pick in choice mode exhausts immediately and resets the
	// streak without touching the best streak.
	if _, err := rig.ctrl.SubmitAnswer(ctx, "nonsense"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, streak, best := rig.ctrl.Score(); streak != 0 || best != 2 {
		t.Fatalf("streak/best after miss = %d/%d, want 0/2", streak, best)
	}

	rig.ctrl.Next()
	answerCorrectly(t, rig.ctrl)
	if _, streak, best := rig.ctrl.Score(); streak != 1 || best != 2 {
		t.Fatalf("streak/best = %d/%d, want 1/2", streak, best)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 4, Mode: ModeChoice}, quizWords(8), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	firstID := rig.ctrl.SessionID()
	answerCorrectly(t, rig.ctrl)
	rig.ctrl.Next()
	answerCorrectly(t, rig.ctrl)

	if err := rig.ctrl.Restart(ctx); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if rig.ctrl.Phase() != PhasePresenting {
		t.Errorf("phase = %s, want presenting", rig.ctrl.Phase())
	}
	if score, streak, best := rig.ctrl.Score(); score != 0 || streak != 0 || best != 0 {
		t.Errorf("score/streak/best = %d/%d/%d, want zeros", score, streak, best)
	}
	if played, total := rig.ctrl.Progress(); played != 0 || total != 4 {
		t.Errorf("progress = %d/%d, want 0/4", played, total)
	}
	if rig.ctrl.SessionID() == firstID {
		t.Error("restart kept the old session id")
	}
	// Abandoned progress is discarded, not recorded.
	if _, ok := rig.analytics.lastSession(); ok {
		t.Error("restart recorded a session summary")
	}
}

func TestDismissRecordsPartialSession(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 5, Mode: ModeChoice}, quizWords(5), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	answerCorrectly(t, rig.ctrl)
	rig.ctrl.Next()
	answerCorrectly(t, rig.ctrl)
	rig.ctrl.Next()

	summary := rig.ctrl.Dismiss(ctx)
	if summary == nil {
		t.Fatal("dismiss with progress returned no summary")
	}
	if summary.TotalPlayed != 2 || summary.Score != 10 {
		t.Errorf("played/score = %d/%d, want 2/10", summary.TotalPlayed, summary.Score)
	}
	if _, ok := rig.analytics.lastSession(); !ok {
		t.Error("partial session not recorded")
	}
	if rig.gateway.callCount() != 2 {
		t.Errorf("gateway calls = %d, want 2", rig.gateway.callCount())
	}
}

func TestDismissWithoutProgressDiscards(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 5, Mode: ModeChoice}, quizWords(5), nil)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if summary := rig.ctrl.Dismiss(ctx); summary != nil {
		t.Fatal("dismiss without progress returned a summary")
	}
	if _, ok := rig.analytics.lastSession(); ok {
		t.Error("empty session was recorded")
	}
}

func TestOperationsOutsidePhaseFailLoudly(t *testing.T) {
	rig := newTestRig(t, Preset{WordCount: 5, Mode: ModeChoice}, quizWords(5), nil)
	ctx := context.Background()

	var stateErr *StateError
	if _, err := rig.ctrl.SubmitAnswer(ctx, "x"); !errors.As(err, &stateErr) {
		t.Errorf("submit before start: err = %v, want StateError", err)
	}
	if err := rig.ctrl.Next(); !errors.As(err, &stateErr) {
		t.Errorf("next before start: err = %v, want StateError", err)
	}

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Next without a settled answer.
	if err := rig.ctrl.Next(); !errors.As(err, &stateErr) {
		t.Errorf("next while presenting: err = %v, want StateError", err)
	}
	answerCorrectly(t, rig.ctrl)
	// Submit on an already-settled word.
	if _, err := rig.ctrl.SubmitAnswer(ctx, "x"); !errors.As(err, &stateErr) {
		t.Errorf("submit while answered: err = %v, want StateError", err)
	}
}

func TestStoryModeAsyncFlow(t *testing.T) {
	gen := contentgen.NewBlockingMockGenerator()
	rig := newTestRig(t, Preset{WordCount: 3, Mode: ModeStory}, quizWords(3), gen)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rig.ctrl.Phase() != PhaseLoadingFirst {
		t.Fatalf("phase = %s, want loading-first-content", rig.ctrl.Phase())
	}
	if _, ok := rig.ctrl.Current(); ok {
		t.Fatal("current word visible before first content resolved")
	}

	first := waitPendingWord(t, gen, quizWords(3))
	gen.Resolve(first)
	waitPhase(t, rig.ctrl, PhasePresenting)

	content, ok := rig.ctrl.CurrentContent()
	if !ok {
		t.Fatal("no content for presented word")
	}
	if content.WordID != first {
		t.Fatalf("content for %s, want %s", content.WordID, first)
	}
	if len(rig.ctrl.Choices()) != 4 {
		t.Fatalf("%d choices, want 4", len(rig.ctrl.Choices()))
	}

	// Lookahead for the second word starts behind the scenes.
	second := waitPendingWord(t, gen, quizWords(3))
	if second == first {
		t.Fatal("no lookahead generation issued")
	}

	if _, err := rig.ctrl.SubmitAnswer(ctx, content.Answer); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if rig.ctrl.Phase() != PhaseAnswered {
		t.Fatalf("phase = %s, want answered", rig.ctrl.Phase())
	}

	// Advancing before the lookahead resolves parks the session.
	if err := rig.ctrl.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rig.ctrl.Phase() != PhaseWaiting {
		t.Fatalf("phase = %s, want waiting-for-content", rig.ctrl.Phase())
	}

	gen.Resolve(second)
	waitPhase(t, rig.ctrl, PhasePresenting)
}

func TestStoryModeGenerationFailureAndRetry(t *testing.T) {
	gen := contentgen.NewBlockingMockGenerator()
	rig := newTestRig(t, Preset{WordCount: 2, Mode: ModeStory}, quizWords(2), gen)
	ctx := context.Background()

	if err := rig.ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	first := waitPendingWord(t, gen, quizWords(2))
	gen.Fail(first, errors.New("model overloaded"))
	waitPhase(t, rig.ctrl, PhaseError)

	if rig.ctrl.Err() != "model overloaded" {
		t.Errorf("error message = %q", rig.ctrl.Err())
	}

	if err := rig.ctrl.Retry(ctx); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if rig.ctrl.Phase() != PhaseLoadingFirst {
		t.Fatalf("phase after retry = %s, want loading-first-content", rig.ctrl.Phase())
	}

	retried := waitPendingWord(t, gen, quizWords(2))
	gen.Resolve(retried)
	waitPhase(t, rig.ctrl, PhasePresenting)
}

// waitPendingWord polls until the generator has a blocked call for one
// of the given words and returns that word's id.
func waitPendingWord(t *testing.T, gen *contentgen.MockGenerator, words []word.Word) word.ID {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, w := range words {
			if gen.Pending(w.ID) {
				return w.ID
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for a pending generation")
	return ""
}
