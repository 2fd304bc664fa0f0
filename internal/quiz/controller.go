package quiz

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/prefetch"
	"github.com/abhisek/lexiz/internal/word"
)

// OutcomeEvent describes one settled or rejected submission, for the
// caller to render feedback from.
type OutcomeEvent struct {
	WordID   word.ID
	Outcome  Outcome
	Attempts int

	// Correct mirrors Outcome == OutcomeCorrect for convenience.
	Correct bool

	// Expected is the answer to reveal once the word is settled.
	Expected string

	// ScoreDelta is the score change of this submission alone.
	ScoreDelta int

	// Score and Streak are the running totals after this submission.
	Score  int
	Streak int
}

// Options carries the collaborators a Controller needs. Generator may be
// nil for modes that do not generate content.
type Options struct {
	Source    WordSource
	Gateway   DifficultyGateway
	Analytics Analytics
	Clock     Clock
	Generator contentgen.Generator

	// Notify is invoked, without internal locks held, whenever a
	// background content resolution changes the session phase. Optional.
	Notify func()
}

// Controller drives one quiz session through its lifecycle. All mode
// variants share this one state machine; per-mode behavior comes from
// the ModeSpec capability table. Public operations are serialized
// internally so background prefetch resolutions interleave safely, but
// the operations themselves are meant to be called from a single caller.
type Controller struct {
	preset Preset
	spec   ModeSpec
	opts   Options

	mu         sync.Mutex
	sessionID  string
	phase      Phase
	errMsg     string
	candidates []word.Word
	state      *State
	cache      *prefetch.Cache
	attempts   int
	choices    []string
	summary    *Summary
	recorder   *Recorder
}

// NewController validates the preset and creates an idle controller.
func NewController(preset Preset, opts Options) (*Controller, error) {
	if !preset.Mode.Valid() {
		return nil, &StateError{Op: "create session for unknown mode", Phase: PhaseNotStarted}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Analytics == nil {
		opts.Analytics = NopAnalytics{}
	}
	return &Controller{
		preset:   preset,
		spec:     preset.Mode.Spec(),
		opts:     opts,
		phase:    PhaseNotStarted,
		recorder: NewRecorder(opts.Gateway, opts.Analytics, opts.Clock),
	}, nil
}

// Start fetches candidates, builds the pool and begins the session. For
// content-generating modes the first word is presented asynchronously:
// the phase moves to PhaseLoadingFirst and the caller waits for notify.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseNotStarted {
		return &StateError{Op: "start", Phase: c.phase}
	}

	candidates, err := c.opts.Source.FetchCandidates(ctx, c.preset.Language)
	if err != nil {
		return err
	}
	c.candidates = candidates

	return c.begin(ctx)
}

// begin builds a fresh pool, state and (for content modes) cache from
// the retained candidate snapshot. Callers must hold c.mu.
func (c *Controller) begin(ctx context.Context) error {
	pool, err := BuildPool(c.candidates, c.preset)
	if err != nil {
		return err
	}

	c.sessionID = uuid.New().String()
	c.state = NewState(pool, c.opts.Clock.Now())
	c.summary = nil
	c.errMsg = ""

	c.opts.Analytics.RecordEvent(ctx, "quiz_started", map[string]any{
		"session_id": c.sessionID,
		"quiz_type":  string(c.preset.Mode),
		"word_count": len(pool),
	})

	if c.spec.NeedsContent {
		c.cache = prefetch.New(c.opts.Generator, c.spec.ContentKind, c.onCacheNotify)
		c.phase = PhaseLoadingFirst
		c.cache.Start(ctx, pool)
		return nil
	}

	c.present()
	return nil
}

// present moves the word at the cursor into the answered-from state.
// Callers must hold c.mu, and the word's content (if any) must be ready.
func (c *Controller) present() {
	c.attempts = 0
	c.choices = nil

	w := c.state.Words[c.state.Cursor]
	switch {
	case c.preset.Mode == ModeChoice:
		c.choices = c.buildChoices(w)
	case c.spec.NumChoices > 0:
		if content, ok := c.cache.Content(w.ID); ok {
			c.choices = content.Choices
		}
	}
	c.phase = PhasePresenting
}

// buildChoices assembles the option list for translation-choice mode:
// the word's own translation plus distractors sampled from the
// candidate snapshot, shuffled.
func (c *Controller) buildChoices(w word.Word) []string {
	choices := []string{w.Translation}
	seen := map[string]bool{w.Translation: true}

	pool := make([]string, 0, len(c.candidates))
	for _, cand := range c.candidates {
		if cand.ID == w.ID || seen[cand.Translation] {
			continue
		}
		if cand.LanguageCode != w.LanguageCode {
			continue
		}
		seen[cand.Translation] = true
		pool = append(pool, cand.Translation)
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for _, t := range pool {
		if len(choices) >= c.spec.NumChoices {
			break
		}
		choices = append(choices, t)
	}
	rand.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return choices
}

// Phase returns the observable session phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the message behind PhaseError, or "".
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// SessionID returns the identifier of the running session.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Current returns the word at the cursor, or false when the session is
// complete, not started, or blocked on content.
func (c *Controller) Current() (word.Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePresenting && c.phase != PhaseAnswered {
		return word.Word{}, false
	}
	if c.phase == PhaseAnswered {
		// The settled word, for feedback display.
		return c.state.Played[len(c.state.Played)-1], true
	}
	return c.state.Words[c.state.Cursor], true
}

// CurrentContent returns the generated content for the presented word in
// content modes.
func (c *Controller) CurrentContent() (*contentgen.Content, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache == nil || c.phase != PhasePresenting {
		return nil, false
	}
	return c.cache.Content(c.state.Words[c.state.Cursor].ID)
}

// Choices returns the option list for choice-style modes, nil otherwise.
func (c *Controller) Choices() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePresenting {
		return nil
	}
	return c.choices
}

// AttemptsLeft reports how many submissions the presented word still
// allows.
func (c *Controller) AttemptsLeft() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePresenting {
		return 0
	}
	return c.spec.MaxAttempts - c.attempts
}

// Progress returns settled and total word counts.
func (c *Controller) Progress() (played, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return 0, 0
	}
	return len(c.state.Played), len(c.state.Words)
}

// Score returns the running score, current streak and best streak.
func (c *Controller) Score() (score, streak, best int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return 0, 0, 0
	}
	return c.state.Score, c.state.Streak, c.state.BestStreak
}

// Summary returns the finalized session summary once the session has
// completed or been dismissed with progress.
func (c *Controller) Summary() *Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// SubmitAnswer evaluates one submission against the presented word. A
// wrong answer with attempts remaining keeps the word presented; a
// correct, exhausting or final submission settles it and moves the
// session to PhaseAnswered (or PhaseComplete).
func (c *Controller) SubmitAnswer(ctx context.Context, answer string) (OutcomeEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhasePresenting {
		return OutcomeEvent{}, &StateError{Op: "submit answer", Phase: c.phase}
	}

	w := c.state.Words[c.state.Cursor]
	c.attempts++

	correct := c.checkAnswer(w, answer)
	var outcome Outcome
	switch {
	case correct:
		outcome = OutcomeCorrect
	case c.attempts >= c.spec.MaxAttempts:
		outcome = OutcomeExhausted
	default:
		outcome = OutcomeIncorrect
	}

	ev := c.apply(ctx, w, outcome)
	return ev, nil
}

// Skip settles the presented word as skipped. Only valid while the word
// is presented and unanswered or mid-retries.
func (c *Controller) Skip(ctx context.Context) (OutcomeEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhasePresenting {
		return OutcomeEvent{}, &StateError{Op: "skip", Phase: c.phase}
	}
	w := c.state.Words[c.state.Cursor]
	ev := c.apply(ctx, w, OutcomeSkipped)
	return ev, nil
}

// apply scores one event, accumulates deltas and settles the word when
// the outcome is terminal. Callers must hold c.mu.
func (c *Controller) apply(ctx context.Context, w word.Word, outcome Outcome) OutcomeEvent {
	scoreDelta, tierDelta := ScoreDeltas(outcome)

	c.state.Score += scoreDelta
	c.state.ScoreDeltas[w.ID] += scoreDelta

	if outcome == OutcomeCorrect {
		c.state.Streak++
		if c.state.Streak > c.state.BestStreak {
			c.state.BestStreak = c.state.Streak
		}
	} else {
		c.state.Streak = 0
	}

	ev := OutcomeEvent{
		WordID:     w.ID,
		Outcome:    outcome,
		Attempts:   c.attempts,
		Correct:    outcome == OutcomeCorrect,
		Expected:   c.expectedAnswer(w),
		ScoreDelta: scoreDelta,
		Score:      c.state.Score,
		Streak:     c.state.Streak,
	}

	if outcome == OutcomeIncorrect {
		// Attempts remain; the word stays presented.
		return ev
	}

	// Terminal outcome: settle the word. Played and Cursor move together.
	c.state.TierDeltas[w.ID] = tierDelta
	c.state.Contributions[w.ID] = Contribution(c.spec, outcome, c.attempts)
	if outcome == OutcomeCorrect {
		c.state.CorrectIDs[w.ID] = true
	}
	c.state.Played = append(c.state.Played, w)
	c.state.Cursor++

	if c.state.Cursor == len(c.state.Words) {
		c.complete(ctx)
	} else {
		c.phase = PhaseAnswered
	}
	return ev
}

// complete finalizes the session. Callers must hold c.mu.
func (c *Controller) complete(ctx context.Context) {
	c.state.Complete = true
	c.phase = PhaseComplete
	if c.cache != nil {
		c.cache.Shutdown()
	}
	c.summary = c.recorder.Finalize(ctx, c.sessionID, c.preset.Mode, c.state)
}

// checkAnswer compares a submission against the presented word under the
// mode's rules. Typed modes are case-insensitive and whitespace-trimmed;
// choice modes match the option verbatim.
func (c *Controller) checkAnswer(w word.Word, answer string) bool {
	switch c.preset.Mode {
	case ModeChoice:
		return answer == w.Translation
	case ModeSpelling:
		return strings.EqualFold(strings.TrimSpace(answer), w.Text)
	case ModeStory, ModeCloze:
		content, ok := c.cache.Content(w.ID)
		if !ok {
			return false
		}
		if c.spec.NumChoices > 0 {
			return answer == content.Answer
		}
		return strings.EqualFold(strings.TrimSpace(answer), content.Answer)
	}
	return false
}

func (c *Controller) expectedAnswer(w word.Word) string {
	switch c.preset.Mode {
	case ModeChoice:
		return w.Translation
	case ModeSpelling:
		return w.Text
	default:
		if content, ok := c.cache.Content(w.ID); ok {
			return content.Answer
		}
		return w.Text
	}
}

// Next moves from the settled word to the following one. In content
// modes it may leave the session in PhaseWaiting when the lookahead has
// not resolved yet; the caller then waits for notify.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseAnswered {
		return &StateError{Op: "advance", Phase: c.phase}
	}

	if !c.spec.NeedsContent {
		c.present()
		return nil
	}

	w := c.state.Words[c.state.Cursor]
	_, status := c.cache.Await(w.ID)
	switch status {
	case prefetch.StatusReady:
		c.present()
	case prefetch.StatusPending:
		c.phase = PhaseWaiting
	case prefetch.StatusFailed:
		c.phase = PhaseError
		c.errMsg = c.cache.Err()
	}
	return nil
}

// Retry recovers from PhaseError. When the prefetch cache is blocked on
// a specific key its generation is re-issued; otherwise the whole
// session restarts.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()

	if c.phase != PhaseError {
		c.mu.Unlock()
		return &StateError{Op: "retry", Phase: c.phase}
	}

	if c.cache != nil && c.cache.Retry() {
		c.errMsg = ""
		if c.state.Cursor == 0 && len(c.state.Played) == 0 {
			c.phase = PhaseLoadingFirst
		} else {
			c.phase = PhaseWaiting
		}
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()
	return c.Restart(ctx)
}

// Restart throws away all progress and begins a fresh session with the
// same preset: new shuffle, zeroed counters, and for content modes a
// brand-new prefetch pipeline. Outstanding generation is canceled.
func (c *Controller) Restart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return &StateError{Op: "restart", Phase: c.phase}
	}
	if c.cache != nil {
		c.cache.Shutdown()
		c.cache = nil
	}
	return c.begin(ctx)
}

// Dismiss abandons the session. Progress made so far is still recorded:
// a partial summary is finalized when at least one word was played and
// the session had not already completed.
func (c *Controller) Dismiss(ctx context.Context) *Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil {
		c.cache.Shutdown()
	}
	if c.state != nil && !c.state.Complete && len(c.state.Played) > 0 {
		c.summary = c.recorder.Finalize(ctx, c.sessionID, c.preset.Mode, c.state)
	}
	c.phase = PhaseNotStarted
	c.state = nil
	return c.summary
}

// onCacheNotify runs when a background generation resolution changed the
// cache state. It maps the cache state onto the session phase and then
// forwards the wakeup to the embedding application.
func (c *Controller) onCacheNotify() {
	c.mu.Lock()

	switch c.cache.State() {
	case prefetch.StateReady:
		if c.phase == PhaseLoadingFirst || c.phase == PhaseWaiting {
			c.present()
		}
	case prefetch.StateError:
		if c.phase == PhaseLoadingFirst || c.phase == PhaseWaiting {
			c.phase = PhaseError
			c.errMsg = c.cache.Err()
		}
	}

	notify := c.opts.Notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}
