package prefetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/word"
)

func testWords(n int) []word.Word {
	words := make([]word.Word, n)
	names := []string{"Hund", "Katze", "Vogel", "Pferd", "Fisch"}
	for i := range words {
		words[i] = word.Word{
			ID:           word.ID(names[i%len(names)]),
			Text:         names[i%len(names)],
			LanguageCode: "de",
		}
	}
	return words
}

// newTestCache wires a blocking generator to a cache with a buffered
// notify channel the tests can wait on.
func newTestCache(n int) (*Cache, *contentgen.MockGenerator, chan struct{}, []word.Word) {
	gen := contentgen.NewBlockingMockGenerator()
	notify := make(chan struct{}, 16)
	c := New(gen, contentgen.KindStory, func() { notify <- struct{}{} })
	words := testWords(n)
	c.Start(context.Background(), words)
	return c, gen, notify, words
}

func waitNotify(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for cache notification")
	}
}

// waitCalls waits until the generator has been invoked n times for id.
func waitCalls(t *testing.T, gen *contentgen.MockGenerator, id word.ID, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for gen.CallsFor(id) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out: CallsFor(%s) = %d, want %d", id, gen.CallsFor(id), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCache_FirstGenerationThenLookahead(t *testing.T) {
	c, gen, notify, words := newTestCache(3)

	if c.State() != StateGeneratingFirst {
		t.Fatalf("State = %d, want StateGeneratingFirst", c.State())
	}
	waitCalls(t, gen, words[0].ID, 1)

	gen.Resolve(words[0].ID)
	waitNotify(t, notify)

	if c.State() != StateReady {
		t.Errorf("State = %d, want StateReady", c.State())
	}
	if _, ok := c.Content(words[0].ID); !ok {
		t.Error("content for first word not cached")
	}

	// Lookahead for the second word starts without being asked for.
	waitCalls(t, gen, words[1].ID, 1)
}

func TestCache_AwaitPendingThenResolve(t *testing.T) {
	c, gen, notify, words := newTestCache(3)
	waitCalls(t, gen, words[0].ID, 1)
	gen.Resolve(words[0].ID)
	waitNotify(t, notify)
	waitCalls(t, gen, words[1].ID, 1)

	// Advance before the lookahead resolves: caller must wait.
	if _, st := c.Await(words[1].ID); st != StatusPending {
		t.Fatalf("Await status = %d, want StatusPending", st)
	}
	if c.State() != StatePrefetching {
		t.Errorf("State = %d, want StatePrefetching", c.State())
	}

	gen.Resolve(words[1].ID)
	waitNotify(t, notify)

	if c.State() != StateReady {
		t.Errorf("State = %d, want StateReady", c.State())
	}
	// The resolved await schedules lookahead for the third word.
	waitCalls(t, gen, words[2].ID, 1)
}

func TestCache_AtMostOneInFlightPerKey(t *testing.T) {
	c, gen, _, words := newTestCache(3)
	waitCalls(t, gen, words[0].ID, 1)

	// Repeated awaits for the same not-yet-ready key must not spawn a
	// second generation.
	c.Await(words[0].ID)
	c.Await(words[0].ID)

	if n := gen.CallsFor(words[0].ID); n != 1 {
		t.Errorf("CallsFor(first) = %d, want 1", n)
	}
}

func TestCache_StaleResultCachedWithoutTransition(t *testing.T) {
	c, gen, notify, words := newTestCache(3)
	waitCalls(t, gen, words[0].ID, 1)
	gen.Resolve(words[0].ID)
	waitNotify(t, notify)
	waitCalls(t, gen, words[1].ID, 1)

	// Move the blocked key past the pending word.
	c.Await(words[1].ID)
	c.Await(words[2].ID)
	if c.State() != StatePrefetching {
		t.Fatalf("State = %d, want StatePrefetching", c.State())
	}

	// The second word resolves late: cached, but no state change.
	gen.Resolve(words[1].ID)
	waitCalls(t, gen, words[1].ID, 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Content(words[1].ID); !ok {
		t.Error("stale result was not cached")
	}
	if c.State() != StatePrefetching {
		t.Errorf("stale result changed state to %d", c.State())
	}

	// The key actually awaited still transitions normally.
	gen.Resolve(words[2].ID)
	waitNotify(t, notify)
	if c.State() != StateReady {
		t.Errorf("State = %d, want StateReady", c.State())
	}
}

func TestCache_GenerationFailureAndRetry(t *testing.T) {
	c, gen, notify, words := newTestCache(2)
	waitCalls(t, gen, words[0].ID, 1)

	gen.Fail(words[0].ID, errors.New("model overloaded"))
	waitNotify(t, notify)

	if c.State() != StateError {
		t.Fatalf("State = %d, want StateError", c.State())
	}
	if c.Err() != "model overloaded" {
		t.Errorf("Err = %q", c.Err())
	}

	if !c.Retry() {
		t.Fatal("Retry returned false with a blocked key")
	}
	if c.State() != StateGeneratingFirst {
		t.Errorf("State after retry = %d, want StateGeneratingFirst", c.State())
	}

	waitCalls(t, gen, words[0].ID, 2)
	gen.Resolve(words[0].ID)
	waitNotify(t, notify)

	if c.State() != StateReady {
		t.Errorf("State = %d, want StateReady", c.State())
	}
}

func TestCache_RetryWithoutBlockedKey(t *testing.T) {
	c, gen, notify, words := newTestCache(2)
	waitCalls(t, gen, words[0].ID, 1)
	gen.Resolve(words[0].ID)
	waitNotify(t, notify)

	// Nothing awaited: retry means restart-the-session, not re-issue.
	if c.Retry() {
		t.Error("Retry returned true with no blocked key")
	}
}

func TestCache_ShutdownDiscardsLateResults(t *testing.T) {
	c, gen, _, words := newTestCache(2)
	waitCalls(t, gen, words[0].ID, 1)

	c.Shutdown()
	c.Shutdown() // idempotent

	if c.State() != StateDone {
		t.Fatalf("State = %d, want StateDone", c.State())
	}

	// A result arriving after shutdown must not be applied.
	gen.Resolve(words[0].ID)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Content(words[0].ID); ok {
		t.Error("late result applied after shutdown")
	}
	if c.State() != StateDone {
		t.Errorf("State = %d, want StateDone", c.State())
	}
}

func TestCache_FailedLookaheadSurfacesOnAwait(t *testing.T) {
	c, gen, notify, words := newTestCache(3)
	waitCalls(t, gen, words[0].ID, 1)
	gen.Resolve(words[0].ID)
	waitNotify(t, notify)
	waitCalls(t, gen, words[1].ID, 1)

	gen.Fail(words[1].ID, errors.New("timeout"))
	waitNotify(t, notify)
	if c.State() != StateError {
		t.Fatalf("State = %d, want StateError", c.State())
	}

	_, st := c.Await(words[1].ID)
	if st != StatusFailed {
		t.Errorf("Await status = %d, want StatusFailed", st)
	}
	if c.Err() != "timeout" {
		t.Errorf("Err = %q, want timeout", c.Err())
	}
}
