// Package prefetch keeps generated quiz content ready one word ahead of
// the word currently shown. One background generation runs at a time;
// results arrive asynchronously and are applied to the session state only
// when they are still relevant (stale results are cached but cause no
// state transition).
package prefetch

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/word"
)

// State is the session-level pipeline state.
type State int

const (
	// StateIdle is the state before Start.
	StateIdle State = iota

	// StateGeneratingFirst means the opening item's content is being
	// generated and nothing can be shown yet.
	StateGeneratingFirst

	// StateReady means content for the current word is available.
	StateReady

	// StatePrefetching means the controller advanced to a word whose
	// content has not resolved yet; the caller shows a waiting state.
	StatePrefetching

	// StateError means a generation failed; Retry or a session restart
	// is needed before any further lookahead happens.
	StateError

	// StateDone means the session ended and the cache is defunct.
	StateDone
)

// Status is the per-entry generation status.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

// Cache is the one-ahead content cache for a single quiz session.
// Entries are keyed by word identity, never by position, so removing a
// word from the remaining queue cannot misattribute content.
type Cache struct {
	mu     sync.Mutex
	gen    contentgen.Generator
	kind   contentgen.Kind
	notify func()

	ctx    context.Context
	cancel context.CancelFunc

	words   []word.Word
	index   map[word.ID]int
	entries map[word.ID]*entry

	state   State
	awaited word.ID // key the controller is blocked on, "" if none
	errMsg  string
}

type entry struct {
	status   Status
	content  *contentgen.Content
	err      error
	cancel   context.CancelFunc
	canceled bool
}

// New creates a Cache. notify is invoked (without internal locks held)
// whenever the session state changes from a background resolution; it may
// be nil for polling callers.
func New(gen contentgen.Generator, kind contentgen.Kind, notify func()) *Cache {
	return &Cache{
		gen:     gen,
		kind:    kind,
		notify:  notify,
		state:   StateIdle,
		index:   make(map[word.ID]int),
		entries: make(map[word.ID]*entry),
	}
}

// Start begins the pipeline for the session's fixed word order:
// generation for words[0] is issued immediately and the state moves to
// StateGeneratingFirst. Restarting a session means discarding the whole
// cache and calling Start on a fresh one.
func (c *Cache) Start(ctx context.Context, words []word.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle || len(words) == 0 {
		return
	}

	c.ctx, c.cancel = context.WithCancel(ctx)
	c.words = words
	for i, w := range words {
		c.index[w.ID] = i
	}

	c.state = StateGeneratingFirst
	c.awaited = words[0].ID
	c.launch(words[0])
}

// State returns the current pipeline state.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the message of the generation failure that moved the cache
// to StateError, or "" outside that state.
func (c *Cache) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateError {
		return ""
	}
	return c.errMsg
}

// Content returns the cached content for id if it resolved.
func (c *Cache) Content(id word.ID) (*contentgen.Content, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entries[id]
	if e == nil || e.status != StatusReady {
		return nil, false
	}
	return e.content, true
}

// Await marks id as the word the controller needs now and returns its
// content if already cached. When the content is still pending the state
// moves to StatePrefetching and the caller waits for notify/polling.
// When it is ready, lookahead for the following word is scheduled.
func (c *Cache) Await(id word.ID) (*contentgen.Content, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDone {
		return nil, StatusFailed
	}

	e := c.entries[id]
	switch {
	case e == nil:
		// Lookahead never reached this key (e.g. it was suspended by an
		// error that has since been retried past). Issue it now.
		c.awaited = id
		if c.state != StateGeneratingFirst {
			c.state = StatePrefetching
		}
		c.launch(c.words[c.index[id]])
		return nil, StatusPending

	case e.status == StatusPending:
		c.awaited = id
		if c.state != StateGeneratingFirst {
			c.state = StatePrefetching
		}
		return nil, StatusPending

	case e.status == StatusFailed:
		c.awaited = id
		c.state = StateError
		c.errMsg = e.err.Error()
		return nil, StatusFailed

	default:
		c.awaited = ""
		c.state = StateReady
		c.scheduleAfter(id)
		return e.content, StatusReady
	}
}

// Retry re-issues generation for the key the controller is blocked on.
// It returns false when no specific key is awaited; the caller should
// treat that as "abandon and restart the whole session".
func (c *Cache) Retry() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDone || c.awaited == "" {
		return false
	}

	// Cancel the existing attempt, if any, and forget it so its eventual
	// result is discarded.
	if e := c.entries[c.awaited]; e != nil {
		e.canceled = true
		if e.cancel != nil {
			e.cancel()
		}
		delete(c.entries, c.awaited)
	}

	if c.index[c.awaited] == 0 {
		c.state = StateGeneratingFirst
	} else {
		c.state = StatePrefetching
	}
	c.errMsg = ""
	c.launch(c.words[c.index[c.awaited]])
	return true
}

// Shutdown cancels all outstanding generation and makes the cache inert.
// Safe to call more than once.
func (c *Cache) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDone {
		return
	}
	for _, e := range c.entries {
		e.canceled = true
		if e.cancel != nil {
			e.cancel()
		}
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.state = StateDone
	c.awaited = ""
}

// launch starts background generation for w unless an entry for it
// already exists (a pending entry means a generation is in flight and a
// second request for the same key must be ignored).
// Callers must hold c.mu.
func (c *Cache) launch(w word.Word) {
	if _, exists := c.entries[w.ID]; exists {
		return
	}

	genCtx, genCancel := context.WithCancel(c.ctx)
	e := &entry{status: StatusPending, cancel: genCancel}
	c.entries[w.ID] = e

	go func() {
		content, err := c.gen.Generate(genCtx, contentgen.GenerateInput{Word: w, Kind: c.kind})
		c.resolve(w.ID, e, content, err)
	}()
}

// scheduleAfter issues lookahead for the word following id, keeping
// generation exactly one ahead of the controller.
// Callers must hold c.mu.
func (c *Cache) scheduleAfter(id word.ID) {
	pos, ok := c.index[id]
	if !ok || pos+1 >= len(c.words) {
		return
	}
	c.launch(c.words[pos+1])
}

// resolve applies a finished generation. The result is stored for later
// reuse regardless of session position, but the session state only
// transitions when id is the key the controller is blocked on; anything
// else resolves silently. Canceled attempts are discarded outright.
func (c *Cache) resolve(id word.ID, e *entry, content *contentgen.Content, err error) {
	c.mu.Lock()

	// Discard results from canceled or replaced attempts.
	if c.entries[id] != e || e.canceled || c.state == StateDone {
		c.mu.Unlock()
		return
	}
	if errors.Is(err, context.Canceled) {
		c.mu.Unlock()
		return
	}

	changed := false

	if err != nil {
		e.status = StatusFailed
		e.err = err
		// A live generation failure suspends lookahead until Retry,
		// wherever the controller currently is.
		c.state = StateError
		c.errMsg = err.Error()
		changed = true
	} else {
		e.status = StatusReady
		e.content = content
		if id == c.awaited {
			c.awaited = ""
			c.state = StateReady
			c.scheduleAfter(id)
			changed = true
		}
	}

	notify := c.notify
	c.mu.Unlock()

	if changed && notify != nil {
		notify()
	}
}
