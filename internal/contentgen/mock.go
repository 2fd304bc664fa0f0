package contentgen

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/lexiz/internal/word"
)

// MockGenerator is a deterministic Generator for testing.
//
// In instant mode (the default) every call returns canned content
// immediately. In blocking mode each call parks until the test releases
// it with Resolve or Fail, which is how prefetch ordering, stale-result
// and cancellation behavior get exercised.
type MockGenerator struct {
	mu       sync.Mutex
	blocking bool
	pending  map[word.ID]chan mockResult
	failWith error
	Calls    []GenerateInput
}

type mockResult struct {
	content *Content
	err     error
}

// NewMockGenerator creates an instant-mode mock.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{pending: make(map[word.ID]chan mockResult)}
}

// NewBlockingMockGenerator creates a mock whose calls block until
// released by the test.
func NewBlockingMockGenerator() *MockGenerator {
	return &MockGenerator{
		blocking: true,
		pending:  make(map[word.ID]chan mockResult),
	}
}

// FailAll makes every subsequent instant-mode call return err.
func (m *MockGenerator) FailAll(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// Generate returns canned content, or blocks awaiting Resolve/Fail in
// blocking mode. Cancellation wins over a later release.
func (m *MockGenerator) Generate(ctx context.Context, input GenerateInput) (*Content, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, input)
	if !m.blocking {
		err := m.failWith
		m.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return CannedContent(input), nil
	}
	ch := make(chan mockResult, 1)
	m.pending[input.Word.ID] = ch
	m.mu.Unlock()

	select {
	case r := <-ch:
		return r.content, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolve releases the blocked call for id with canned content.
// It is a no-op if no call is pending for id.
func (m *MockGenerator) Resolve(id word.ID) {
	m.release(id, mockResult{content: CannedContent(m.inputFor(id))})
}

// Fail releases the blocked call for id with err.
func (m *MockGenerator) Fail(id word.ID, err error) {
	m.release(id, mockResult{err: err})
}

func (m *MockGenerator) release(id word.ID, r mockResult) {
	m.mu.Lock()
	ch, ok := m.pending[id]
	if ok {
		delete(m.pending, id)
	}
	m.mu.Unlock()
	if ok {
		ch <- r
	}
}

func (m *MockGenerator) inputFor(id word.ID) GenerateInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Calls) - 1; i >= 0; i-- {
		if m.Calls[i].Word.ID == id {
			return m.Calls[i]
		}
	}
	return GenerateInput{Word: word.Word{ID: id, Text: string(id)}}
}

// CallsFor returns how many Generate calls were made for id.
func (m *MockGenerator) CallsFor(id word.ID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c.Word.ID == id {
			n++
		}
	}
	return n
}

// Pending reports whether a blocked call is waiting for id.
func (m *MockGenerator) Pending(id word.ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[id]
	return ok
}

// CannedContent builds deterministic content for input's word.
func CannedContent(input GenerateInput) *Content {
	w := input.Word
	c := &Content{
		WordID:      w.ID,
		Kind:        input.Kind,
		Passage:     fmt.Sprintf("Heute habe ich das Wort %s gelernt.", BlankMarker),
		Answer:      w.Text,
		Translation: fmt.Sprintf("Today I learned the word %q.", w.Text),
	}
	if input.Kind == KindStory {
		c.Choices = []string{w.Text, "Haus", "Baum", "Wasser"}
	}
	return c
}
