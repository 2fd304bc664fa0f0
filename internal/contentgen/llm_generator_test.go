package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/word"
)

func testWord() word.Word {
	return word.Word{
		ID:           "w-hund",
		Text:         "Hund",
		Translation:  "dog",
		LanguageCode: "de",
	}
}

func validStoryJSON() json.RawMessage {
	return json.RawMessage(`{
		"passage": "Der kleine ____ bellte den ganzen Tag im Garten.",
		"choices": ["Hund", "Katze", "Vogel", "Fisch"],
		"answer": "Hund",
		"translation": "The little dog barked in the garden all day."
	}`)
}

func validClozeJSON() json.RawMessage {
	return json.RawMessage(`{
		"passage": "Mein ____ schläft gern auf dem Sofa.",
		"choices": [],
		"answer": "Hund",
		"translation": "My dog likes sleeping on the sofa."
	}`)
}

func TestGenerate_Story(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validStoryJSON(),
	})
	gen := New(mock, DefaultConfig())

	c, err := gen.Generate(context.Background(), GenerateInput{
		Word: testWord(),
		Kind: KindStory,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.WordID != "w-hund" {
		t.Errorf("expected word ID w-hund, got %q", c.WordID)
	}
	if c.Kind != KindStory {
		t.Errorf("expected story kind, got %q", c.Kind)
	}
	if !strings.Contains(c.Passage, BlankMarker) {
		t.Errorf("passage lost the blank marker: %q", c.Passage)
	}
	if len(c.Choices) != 4 {
		t.Errorf("expected 4 choices, got %d", len(c.Choices))
	}
	if c.Answer != "Hund" {
		t.Errorf("expected answer Hund, got %q", c.Answer)
	}
}

func TestGenerate_Cloze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validClozeJSON(),
	})
	gen := New(mock, DefaultConfig())

	c, err := gen.Generate(context.Background(), GenerateInput{
		Word: testWord(),
		Kind: KindCloze,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != KindCloze {
		t.Errorf("expected cloze kind, got %q", c.Kind)
	}
	if len(c.Choices) != 0 {
		t.Errorf("cloze content should have no choices, got %d", len(c.Choices))
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validStoryJSON()},
		llm.MockResponse{Content: validClozeJSON()},
	)
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), GenerateInput{Word: testWord(), Kind: KindStory}); err != nil {
		t.Fatalf("story: %v", err)
	}
	if _, err := gen.Generate(context.Background(), GenerateInput{Word: testWord(), Kind: KindCloze}); err != nil {
		t.Fatalf("cloze: %v", err)
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(mock.Calls))
	}
	if mock.Calls[0].System != storySystemPrompt {
		t.Errorf("story call used wrong system prompt")
	}
	if mock.Calls[1].System != clozeSystemPrompt {
		t.Errorf("cloze call used wrong system prompt")
	}
	for i, call := range mock.Calls {
		if call.Schema == nil {
			t.Errorf("call %d missing response schema", i)
		}
		if len(call.Messages) != 1 || !strings.Contains(call.Messages[0].Content, "Hund") {
			t.Errorf("call %d user message does not mention the target word", i)
		}
	}
}

func TestGenerate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		payload string
		wantErr string
	}{
		{
			name:    "no blank marker",
			kind:    KindCloze,
			payload: `{"passage": "Mein Hund schläft.", "choices": [], "answer": "Hund", "translation": "x"}`,
			wantErr: "placeholder",
		},
		{
			name:    "two blank markers",
			kind:    KindCloze,
			payload: `{"passage": "____ und ____.", "choices": [], "answer": "Hund", "translation": "x"}`,
			wantErr: "placeholder",
		},
		{
			name:    "empty answer",
			kind:    KindCloze,
			payload: `{"passage": "Mein ____ schläft.", "choices": [], "answer": "", "translation": "x"}`,
			wantErr: "empty answer",
		},
		{
			name:    "story with three choices",
			kind:    KindStory,
			payload: `{"passage": "Der ____ bellte.", "choices": ["Hund", "Katze", "Vogel"], "answer": "Hund", "translation": "x"}`,
			wantErr: "4 choices",
		},
		{
			name:    "story answer not among choices",
			kind:    KindStory,
			payload: `{"passage": "Der ____ bellte.", "choices": ["Katze", "Vogel", "Fisch", "Maus"], "answer": "Hund", "translation": "x"}`,
			wantErr: "not among the choices",
		},
		{
			name:    "cloze answer is a different word",
			kind:    KindCloze,
			payload: `{"passage": "Mein ____ schläft.", "choices": [], "answer": "Katze", "translation": "x"}`,
			wantErr: "does not match target word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.payload)})
			gen := New(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), GenerateInput{Word: testWord(), Kind: tt.kind})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	provErr := errors.New("model overloaded")
	mock := llm.NewMockProvider(llm.MockResponse{Err: provErr})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Word: testWord(), Kind: KindStory})
	if !errors.Is(err, provErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}
