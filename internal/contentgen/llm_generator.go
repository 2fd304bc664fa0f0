package contentgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// contentOutput is the raw LLM response before validation.
type contentOutput struct {
	Passage     string   `json:"passage"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Translation string   `json:"translation"`
}

// Generate produces content for one word.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Content, error) {
	system := clozeSystemPrompt
	purpose := "cloze-gen"
	if input.Kind == KindStory {
		system = storySystemPrompt
		purpose = "story-gen"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ContentSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("content generation: %w", err)
	}

	var raw contentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse content response: %w", err)
	}

	c := &Content{
		WordID:      input.Word.ID,
		Kind:        input.Kind,
		Passage:     raw.Passage,
		Choices:     raw.Choices,
		Answer:      raw.Answer,
		Translation: raw.Translation,
	}

	if err := validateContent(c, input); err != nil {
		return nil, err
	}

	return c, nil
}

// validateContent enforces structural rules the schema cannot express.
func validateContent(c *Content, input GenerateInput) error {
	if strings.Count(c.Passage, BlankMarker) != 1 {
		return fmt.Errorf("passage must contain exactly one %q placeholder", BlankMarker)
	}
	if c.Answer == "" {
		return fmt.Errorf("empty answer in generated content")
	}

	switch input.Kind {
	case KindStory:
		if len(c.Choices) != 4 {
			return fmt.Errorf("story content needs exactly 4 choices, got %d", len(c.Choices))
		}
		found := false
		for _, choice := range c.Choices {
			if strings.EqualFold(choice, c.Answer) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("answer %q is not among the choices", c.Answer)
		}
	case KindCloze:
		// The answer must be recognizable as the target word so exact
		// string matching of typed answers stays fair.
		if !strings.EqualFold(c.Answer, input.Word.Text) {
			return fmt.Errorf("cloze answer %q does not match target word %q", c.Answer, input.Word.Text)
		}
	}

	return nil
}
