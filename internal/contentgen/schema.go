package contentgen

import "github.com/abhisek/lexiz/internal/llm"

// ContentSchema defines the JSON schema for LLM content generation
// responses. Story and cloze requests share it; cloze responses carry
// an empty choices array.
var ContentSchema = &llm.Schema{
	Name:        "quiz-content",
	Description: "A fill-in-the-blank passage for one vocabulary word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passage": map[string]any{
				"type":        "string",
				"description": "The story or sentence in the target language, containing the placeholder ____ exactly once",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for story content, one of which is the answer. Empty array for cloze content.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The word form that fills the blank",
			},
			"translation": map[string]any{
				"type":        "string",
				"description": "English translation of the passage with the blank filled in",
			},
		},
		"required":             []any{"passage", "choices", "answer", "translation"},
		"additionalProperties": false,
	},
}
