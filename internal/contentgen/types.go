package contentgen

import "github.com/abhisek/lexiz/internal/word"

// BlankMarker is the placeholder the generated passage uses for the
// target word. The UI renders it as a gap to fill.
const BlankMarker = "____"

// Kind selects the flavor of generated content.
type Kind string

const (
	// KindStory is a short fill-in-the-blank story with choices.
	KindStory Kind = "story"

	// KindCloze is a single sentence with a blank the learner types into.
	KindCloze Kind = "cloze"
)

// Content is one generated quiz item, ready for display.
type Content struct {
	// WordID is the word this content was generated for.
	WordID word.ID

	// Kind is the content flavor.
	Kind Kind

	// Passage is the story or sentence, containing exactly one BlankMarker
	// where the target word belongs. Written in the word's language.
	Passage string

	// Choices holds exactly 4 options for story content, one of which is
	// Answer. Empty for cloze content (the learner types the word).
	Choices []string

	// Answer is the word form that fills the blank.
	Answer string

	// Translation is an English rendering of the passage, shown after
	// the learner answers.
	Translation string
}

// GenerateInput holds all context needed to generate content for one word.
type GenerateInput struct {
	// Word is the target vocabulary entry.
	Word word.Word

	// Kind selects story or cloze generation.
	Kind Kind
}
