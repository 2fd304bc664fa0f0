package quiz

import "github.com/abhisek/lexiz/internal/contentgen"

// Mode selects the quiz flavor for a session.
type Mode string

const (
	// ModeChoice shows a word and four candidate translations.
	ModeChoice Mode = "choice"

	// ModeSpelling shows a translation and the learner types the word.
	ModeSpelling Mode = "spelling"

	// ModeStory is an AI fill-in-the-blank story with four choices.
	ModeStory Mode = "story"

	// ModeCloze is an AI cloze sentence the learner types the word into.
	ModeCloze Mode = "cloze"
)

// ModeSpec describes how a mode behaves. Variant behavior lives here as
// data; there is exactly one controller for all modes.
type ModeSpec struct {
	// NeedsContent is true for modes whose items must be generated by
	// the content pipeline before they can be shown.
	NeedsContent bool

	// ContentKind is the generation flavor, for modes that need content.
	ContentKind contentgen.Kind

	// MaxAttempts is how many submissions a word allows before it
	// counts as exhausted. Choice-style modes allow exactly one.
	MaxAttempts int

	// GradedRetries is true when a correct answer after retries earns a
	// reduced accuracy contribution (spelling-style modes). Choice-style
	// modes are binary.
	GradedRetries bool

	// NumChoices is the option count for choice-style modes, 0 otherwise.
	NumChoices int
}

// Spec returns the capability table entry for m.
func (m Mode) Spec() ModeSpec {
	switch m {
	case ModeChoice:
		return ModeSpec{MaxAttempts: 1, NumChoices: 4}
	case ModeSpelling:
		return ModeSpec{MaxAttempts: 3, GradedRetries: true}
	case ModeStory:
		return ModeSpec{NeedsContent: true, ContentKind: contentgen.KindStory, MaxAttempts: 1, NumChoices: 4}
	case ModeCloze:
		return ModeSpec{NeedsContent: true, ContentKind: contentgen.KindCloze, MaxAttempts: 3, GradedRetries: true}
	}
	return ModeSpec{}
}

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeChoice, ModeSpelling, ModeStory, ModeCloze:
		return true
	}
	return false
}

// Preset captures the caller's choices for one session. Immutable once
// a session starts; Restart reuses it verbatim.
type Preset struct {
	// WordCount is how many words the session plays.
	WordCount int

	// HardOnly restricts the pool to needs_review words.
	HardOnly bool

	// Language filters candidates by language code. Empty means all.
	Language string

	// Mode is the quiz flavor.
	Mode Mode
}
