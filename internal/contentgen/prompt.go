package contentgen

import (
	"fmt"
	"strings"
)

const storySystemPrompt = `You are a language tutor writing short practice texts for vocabulary learners.

Rules:
- Write a short story of 2-3 sentences in the learner's target language, built around the given word.
- Replace exactly one occurrence of the word with the placeholder ____ (four underscores). The placeholder must appear exactly once.
- The story must make the blank unambiguous: only the target word fits naturally.
- Provide exactly 4 choices. One is the target word; the three distractors are real words of the same part of speech that do NOT fit the blank.
- Keep the language simple enough that the surrounding words are easier than the target word.
- Provide an English translation of the full story with the word filled in.`

const clozeSystemPrompt = `You are a language tutor writing cloze sentences for vocabulary learners.

Rules:
- Write a single sentence in the learner's target language using the given word.
- Replace the word with the placeholder ____ (four underscores). The placeholder must appear exactly once.
- The sentence must give enough context that the target word is the natural fill.
- Set the answer to the exact word form that fills the blank (use the dictionary form given).
- Leave the choices array empty: the learner types the answer.
- Provide an English translation of the full sentence with the word filled in.`

// buildUserMessage constructs the user message for one generation request.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", input.Word.Text)
	if input.Word.Translation != "" {
		fmt.Fprintf(&b, "Meaning: %s\n", input.Word.Translation)
	}
	fmt.Fprintf(&b, "Language: %s\n", languageName(input.Word.LanguageCode))

	return b.String()
}

// languageName expands common ISO 639-1 codes for the prompt; unknown
// codes pass through unchanged (the models handle codes fine, names are
// just less error-prone).
func languageName(code string) string {
	names := map[string]string{
		"de": "German",
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"it": "Italian",
		"ja": "Japanese",
		"ko": "Korean",
		"nl": "Dutch",
		"pt": "Portuguese",
		"ru": "Russian",
		"zh": "Chinese",
	}
	if n, ok := names[code]; ok {
		return n
	}
	return code
}
