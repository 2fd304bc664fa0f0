// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lexiz/ent/answerevent"
	"github.com/abhisek/lexiz/ent/appevent"
	"github.com/abhisek/lexiz/ent/llmrequestevent"
	"github.com/abhisek/lexiz/ent/schema"
	"github.com/abhisek/lexiz/ent/sessionevent"
	"github.com/abhisek/lexiz/ent/snapshot"
	"github.com/abhisek/lexiz/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescWordID is the schema descriptor for word_id field.
	answereventDescWordID := answereventFields[1].Descriptor()
	// answerevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	answerevent.WordIDValidator = answereventDescWordID.Validators[0].(func(string) error)
	// answereventDescQuizType is the schema descriptor for quiz_type field.
	answereventDescQuizType := answereventFields[2].Descriptor()
	// answerevent.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	answerevent.QuizTypeValidator = answereventDescQuizType.Validators[0].(func(string) error)
	// answereventDescOutcome is the schema descriptor for outcome field.
	answereventDescOutcome := answereventFields[3].Descriptor()
	// answerevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	answerevent.OutcomeValidator = answereventDescOutcome.Validators[0].(func(string) error)
	// answereventDescAttempts is the schema descriptor for attempts field.
	answereventDescAttempts := answereventFields[4].Descriptor()
	// answerevent.DefaultAttempts holds the default value on creation for the attempts field.
	answerevent.DefaultAttempts = answereventDescAttempts.Default.(int)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[6].Descriptor()
	// answerevent.DefaultExpectedAnswer holds the default value on creation for the expected_answer field.
	answerevent.DefaultExpectedAnswer = answereventDescExpectedAnswer.Default.(string)
	// answereventDescScoreDelta is the schema descriptor for score_delta field.
	answereventDescScoreDelta := answereventFields[7].Descriptor()
	// answerevent.DefaultScoreDelta holds the default value on creation for the score_delta field.
	answerevent.DefaultScoreDelta = answereventDescScoreDelta.Default.(int)
	appeventMixin := schema.AppEvent{}.Mixin()
	appeventMixinFields0 := appeventMixin[0].Fields()
	_ = appeventMixinFields0
	appeventFields := schema.AppEvent{}.Fields()
	_ = appeventFields
	// appeventDescTimestamp is the schema descriptor for timestamp field.
	appeventDescTimestamp := appeventMixinFields0[1].Descriptor()
	// appevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	appevent.DefaultTimestamp = appeventDescTimestamp.Default.(func() time.Time)
	// appeventDescName is the schema descriptor for name field.
	appeventDescName := appeventFields[0].Descriptor()
	// appevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	appevent.NameValidator = appeventDescName.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescQuizType is the schema descriptor for quiz_type field.
	sessioneventDescQuizType := sessioneventFields[1].Descriptor()
	// sessionevent.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	sessionevent.QuizTypeValidator = sessioneventDescQuizType.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescTotalPlayed is the schema descriptor for total_played field.
	sessioneventDescTotalPlayed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotalPlayed holds the default value on creation for the total_played field.
	sessionevent.DefaultTotalPlayed = sessioneventDescTotalPlayed.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(float64)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(float64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescWordID is the schema descriptor for word_id field.
	wordDescWordID := wordFields[0].Descriptor()
	// word.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	word.WordIDValidator = wordDescWordID.Validators[0].(func(string) error)
	// wordDescText is the schema descriptor for text field.
	wordDescText := wordFields[1].Descriptor()
	// word.TextValidator is a validator for the "text" field. It is called by the builders before save.
	word.TextValidator = wordDescText.Validators[0].(func(string) error)
	// wordDescTranslation is the schema descriptor for translation field.
	wordDescTranslation := wordFields[2].Descriptor()
	// word.TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	word.TranslationValidator = wordDescTranslation.Validators[0].(func(string) error)
	// wordDescLanguageCode is the schema descriptor for language_code field.
	wordDescLanguageCode := wordFields[3].Descriptor()
	// word.LanguageCodeValidator is a validator for the "language_code" field. It is called by the builders before save.
	word.LanguageCodeValidator = wordDescLanguageCode.Validators[0].(func(string) error)
	// wordDescTier is the schema descriptor for tier field.
	wordDescTier := wordFields[4].Descriptor()
	// word.DefaultTier holds the default value on creation for the tier field.
	word.DefaultTier = wordDescTier.Default.(string)
	// wordDescScore is the schema descriptor for score field.
	wordDescScore := wordFields[5].Descriptor()
	// word.DefaultScore holds the default value on creation for the score field.
	word.DefaultScore = wordDescScore.Default.(int)
	// wordDescCreatedAt is the schema descriptor for created_at field.
	wordDescCreatedAt := wordFields[6].Descriptor()
	// word.DefaultCreatedAt holds the default value on creation for the created_at field.
	word.DefaultCreatedAt = wordDescCreatedAt.Default.(func() time.Time)
	// wordDescUpdatedAt is the schema descriptor for updated_at field.
	wordDescUpdatedAt := wordFields[7].Descriptor()
	// word.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	word.DefaultUpdatedAt = wordDescUpdatedAt.Default.(func() time.Time)
	// word.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	word.UpdateDefaultUpdatedAt = wordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
