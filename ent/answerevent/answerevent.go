// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldWordID holds the string denoting the word_id field in the database.
	FieldWordID = "word_id"
	// FieldQuizType holds the string denoting the quiz_type field in the database.
	FieldQuizType = "quiz_type"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldLearnerAnswer holds the string denoting the learner_answer field in the database.
	FieldLearnerAnswer = "learner_answer"
	// FieldExpectedAnswer holds the string denoting the expected_answer field in the database.
	FieldExpectedAnswer = "expected_answer"
	// FieldScoreDelta holds the string denoting the score_delta field in the database.
	FieldScoreDelta = "score_delta"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldWordID,
	FieldQuizType,
	FieldOutcome,
	FieldAttempts,
	FieldLearnerAnswer,
	FieldExpectedAnswer,
	FieldScoreDelta,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	WordIDValidator func(string) error
	// QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	QuizTypeValidator func(string) error
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultLearnerAnswer holds the default value on creation for the "learner_answer" field.
	DefaultLearnerAnswer string
	// DefaultExpectedAnswer holds the default value on creation for the "expected_answer" field.
	DefaultExpectedAnswer string
	// DefaultScoreDelta holds the default value on creation for the "score_delta" field.
	DefaultScoreDelta int
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByWordID orders the results by the word_id field.
func ByWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordID, opts...).ToFunc()
}

// ByQuizType orders the results by the quiz_type field.
func ByQuizType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizType, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByLearnerAnswer orders the results by the learner_answer field.
func ByLearnerAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerAnswer, opts...).ToFunc()
}

// ByExpectedAnswer orders the results by the expected_answer field.
func ByExpectedAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAnswer, opts...).ToFunc()
}

// ByScoreDelta orders the results by the score_delta field.
func ByScoreDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreDelta, opts...).ToFunc()
}
