package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single settled word within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("word_id").
			NotEmpty().
			Comment("Word this item was for"),
		field.String("quiz_type").
			NotEmpty(),
		field.String("outcome").
			NotEmpty().
			Comment("correct, exhausted or skipped"),
		field.Int("attempts").
			Default(0).
			Comment("Submissions used before the word settled"),
		field.String("learner_answer").
			Default("").
			Comment("Last submission, empty on skip"),
		field.String("expected_answer").
			Default(""),
		field.Int("score_delta").
			Default(0).
			Comment("Accumulated score change across the word's attempts"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_id"),
		index.Fields("outcome"),
	}
}
