package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one finished or abandoned quiz session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("quiz_type").
			NotEmpty().
			Comment("choice, spelling, story or cloze"),
		field.Int("score").
			Default(0).
			Comment("Final session score"),
		field.Int("correct_answers").
			Default(0),
		field.Int("total_played").
			Default(0).
			Comment("Settled words, including skips"),
		field.Float("duration_secs").
			Default(0),
		field.Float("accuracy").
			Default(0).
			Comment("Sum of per-word contributions over total played"),
		field.JSON("practiced_ids", []string{}).
			Optional().
			Comment("Word IDs in play order"),
		field.JSON("correct_ids", []string{}).
			Optional(),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_type"),
	}
}
