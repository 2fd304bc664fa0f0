package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is a vocabulary entry with its adaptive difficulty state.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("word_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable UUID used as the word identity across events"),
		field.String("text").
			NotEmpty().
			Comment("The word in the target language"),
		field.String("translation").
			NotEmpty().
			Comment("English translation"),
		field.String("language_code").
			NotEmpty().
			Comment("ISO 639-1 code of the target language"),
		field.String("tier").
			Default("new").
			Comment("Difficulty tier: new, in_progress, needs_review, mastered"),
		field.Int("score").
			Default(0).
			Comment("Accumulated raw difficulty score"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word_id"),
		index.Fields("language_code", "tier"),
		index.Fields("text", "language_code").Unique(),
	}
}
