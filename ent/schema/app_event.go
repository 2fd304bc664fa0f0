package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AppEvent is a free-form analytics event (session start, persist
// failures, feature usage).
type AppEvent struct {
	ent.Schema
}

func (AppEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AppEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Event name, e.g. quiz_started, persist_error"),
		field.JSON("params", map[string]any{}).
			Optional(),
	}
}

func (AppEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
