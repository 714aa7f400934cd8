package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SessionEvent records the start or end of a practice sitting.
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
			Comment("UUID of the sitting"),
		field.String("action").
			NotEmpty().
			Comment("started or ended"),
		field.Int("questions_served").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("duration_secs").
			Default(0),
		field.Int("start_level").
			Default(1),
		field.Int("end_level").
			Default(1),
	}
}
