package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LevelEvent records a difficulty level transition, adaptive or manual.
type LevelEvent struct {
	ent.Schema
}

func (LevelEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LevelEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Empty for manual overrides outside a session"),
		field.Int("from_level"),
		field.Int("to_level"),
		field.String("trigger").
			NotEmpty().
			Comment("adaptive or manual"),
	}
}
