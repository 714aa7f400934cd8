package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AttemptEvent records one graded exercise attempt, either a
// subject/predicate selection or a diagram placement.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("mode").
			NotEmpty().
			Comment("select or diagram"),
		field.String("exercise_id").
			NotEmpty().
			Comment("Sentence or diagram exercise identifier"),
		field.String("sentence").
			Comment("The sentence shown"),
		field.Float("subject_score").
			Default(0).
			Comment("Subject IoU for select mode, 0 or 1 for diagram mode"),
		field.Float("predicate_score").
			Default(0).
			Comment("Predicate IoU for select mode, 0 or 1 for diagram mode"),
		field.Bool("correct").
			Comment("Whether the attempt passed"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Int("level").
			Comment("Difficulty level when the attempt was made"),
	}
}
