package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResult records the outcome of one finished quiz run. Unlike
// PartCompletion this keeps every attempt, so stats can show history
// for parts played more than once.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("category").
			NotEmpty().
			Comment("Exam category name"),
		field.String("level").
			NotEmpty().
			Comment("Basic, Medium, or Advanced"),
		field.Int("part").
			Positive().
			Comment("Part number within the level, 1-based"),
		field.Int("score").
			Min(0).
			Comment("Correct answers"),
		field.Int("total").
			Positive().
			Comment("Questions in the run"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock time from first question to finish"),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("category", "level", "part"),
	}
}
