package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PartCompletion records that a quiz part was finished at least once.
// The (category, level, part) triple is unique; repeat completions
// update nothing.
type PartCompletion struct {
	ent.Schema
}

func (PartCompletion) Fields() []ent.Field {
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
		field.Time("completed_at").
			Default(time.Now).
			Immutable().
			Comment("When the part was first completed"),
	}
}

func (PartCompletion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "level", "part").Unique(),
	}
}
