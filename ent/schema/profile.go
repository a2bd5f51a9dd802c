package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile holds the local player identity. There is at most one row;
// the display name is the only thing the app ever asks for.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_name").
			NotEmpty().
			Comment("Name shown in greetings and share messages"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the profile was first created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the display name was last changed"),
	}
}
