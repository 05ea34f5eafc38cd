// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("display_name").
			NotEmpty().
			MaxLen(100).
			Comment("Name shown in the UI"),

		field.String("timezone").
			Default("UTC").
			Comment("IANA timezone name"),

		field.Enum("llm_provider").
			Values("openai", "anthropic", "google").
			Default("openai").
			Comment("LLM provider the user's agents run against"),

		field.String("llm_model").
			Default("gpt-4o-mini").
			Comment("Model identifier within the provider"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("workspaces", Workspace.Type),
	}
}
