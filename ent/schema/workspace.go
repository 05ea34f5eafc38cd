// ent/schema/workspace.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace holds the schema definition for the Workspace entity.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.Int("owner_id").
			Comment("User who owns this workspace"),

		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Workspace display name"),

		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Default(map[string]interface{}{}).
			Comment("Arbitrary per-workspace settings"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the workspace was created"),
	}
}

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("workspaces").
			Field("owner_id").
			Unique().
			Required(),

		edge.To("notes", Note.Type),
		edge.To("tasks", Task.Type),
		edge.To("agent_events", AgentEvent.Type),
	}
}

// Indexes of the Workspace.
func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
