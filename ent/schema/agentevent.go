// ent/schema/agentevent.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentEvent holds the schema definition for proposed agent actions.
type AgentEvent struct {
	ent.Schema
}

// Fields of the AgentEvent.
func (AgentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace the proposal targets"),

		field.String("agent").
			NotEmpty().
			Comment("Identifier of the agent that made the proposal"),

		field.String("action").
			NotEmpty().
			Comment("Action the agent wants to perform"),

		field.JSON("input", map[string]interface{}{}).
			Comment("Proposed action parameters, stored verbatim"),

		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Outcome of the proposal, null until a transition writes it"),

		// "draft" is reserved for producer-side staging; ProposeAction
		// writes awaiting_confirmation directly.
		field.Enum("status").
			Values("draft", "awaiting_confirmation", "executed", "error").
			Default("draft").
			Comment("Lifecycle state of the proposal"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the proposal was created"),
	}
}

// Edges of the AgentEvent.
func (AgentEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("agent_events").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentEvent.
func (AgentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workspace_id", "status"),
		index.Fields("created_at"),
	}
}
