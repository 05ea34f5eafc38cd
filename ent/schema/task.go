// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace this task belongs to"),

		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Enum("status").
			Values("todo", "doing", "done").
			Default("todo").
			Comment("Current status of the task"),

		field.Enum("priority").
			Values("low", "med", "high").
			Default("med").
			Comment("Priority level of the task"),

		field.Time("due_at").
			Optional().
			Nillable().
			Comment("When the task should be completed"),

		field.Int("assignee_id").
			Optional().
			Nillable().
			Comment("User this task is assigned to"),

		field.Int("linked_note_id").
			Optional().
			Nillable().
			Comment("Note this task originated from"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("tasks").
			Field("workspace_id").
			Unique().
			Required(),

		edge.To("assignee", User.Type).
			Field("assignee_id").
			Unique(),

		edge.To("linked_note", Note.Type).
			Field("linked_note_id").
			Unique(),

		edge.To("reminders", Reminder.Type),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("status"),
		index.Fields("priority"),
		index.Fields("status", "priority"),
		index.Fields("created_at"),
	}
}
