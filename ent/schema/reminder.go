// ent/schema/reminder.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reminder holds the schema definition for the Reminder entity.
type Reminder struct {
	ent.Schema
}

// Fields of the Reminder.
func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_id").
			Comment("Task this reminder belongs to"),

		field.Time("remind_at").
			Comment("When the reminder should fire"),

		field.Enum("method").
			Values("app_push", "email", "calendar").
			Default("app_push").
			Comment("Delivery channel for the reminder"),

		field.Enum("status").
			Values("scheduled", "sent", "cancelled").
			Default("scheduled").
			Comment("Delivery state of the reminder"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the reminder was created"),
	}
}

// Edges of the Reminder.
func (Reminder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("reminders").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the Reminder.
func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("status", "remind_at"),
	}
}
