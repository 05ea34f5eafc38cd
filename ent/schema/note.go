// ent/schema/note.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note holds the schema definition for the Note entity.
type Note struct {
	ent.Schema
}

// Fields of the Note.
func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id").
			Comment("Workspace this note belongs to"),

		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Note title"),

		field.Enum("source").
			Values("manual", "meeting", "import").
			Default("manual").
			Comment("How the note entered the system"),

		field.Text("content_md").
			Optional().
			Comment("Markdown body of the note"),

		field.Text("transcript_text").
			Optional().
			Nillable().
			Comment("Raw transcript, meeting notes only"),

		field.Text("summary_text").
			Optional().
			Nillable().
			Comment("Generated summary, meeting notes only"),

		field.JSON("entities", map[string]interface{}{}).
			Optional().
			Default(map[string]interface{}{}).
			Comment("Extracted entities (people, dates, decisions, risks)"),

		field.Int("created_by").
			Comment("User who created the note"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the note was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the note was last updated"),
	}
}

// Edges of the Note.
func (Note) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("notes").
			Field("workspace_id").
			Unique().
			Required(),

		edge.To("creator", User.Type).
			Field("created_by").
			Unique().
			Required(),
	}
}

// Indexes of the Note.
func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("source"),
		index.Fields("created_at"),
	}
}
