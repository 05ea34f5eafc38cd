// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentEventsColumns holds the columns for the "agent_events" table.
	AgentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "awaiting_confirmation", "executed", "error"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// AgentEventsTable holds the schema information for the "agent_events" table.
	AgentEventsTable = &schema.Table{
		Name:       "agent_events",
		Columns:    AgentEventsColumns,
		PrimaryKey: []*schema.Column{AgentEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_events_workspaces_agent_events",
				Columns:    []*schema.Column{AgentEventsColumns[7]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentevent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[5]},
			},
			{
				Name:    "agentevent_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[7], AgentEventsColumns[5]},
			},
			{
				Name:    "agentevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[6]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"manual", "meeting", "import"}, Default: "manual"},
		{Name: "content_md", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transcript_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeInt},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notes_users_creator",
				Columns:    []*schema.Column{NotesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "notes_workspaces_notes",
				Columns:    []*schema.Column{NotesColumns[10]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "note_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[10]},
			},
			{
				Name:    "note_source",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[2]},
			},
			{
				Name:    "note_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[7]},
			},
		},
	}
	// RemindersColumns holds the columns for the "reminders" table.
	RemindersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "remind_at", Type: field.TypeTime},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"app_push", "email", "calendar"}, Default: "app_push"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "sent", "cancelled"}, Default: "scheduled"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeInt},
	}
	// RemindersTable holds the schema information for the "reminders" table.
	RemindersTable = &schema.Table{
		Name:       "reminders",
		Columns:    RemindersColumns,
		PrimaryKey: []*schema.Column{RemindersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reminders_tasks_reminders",
				Columns:    []*schema.Column{RemindersColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reminder_task_id",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[5]},
			},
			{
				Name:    "reminder_status_remind_at",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[3], RemindersColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"todo", "doing", "done"}, Default: "todo"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "med", "high"}, Default: "med"},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assignee_id", Type: field.TypeInt, Nullable: true},
		{Name: "linked_note_id", Type: field.TypeInt, Nullable: true},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_users_assignee",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_notes_linked_note",
				Columns:    []*schema.Column{TasksColumns[9]},
				RefColumns: []*schema.Column{NotesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_workspaces_tasks",
				Columns:    []*schema.Column{TasksColumns[10]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_priority",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_status_priority",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[4]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Size: 100},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "llm_provider", Type: field.TypeEnum, Enums: []string{"openai", "anthropic", "google"}, Default: "openai"},
		{Name: "llm_model", Type: field.TypeString, Default: "gpt-4o-mini"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workspaces_users_workspaces",
				Columns:    []*schema.Column{WorkspacesColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_owner_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentEventsTable,
		NotesTable,
		RemindersTable,
		TasksTable,
		UsersTable,
		WorkspacesTable,
	}
)

func init() {
	AgentEventsTable.ForeignKeys[0].RefTable = WorkspacesTable
	NotesTable.ForeignKeys[0].RefTable = UsersTable
	NotesTable.ForeignKeys[1].RefTable = WorkspacesTable
	RemindersTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[1].RefTable = NotesTable
	TasksTable.ForeignKeys[2].RefTable = WorkspacesTable
	WorkspacesTable.ForeignKeys[0].RefTable = UsersTable
}
