// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
	"github.com/workbenchlabs/workbench/ent/generated/reminder"
	"github.com/workbenchlabs/workbench/ent/generated/task"
	"github.com/workbenchlabs/workbench/ent/generated/user"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 6)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   agentevent.Table,
			Columns: agentevent.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeInt,
				Column: agentevent.FieldID,
			},
		},
		Type: "AgentEvent",
		Fields: map[string]*sqlgraph.FieldSpec{
			agentevent.FieldWorkspaceID: {Type: field.TypeInt, Column: agentevent.FieldWorkspaceID},
			agentevent.FieldAgent:       {Type: field.TypeString, Column: agentevent.FieldAgent},
			agentevent.FieldAction:      {Type: field.TypeString, Column: agentevent.FieldAction},
			agentevent.FieldInput:       {Type: field.TypeJSON, Column: agentevent.FieldInput},
			agentevent.FieldOutput:      {Type: field.TypeJSON, Column: agentevent.FieldOutput},
			agentevent.FieldStatus:      {Type: field.TypeEnum, Column: agentevent.FieldStatus},
			agentevent.FieldCreatedAt:   {Type: field.TypeTime, Column: agentevent.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   note.Table,
			Columns: note.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeInt,
				Column: note.FieldID,
			},
		},
		Type: "Note",
		Fields: map[string]*sqlgraph.FieldSpec{
			note.FieldWorkspaceID:    {Type: field.TypeInt, Column: note.FieldWorkspaceID},
			note.FieldTitle:          {Type: field.TypeString, Column: note.FieldTitle},
			note.FieldSource:         {Type: field.TypeEnum, Column: note.FieldSource},
			note.FieldContentMd:      {Type: field.TypeString, Column: note.FieldContentMd},
			note.FieldTranscriptText: {Type: field.TypeString, Column: note.FieldTranscriptText},
			note.FieldSummaryText:    {Type: field.TypeString, Column: note.FieldSummaryText},
			note.FieldEntities:       {Type: field.TypeJSON, Column: note.FieldEntities},
			note.FieldCreatedBy:      {Type: field.TypeInt, Column: note.FieldCreatedBy},
			note.FieldCreatedAt:      {Type: field.TypeTime, Column: note.FieldCreatedAt},
			note.FieldUpdatedAt:      {Type: field.TypeTime, Column: note.FieldUpdatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   reminder.Table,
			Columns: reminder.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeInt,
				Column: reminder.FieldID,
			},
		},
		Type: "Reminder",
		Fields: map[string]*sqlgraph.FieldSpec{
			reminder.FieldTaskID:    {Type: field.TypeInt, Column: reminder.FieldTaskID},
			reminder.FieldRemindAt:  {Type: field.TypeTime, Column: reminder.FieldRemindAt},
			reminder.FieldMethod:    {Type: field.TypeEnum, Column: reminder.FieldMethod},
			reminder.FieldStatus:    {Type: field.TypeEnum, Column: reminder.FieldStatus},
			reminder.FieldCreatedAt: {Type: field.TypeTime, Column: reminder.FieldCreatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeInt,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldWorkspaceID:  {Type: field.TypeInt, Column: task.FieldWorkspaceID},
			task.FieldTitle:        {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldDescription:  {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldStatus:       {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldPriority:     {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldDueAt:        {Type: field.TypeTime, Column: task.FieldDueAt},
			task.FieldAssigneeID:   {Type: field.TypeInt, Column: task.FieldAssigneeID},
			task.FieldLinkedNoteID: {Type: field.TypeInt, Column: task.FieldLinkedNoteID},
			task.FieldCreatedAt:    {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:    {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[4] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeInt,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldEmail:       {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldDisplayName: {Type: field.TypeString, Column: user.FieldDisplayName},
			user.FieldTimezone:    {Type: field.TypeString, Column: user.FieldTimezone},
			user.FieldLlmProvider: {Type: field.TypeEnum, Column: user.FieldLlmProvider},
			user.FieldLlmModel:    {Type: field.TypeString, Column: user.FieldLlmModel},
			user.FieldCreatedAt:   {Type: field.TypeTime, Column: user.FieldCreatedAt},
		},
	}
	graph.Nodes[5] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   workspace.Table,
			Columns: workspace.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeInt,
				Column: workspace.FieldID,
			},
		},
		Type: "Workspace",
		Fields: map[string]*sqlgraph.FieldSpec{
			workspace.FieldOwnerID:   {Type: field.TypeInt, Column: workspace.FieldOwnerID},
			workspace.FieldName:      {Type: field.TypeString, Column: workspace.FieldName},
			workspace.FieldSettings:  {Type: field.TypeJSON, Column: workspace.FieldSettings},
			workspace.FieldCreatedAt: {Type: field.TypeTime, Column: workspace.FieldCreatedAt},
		},
	}
	graph.MustAddE(
		"workspace",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentevent.WorkspaceTable,
			Columns: []string{agentevent.WorkspaceColumn},
			Bidi:    false,
		},
		"AgentEvent",
		"Workspace",
	)
	graph.MustAddE(
		"workspace",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   note.WorkspaceTable,
			Columns: []string{note.WorkspaceColumn},
			Bidi:    false,
		},
		"Note",
		"Workspace",
	)
	graph.MustAddE(
		"creator",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   note.CreatorTable,
			Columns: []string{note.CreatorColumn},
			Bidi:    false,
		},
		"Note",
		"User",
	)
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reminder.TaskTable,
			Columns: []string{reminder.TaskColumn},
			Bidi:    false,
		},
		"Reminder",
		"Task",
	)
	graph.MustAddE(
		"workspace",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.WorkspaceTable,
			Columns: []string{task.WorkspaceColumn},
			Bidi:    false,
		},
		"Task",
		"Workspace",
	)
	graph.MustAddE(
		"assignee",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"linked_note",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.LinkedNoteTable,
			Columns: []string{task.LinkedNoteColumn},
			Bidi:    false,
		},
		"Task",
		"Note",
	)
	graph.MustAddE(
		"reminders",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RemindersTable,
			Columns: []string{task.RemindersColumn},
			Bidi:    false,
		},
		"Task",
		"Reminder",
	)
	graph.MustAddE(
		"workspaces",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.WorkspacesTable,
			Columns: []string{user.WorkspacesColumn},
			Bidi:    false,
		},
		"User",
		"Workspace",
	)
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workspace.OwnerTable,
			Columns: []string{workspace.OwnerColumn},
			Bidi:    false,
		},
		"Workspace",
		"User",
	)
	graph.MustAddE(
		"notes",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
		},
		"Workspace",
		"Note",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
		},
		"Workspace",
		"Task",
	)
	graph.MustAddE(
		"agent_events",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
		},
		"Workspace",
		"AgentEvent",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (aeq *AgentEventQuery) addPredicate(pred func(s *sql.Selector)) {
	aeq.predicates = append(aeq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the AgentEventQuery builder.
func (aeq *AgentEventQuery) Filter() *AgentEventFilter {
	return &AgentEventFilter{config: aeq.config, predicateAdder: aeq}
}

// addPredicate implements the predicateAdder interface.
func (m *AgentEventMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the AgentEventMutation builder.
func (m *AgentEventMutation) Filter() *AgentEventFilter {
	return &AgentEventFilter{config: m.config, predicateAdder: m}
}

// AgentEventFilter provides a generic filtering capability at runtime for AgentEventQuery.
type AgentEventFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *AgentEventFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql int predicate on the id field.
func (f *AgentEventFilter) WhereID(p entql.IntP) {
	f.Where(p.Field(agentevent.FieldID))
}

// WhereWorkspaceID applies the entql int predicate on the workspace_id field.
func (f *AgentEventFilter) WhereWorkspaceID(p entql.IntP) {
	f.Where(p.Field(agentevent.FieldWorkspaceID))
}

// WhereAgent applies the entql string predicate on the agent field.
func (f *AgentEventFilter) WhereAgent(p entql.StringP) {
	f.Where(p.Field(agentevent.FieldAgent))
}

// WhereAction applies the entql string predicate on the action field.
func (f *AgentEventFilter) WhereAction(p entql.StringP) {
	f.Where(p.Field(agentevent.FieldAction))
}

// WhereInput applies the entql json.RawMessage predicate on the input field.
func (f *AgentEventFilter) WhereInput(p entql.BytesP) {
	f.Where(p.Field(agentevent.FieldInput))
}

// WhereOutput applies the entql json.RawMessage predicate on the output field.
func (f *AgentEventFilter) WhereOutput(p entql.BytesP) {
	f.Where(p.Field(agentevent.FieldOutput))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *AgentEventFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(agentevent.FieldStatus))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *AgentEventFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(agentevent.FieldCreatedAt))
}

// WhereHasWorkspace applies a predicate to check if query has an edge workspace.
func (f *AgentEventFilter) WhereHasWorkspace() {
	f.Where(entql.HasEdge("workspace"))
}

// WhereHasWorkspaceWith applies a predicate to check if query has an edge workspace with a given conditions (other predicates).
func (f *AgentEventFilter) WhereHasWorkspaceWith(preds ...predicate.Workspace) {
	f.Where(entql.HasEdgeWith("workspace", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (nq *NoteQuery) addPredicate(pred func(s *sql.Selector)) {
	nq.predicates = append(nq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the NoteQuery builder.
func (nq *NoteQuery) Filter() *NoteFilter {
	return &NoteFilter{config: nq.config, predicateAdder: nq}
}

// addPredicate implements the predicateAdder interface.
func (m *NoteMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the NoteMutation builder.
func (m *NoteMutation) Filter() *NoteFilter {
	return &NoteFilter{config: m.config, predicateAdder: m}
}

// NoteFilter provides a generic filtering capability at runtime for NoteQuery.
type NoteFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *NoteFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql int predicate on the id field.
func (f *NoteFilter) WhereID(p entql.IntP) {
	f.Where(p.Field(note.FieldID))
}

// WhereWorkspaceID applies the entql int predicate on the workspace_id field.
func (f *NoteFilter) WhereWorkspaceID(p entql.IntP) {
	f.Where(p.Field(note.FieldWorkspaceID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *NoteFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(note.FieldTitle))
}

// WhereSource applies the entql string predicate on the source field.
func (f *NoteFilter) WhereSource(p entql.StringP) {
	f.Where(p.Field(note.FieldSource))
}

// WhereContentMd applies the entql string predicate on the content_md field.
func (f *NoteFilter) WhereContentMd(p entql.StringP) {
	f.Where(p.Field(note.FieldContentMd))
}

// WhereTranscriptText applies the entql string predicate on the transcript_text field.
func (f *NoteFilter) WhereTranscriptText(p entql.StringP) {
	f.Where(p.Field(note.FieldTranscriptText))
}

// WhereSummaryText applies the entql string predicate on the summary_text field.
func (f *NoteFilter) WhereSummaryText(p entql.StringP) {
	f.Where(p.Field(note.FieldSummaryText))
}

// WhereEntities applies the entql json.RawMessage predicate on the entities field.
func (f *NoteFilter) WhereEntities(p entql.BytesP) {
	f.Where(p.Field(note.FieldEntities))
}

// WhereCreatedBy applies the entql int predicate on the created_by field.
func (f *NoteFilter) WhereCreatedBy(p entql.IntP) {
	f.Where(p.Field(note.FieldCreatedBy))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *NoteFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(note.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *NoteFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(note.FieldUpdatedAt))
}

// WhereHasWorkspace applies a predicate to check if query has an edge workspace.
func (f *NoteFilter) WhereHasWorkspace() {
	f.Where(entql.HasEdge("workspace"))
}

// WhereHasWorkspaceWith applies a predicate to check if query has an edge workspace with a given conditions (other predicates).
func (f *NoteFilter) WhereHasWorkspaceWith(preds ...predicate.Workspace) {
	f.Where(entql.HasEdgeWith("workspace", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCreator applies a predicate to check if query has an edge creator.
func (f *NoteFilter) WhereHasCreator() {
	f.Where(entql.HasEdge("creator"))
}

// WhereHasCreatorWith applies a predicate to check if query has an edge creator with a given conditions (other predicates).
func (f *NoteFilter) WhereHasCreatorWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("creator", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (rq *ReminderQuery) addPredicate(pred func(s *sql.Selector)) {
	rq.predicates = append(rq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ReminderQuery builder.
func (rq *ReminderQuery) Filter() *ReminderFilter {
	return &ReminderFilter{config: rq.config, predicateAdder: rq}
}

// addPredicate implements the predicateAdder interface.
func (m *ReminderMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ReminderMutation builder.
func (m *ReminderMutation) Filter() *ReminderFilter {
	return &ReminderFilter{config: m.config, predicateAdder: m}
}

// ReminderFilter provides a generic filtering capability at runtime for ReminderQuery.
type ReminderFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ReminderFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql int predicate on the id field.
func (f *ReminderFilter) WhereID(p entql.IntP) {
	f.Where(p.Field(reminder.FieldID))
}

// WhereTaskID applies the entql int predicate on the task_id field.
func (f *ReminderFilter) WhereTaskID(p entql.IntP) {
	f.Where(p.Field(reminder.FieldTaskID))
}

// WhereRemindAt applies the entql time.Time predicate on the remind_at field.
func (f *ReminderFilter) WhereRemindAt(p entql.TimeP) {
	f.Where(p.Field(reminder.FieldRemindAt))
}

// WhereMethod applies the entql string predicate on the method field.
func (f *ReminderFilter) WhereMethod(p entql.StringP) {
	f.Where(p.Field(reminder.FieldMethod))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *ReminderFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(reminder.FieldStatus))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ReminderFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(reminder.FieldCreatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *ReminderFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *ReminderFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tq *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	tq.predicates = append(tq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (tq *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: tq.config, predicateAdder: tq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql int predicate on the id field.
func (f *TaskFilter) WhereID(p entql.IntP) {
	f.Where(p.Field(task.FieldID))
}

// WhereWorkspaceID applies the entql int predicate on the workspace_id field.
func (f *TaskFilter) WhereWorkspaceID(p entql.IntP) {
	f.Where(p.Field(task.FieldWorkspaceID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereDueAt applies the entql time.Time predicate on the due_at field.
func (f *TaskFilter) WhereDueAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldDueAt))
}

// WhereAssigneeID applies the entql int predicate on the assignee_id field.
func (f *TaskFilter) WhereAssigneeID(p entql.IntP) {
	f.Where(p.Field(task.FieldAssigneeID))
}

// WhereLinkedNoteID applies the entql int predicate on the linked_note_id field.
func (f *TaskFilter) WhereLinkedNoteID(p entql.IntP) {
	f.Where(p.Field(task.FieldLinkedNoteID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasWorkspace applies a predicate to check if query has an edge workspace.
func (f *TaskFilter) WhereHasWorkspace() {
	f.Where(entql.HasEdge("workspace"))
}

// WhereHasWorkspaceWith applies a predicate to check if query has an edge workspace with a given conditions (other predicates).
func (f *TaskFilter) WhereHasWorkspaceWith(preds ...predicate.Workspace) {
	f.Where(entql.HasEdgeWith("workspace", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignee applies a predicate to check if query has an edge assignee.
func (f *TaskFilter) WhereHasAssignee() {
	f.Where(entql.HasEdge("assignee"))
}

// WhereHasAssigneeWith applies a predicate to check if query has an edge assignee with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAssigneeWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("assignee", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasLinkedNote applies a predicate to check if query has an edge linked_note.
func (f *TaskFilter) WhereHasLinkedNote() {
	f.Where(entql.HasEdge("linked_note"))
}

// WhereHasLinkedNoteWith applies a predicate to check if query has an edge linked_note with a given conditions (other predicates).
func (f *TaskFilter) WhereHasLinkedNoteWith(preds ...predicate.Note) {
	f.Where(entql.HasEdgeWith("linked_note", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasReminders applies a predicate to check if query has an edge reminders.
func (f *TaskFilter) WhereHasReminders() {
	f.Where(entql.HasEdge("reminders"))
}

// WhereHasRemindersWith applies a predicate to check if query has an edge reminders with a given conditions (other predicates).
func (f *TaskFilter) WhereHasRemindersWith(preds ...predicate.Reminder) {
	f.Where(entql.HasEdgeWith("reminders", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (uq *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	uq.predicates = append(uq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (uq *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: uq.config, predicateAdder: uq}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[4].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql int predicate on the id field.
func (f *UserFilter) WhereID(p entql.IntP) {
	f.Where(p.Field(user.FieldID))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WhereDisplayName applies the entql string predicate on the display_name field.
func (f *UserFilter) WhereDisplayName(p entql.StringP) {
	f.Where(p.Field(user.FieldDisplayName))
}

// WhereTimezone applies the entql string predicate on the timezone field.
func (f *UserFilter) WhereTimezone(p entql.StringP) {
	f.Where(p.Field(user.FieldTimezone))
}

// WhereLlmProvider applies the entql string predicate on the llm_provider field.
func (f *UserFilter) WhereLlmProvider(p entql.StringP) {
	f.Where(p.Field(user.FieldLlmProvider))
}

// WhereLlmModel applies the entql string predicate on the llm_model field.
func (f *UserFilter) WhereLlmModel(p entql.StringP) {
	f.Where(p.Field(user.FieldLlmModel))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereHasWorkspaces applies a predicate to check if query has an edge workspaces.
func (f *UserFilter) WhereHasWorkspaces() {
	f.Where(entql.HasEdge("workspaces"))
}

// WhereHasWorkspacesWith applies a predicate to check if query has an edge workspaces with a given conditions (other predicates).
func (f *UserFilter) WhereHasWorkspacesWith(preds ...predicate.Workspace) {
	f.Where(entql.HasEdgeWith("workspaces", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (wq *WorkspaceQuery) addPredicate(pred func(s *sql.Selector)) {
	wq.predicates = append(wq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the WorkspaceQuery builder.
func (wq *WorkspaceQuery) Filter() *WorkspaceFilter {
	return &WorkspaceFilter{config: wq.config, predicateAdder: wq}
}

// addPredicate implements the predicateAdder interface.
func (m *WorkspaceMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the WorkspaceMutation builder.
func (m *WorkspaceMutation) Filter() *WorkspaceFilter {
	return &WorkspaceFilter{config: m.config, predicateAdder: m}
}

// WorkspaceFilter provides a generic filtering capability at runtime for WorkspaceQuery.
type WorkspaceFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *WorkspaceFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[5].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql int predicate on the id field.
func (f *WorkspaceFilter) WhereID(p entql.IntP) {
	f.Where(p.Field(workspace.FieldID))
}

// WhereOwnerID applies the entql int predicate on the owner_id field.
func (f *WorkspaceFilter) WhereOwnerID(p entql.IntP) {
	f.Where(p.Field(workspace.FieldOwnerID))
}

// WhereName applies the entql string predicate on the name field.
func (f *WorkspaceFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(workspace.FieldName))
}

// WhereSettings applies the entql json.RawMessage predicate on the settings field.
func (f *WorkspaceFilter) WhereSettings(p entql.BytesP) {
	f.Where(p.Field(workspace.FieldSettings))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *WorkspaceFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(workspace.FieldCreatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *WorkspaceFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *WorkspaceFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasNotes applies a predicate to check if query has an edge notes.
func (f *WorkspaceFilter) WhereHasNotes() {
	f.Where(entql.HasEdge("notes"))
}

// WhereHasNotesWith applies a predicate to check if query has an edge notes with a given conditions (other predicates).
func (f *WorkspaceFilter) WhereHasNotesWith(preds ...predicate.Note) {
	f.Where(entql.HasEdgeWith("notes", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *WorkspaceFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *WorkspaceFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAgentEvents applies a predicate to check if query has an edge agent_events.
func (f *WorkspaceFilter) WhereHasAgentEvents() {
	f.Where(entql.HasEdge("agent_events"))
}

// WhereHasAgentEventsWith applies a predicate to check if query has an edge agent_events with a given conditions (other predicates).
func (f *WorkspaceFilter) WhereHasAgentEventsWith(preds ...predicate.AgentEvent) {
	f.Where(entql.HasEdgeWith("agent_events", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
