// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
	"github.com/workbenchlabs/workbench/ent/generated/task"
	"github.com/workbenchlabs/workbench/ent/generated/user"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (wu *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	wu.mutation.Where(ps...)
	return wu
}

// SetOwnerID sets the "owner_id" field.
func (wu *WorkspaceUpdate) SetOwnerID(i int) *WorkspaceUpdate {
	wu.mutation.SetOwnerID(i)
	return wu
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (wu *WorkspaceUpdate) SetNillableOwnerID(i *int) *WorkspaceUpdate {
	if i != nil {
		wu.SetOwnerID(*i)
	}
	return wu
}

// SetName sets the "name" field.
func (wu *WorkspaceUpdate) SetName(s string) *WorkspaceUpdate {
	wu.mutation.SetName(s)
	return wu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (wu *WorkspaceUpdate) SetNillableName(s *string) *WorkspaceUpdate {
	if s != nil {
		wu.SetName(*s)
	}
	return wu
}

// SetSettings sets the "settings" field.
func (wu *WorkspaceUpdate) SetSettings(m map[string]interface{}) *WorkspaceUpdate {
	wu.mutation.SetSettings(m)
	return wu
}

// ClearSettings clears the value of the "settings" field.
func (wu *WorkspaceUpdate) ClearSettings() *WorkspaceUpdate {
	wu.mutation.ClearSettings()
	return wu
}

// SetOwner sets the "owner" edge to the User entity.
func (wu *WorkspaceUpdate) SetOwner(u *User) *WorkspaceUpdate {
	return wu.SetOwnerID(u.ID)
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (wu *WorkspaceUpdate) AddNoteIDs(ids ...int) *WorkspaceUpdate {
	wu.mutation.AddNoteIDs(ids...)
	return wu
}

// AddNotes adds the "notes" edges to the Note entity.
func (wu *WorkspaceUpdate) AddNotes(n ...*Note) *WorkspaceUpdate {
	ids := make([]int, len(n))
	for i := range n {
		ids[i] = n[i].ID
	}
	return wu.AddNoteIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (wu *WorkspaceUpdate) AddTaskIDs(ids ...int) *WorkspaceUpdate {
	wu.mutation.AddTaskIDs(ids...)
	return wu
}

// AddTasks adds the "tasks" edges to the Task entity.
func (wu *WorkspaceUpdate) AddTasks(t ...*Task) *WorkspaceUpdate {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wu.AddTaskIDs(ids...)
}

// AddAgentEventIDs adds the "agent_events" edge to the AgentEvent entity by IDs.
func (wu *WorkspaceUpdate) AddAgentEventIDs(ids ...int) *WorkspaceUpdate {
	wu.mutation.AddAgentEventIDs(ids...)
	return wu
}

// AddAgentEvents adds the "agent_events" edges to the AgentEvent entity.
func (wu *WorkspaceUpdate) AddAgentEvents(a ...*AgentEvent) *WorkspaceUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return wu.AddAgentEventIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (wu *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return wu.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (wu *WorkspaceUpdate) ClearOwner() *WorkspaceUpdate {
	wu.mutation.ClearOwner()
	return wu
}

// ClearNotes clears all "notes" edges to the Note entity.
func (wu *WorkspaceUpdate) ClearNotes() *WorkspaceUpdate {
	wu.mutation.ClearNotes()
	return wu
}

// RemoveNoteIDs removes the "notes" edge to Note entities by IDs.
func (wu *WorkspaceUpdate) RemoveNoteIDs(ids ...int) *WorkspaceUpdate {
	wu.mutation.RemoveNoteIDs(ids...)
	return wu
}

// RemoveNotes removes "notes" edges to Note entities.
func (wu *WorkspaceUpdate) RemoveNotes(n ...*Note) *WorkspaceUpdate {
	ids := make([]int, len(n))
	for i := range n {
		ids[i] = n[i].ID
	}
	return wu.RemoveNoteIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (wu *WorkspaceUpdate) ClearTasks() *WorkspaceUpdate {
	wu.mutation.ClearTasks()
	return wu
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (wu *WorkspaceUpdate) RemoveTaskIDs(ids ...int) *WorkspaceUpdate {
	wu.mutation.RemoveTaskIDs(ids...)
	return wu
}

// RemoveTasks removes "tasks" edges to Task entities.
func (wu *WorkspaceUpdate) RemoveTasks(t ...*Task) *WorkspaceUpdate {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wu.RemoveTaskIDs(ids...)
}

// ClearAgentEvents clears all "agent_events" edges to the AgentEvent entity.
func (wu *WorkspaceUpdate) ClearAgentEvents() *WorkspaceUpdate {
	wu.mutation.ClearAgentEvents()
	return wu
}

// RemoveAgentEventIDs removes the "agent_events" edge to AgentEvent entities by IDs.
func (wu *WorkspaceUpdate) RemoveAgentEventIDs(ids ...int) *WorkspaceUpdate {
	wu.mutation.RemoveAgentEventIDs(ids...)
	return wu
}

// RemoveAgentEvents removes "agent_events" edges to AgentEvent entities.
func (wu *WorkspaceUpdate) RemoveAgentEvents(a ...*AgentEvent) *WorkspaceUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return wu.RemoveAgentEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wu *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wu.sqlSave, wu.mutation, wu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wu *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := wu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wu *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := wu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wu *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := wu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wu *WorkspaceUpdate) check() error {
	if v, ok := wu.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if _, ok := wu.mutation.OwnerID(); wu.mutation.OwnerCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Workspace.owner"`)
	}
	return nil
}

func (wu *WorkspaceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	if ps := wu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wu.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := wu.mutation.Settings(); ok {
		_spec.SetField(workspace.FieldSettings, field.TypeJSON, value)
	}
	if wu.mutation.SettingsCleared() {
		_spec.ClearField(workspace.FieldSettings, field.TypeJSON)
	}
	if wu.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workspace.OwnerTable,
			Columns: []string{workspace.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workspace.OwnerTable,
			Columns: []string{workspace.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wu.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.RemovedNotesIDs(); len(nodes) > 0 && !wu.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wu.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.RemovedTasksIDs(); len(nodes) > 0 && !wu.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wu.mutation.AgentEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.RemovedAgentEventsIDs(); len(nodes) > 0 && !wu.mutation.AgentEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.AgentEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wu.mutation.done = true
	return n, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetOwnerID sets the "owner_id" field.
func (wuo *WorkspaceUpdateOne) SetOwnerID(i int) *WorkspaceUpdateOne {
	wuo.mutation.SetOwnerID(i)
	return wuo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (wuo *WorkspaceUpdateOne) SetNillableOwnerID(i *int) *WorkspaceUpdateOne {
	if i != nil {
		wuo.SetOwnerID(*i)
	}
	return wuo
}

// SetName sets the "name" field.
func (wuo *WorkspaceUpdateOne) SetName(s string) *WorkspaceUpdateOne {
	wuo.mutation.SetName(s)
	return wuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (wuo *WorkspaceUpdateOne) SetNillableName(s *string) *WorkspaceUpdateOne {
	if s != nil {
		wuo.SetName(*s)
	}
	return wuo
}

// SetSettings sets the "settings" field.
func (wuo *WorkspaceUpdateOne) SetSettings(m map[string]interface{}) *WorkspaceUpdateOne {
	wuo.mutation.SetSettings(m)
	return wuo
}

// ClearSettings clears the value of the "settings" field.
func (wuo *WorkspaceUpdateOne) ClearSettings() *WorkspaceUpdateOne {
	wuo.mutation.ClearSettings()
	return wuo
}

// SetOwner sets the "owner" edge to the User entity.
func (wuo *WorkspaceUpdateOne) SetOwner(u *User) *WorkspaceUpdateOne {
	return wuo.SetOwnerID(u.ID)
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (wuo *WorkspaceUpdateOne) AddNoteIDs(ids ...int) *WorkspaceUpdateOne {
	wuo.mutation.AddNoteIDs(ids...)
	return wuo
}

// AddNotes adds the "notes" edges to the Note entity.
func (wuo *WorkspaceUpdateOne) AddNotes(n ...*Note) *WorkspaceUpdateOne {
	ids := make([]int, len(n))
	for i := range n {
		ids[i] = n[i].ID
	}
	return wuo.AddNoteIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (wuo *WorkspaceUpdateOne) AddTaskIDs(ids ...int) *WorkspaceUpdateOne {
	wuo.mutation.AddTaskIDs(ids...)
	return wuo
}

// AddTasks adds the "tasks" edges to the Task entity.
func (wuo *WorkspaceUpdateOne) AddTasks(t ...*Task) *WorkspaceUpdateOne {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wuo.AddTaskIDs(ids...)
}

// AddAgentEventIDs adds the "agent_events" edge to the AgentEvent entity by IDs.
func (wuo *WorkspaceUpdateOne) AddAgentEventIDs(ids ...int) *WorkspaceUpdateOne {
	wuo.mutation.AddAgentEventIDs(ids...)
	return wuo
}

// AddAgentEvents adds the "agent_events" edges to the AgentEvent entity.
func (wuo *WorkspaceUpdateOne) AddAgentEvents(a ...*AgentEvent) *WorkspaceUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return wuo.AddAgentEventIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (wuo *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return wuo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (wuo *WorkspaceUpdateOne) ClearOwner() *WorkspaceUpdateOne {
	wuo.mutation.ClearOwner()
	return wuo
}

// ClearNotes clears all "notes" edges to the Note entity.
func (wuo *WorkspaceUpdateOne) ClearNotes() *WorkspaceUpdateOne {
	wuo.mutation.ClearNotes()
	return wuo
}

// RemoveNoteIDs removes the "notes" edge to Note entities by IDs.
func (wuo *WorkspaceUpdateOne) RemoveNoteIDs(ids ...int) *WorkspaceUpdateOne {
	wuo.mutation.RemoveNoteIDs(ids...)
	return wuo
}

// RemoveNotes removes "notes" edges to Note entities.
func (wuo *WorkspaceUpdateOne) RemoveNotes(n ...*Note) *WorkspaceUpdateOne {
	ids := make([]int, len(n))
	for i := range n {
		ids[i] = n[i].ID
	}
	return wuo.RemoveNoteIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (wuo *WorkspaceUpdateOne) ClearTasks() *WorkspaceUpdateOne {
	wuo.mutation.ClearTasks()
	return wuo
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (wuo *WorkspaceUpdateOne) RemoveTaskIDs(ids ...int) *WorkspaceUpdateOne {
	wuo.mutation.RemoveTaskIDs(ids...)
	return wuo
}

// RemoveTasks removes "tasks" edges to Task entities.
func (wuo *WorkspaceUpdateOne) RemoveTasks(t ...*Task) *WorkspaceUpdateOne {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wuo.RemoveTaskIDs(ids...)
}

// ClearAgentEvents clears all "agent_events" edges to the AgentEvent entity.
func (wuo *WorkspaceUpdateOne) ClearAgentEvents() *WorkspaceUpdateOne {
	wuo.mutation.ClearAgentEvents()
	return wuo
}

// RemoveAgentEventIDs removes the "agent_events" edge to AgentEvent entities by IDs.
func (wuo *WorkspaceUpdateOne) RemoveAgentEventIDs(ids ...int) *WorkspaceUpdateOne {
	wuo.mutation.RemoveAgentEventIDs(ids...)
	return wuo
}

// RemoveAgentEvents removes "agent_events" edges to AgentEvent entities.
func (wuo *WorkspaceUpdateOne) RemoveAgentEvents(a ...*AgentEvent) *WorkspaceUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return wuo.RemoveAgentEventIDs(ids...)
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (wuo *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	wuo.mutation.Where(ps...)
	return wuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wuo *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	wuo.fields = append([]string{field}, fields...)
	return wuo
}

// Save executes the query and returns the updated Workspace entity.
func (wuo *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	return withHooks(ctx, wuo.sqlSave, wuo.mutation, wuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wuo *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := wuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wuo *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := wuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wuo *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := wuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wuo *WorkspaceUpdateOne) check() error {
	if v, ok := wuo.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if _, ok := wuo.mutation.OwnerID(); wuo.mutation.OwnerCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Workspace.owner"`)
	}
	return nil
}

func (wuo *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	if err := wuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt))
	id, ok := wuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wuo.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := wuo.mutation.Settings(); ok {
		_spec.SetField(workspace.FieldSettings, field.TypeJSON, value)
	}
	if wuo.mutation.SettingsCleared() {
		_spec.ClearField(workspace.FieldSettings, field.TypeJSON)
	}
	if wuo.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workspace.OwnerTable,
			Columns: []string{workspace.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workspace.OwnerTable,
			Columns: []string{workspace.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wuo.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.RemovedNotesIDs(); len(nodes) > 0 && !wuo.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.NotesTable,
			Columns: []string{workspace.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wuo.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.RemovedTasksIDs(); len(nodes) > 0 && !wuo.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.TasksTable,
			Columns: []string{workspace.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wuo.mutation.AgentEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.RemovedAgentEventsIDs(); len(nodes) > 0 && !wuo.mutation.AgentEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.AgentEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentEventsTable,
			Columns: []string{workspace.AgentEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workspace{config: wuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wuo.mutation.done = true
	return _node, nil
}
