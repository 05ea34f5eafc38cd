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
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

// AgentEventUpdate is the builder for updating AgentEvent entities.
type AgentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AgentEventMutation
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (aeu *AgentEventUpdate) Where(ps ...predicate.AgentEvent) *AgentEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetWorkspaceID sets the "workspace_id" field.
func (aeu *AgentEventUpdate) SetWorkspaceID(i int) *AgentEventUpdate {
	aeu.mutation.SetWorkspaceID(i)
	return aeu
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (aeu *AgentEventUpdate) SetNillableWorkspaceID(i *int) *AgentEventUpdate {
	if i != nil {
		aeu.SetWorkspaceID(*i)
	}
	return aeu
}

// SetAgent sets the "agent" field.
func (aeu *AgentEventUpdate) SetAgent(s string) *AgentEventUpdate {
	aeu.mutation.SetAgent(s)
	return aeu
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (aeu *AgentEventUpdate) SetNillableAgent(s *string) *AgentEventUpdate {
	if s != nil {
		aeu.SetAgent(*s)
	}
	return aeu
}

// SetAction sets the "action" field.
func (aeu *AgentEventUpdate) SetAction(s string) *AgentEventUpdate {
	aeu.mutation.SetAction(s)
	return aeu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (aeu *AgentEventUpdate) SetNillableAction(s *string) *AgentEventUpdate {
	if s != nil {
		aeu.SetAction(*s)
	}
	return aeu
}

// SetInput sets the "input" field.
func (aeu *AgentEventUpdate) SetInput(m map[string]interface{}) *AgentEventUpdate {
	aeu.mutation.SetInput(m)
	return aeu
}

// SetOutput sets the "output" field.
func (aeu *AgentEventUpdate) SetOutput(m map[string]interface{}) *AgentEventUpdate {
	aeu.mutation.SetOutput(m)
	return aeu
}

// ClearOutput clears the value of the "output" field.
func (aeu *AgentEventUpdate) ClearOutput() *AgentEventUpdate {
	aeu.mutation.ClearOutput()
	return aeu
}

// SetStatus sets the "status" field.
func (aeu *AgentEventUpdate) SetStatus(a agentevent.Status) *AgentEventUpdate {
	aeu.mutation.SetStatus(a)
	return aeu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (aeu *AgentEventUpdate) SetNillableStatus(a *agentevent.Status) *AgentEventUpdate {
	if a != nil {
		aeu.SetStatus(*a)
	}
	return aeu
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (aeu *AgentEventUpdate) SetWorkspace(w *Workspace) *AgentEventUpdate {
	return aeu.SetWorkspaceID(w.ID)
}

// Mutation returns the AgentEventMutation object of the builder.
func (aeu *AgentEventUpdate) Mutation() *AgentEventMutation {
	return aeu.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (aeu *AgentEventUpdate) ClearWorkspace() *AgentEventUpdate {
	aeu.mutation.ClearWorkspace()
	return aeu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AgentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AgentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AgentEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AgentEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AgentEventUpdate) check() error {
	if v, ok := aeu.mutation.Agent(); ok {
		if err := agentevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.agent": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Action(); ok {
		if err := agentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.action": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _, ok := aeu.mutation.WorkspaceID(); aeu.mutation.WorkspaceCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "AgentEvent.workspace"`)
	}
	return nil
}

func (aeu *AgentEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.Agent(); ok {
		_spec.SetField(agentevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Action(); ok {
		_spec.SetField(agentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Input(); ok {
		_spec.SetField(agentevent.FieldInput, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.Output(); ok {
		_spec.SetField(agentevent.FieldOutput, field.TypeJSON, value)
	}
	if aeu.mutation.OutputCleared() {
		_spec.ClearField(agentevent.FieldOutput, field.TypeJSON)
	}
	if value, ok := aeu.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
	}
	if aeu.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentevent.WorkspaceTable,
			Columns: []string{agentevent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aeu.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentevent.WorkspaceTable,
			Columns: []string{agentevent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AgentEventUpdateOne is the builder for updating a single AgentEvent entity.
type AgentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentEventMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (aeuo *AgentEventUpdateOne) SetWorkspaceID(i int) *AgentEventUpdateOne {
	aeuo.mutation.SetWorkspaceID(i)
	return aeuo
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (aeuo *AgentEventUpdateOne) SetNillableWorkspaceID(i *int) *AgentEventUpdateOne {
	if i != nil {
		aeuo.SetWorkspaceID(*i)
	}
	return aeuo
}

// SetAgent sets the "agent" field.
func (aeuo *AgentEventUpdateOne) SetAgent(s string) *AgentEventUpdateOne {
	aeuo.mutation.SetAgent(s)
	return aeuo
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (aeuo *AgentEventUpdateOne) SetNillableAgent(s *string) *AgentEventUpdateOne {
	if s != nil {
		aeuo.SetAgent(*s)
	}
	return aeuo
}

// SetAction sets the "action" field.
func (aeuo *AgentEventUpdateOne) SetAction(s string) *AgentEventUpdateOne {
	aeuo.mutation.SetAction(s)
	return aeuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (aeuo *AgentEventUpdateOne) SetNillableAction(s *string) *AgentEventUpdateOne {
	if s != nil {
		aeuo.SetAction(*s)
	}
	return aeuo
}

// SetInput sets the "input" field.
func (aeuo *AgentEventUpdateOne) SetInput(m map[string]interface{}) *AgentEventUpdateOne {
	aeuo.mutation.SetInput(m)
	return aeuo
}

// SetOutput sets the "output" field.
func (aeuo *AgentEventUpdateOne) SetOutput(m map[string]interface{}) *AgentEventUpdateOne {
	aeuo.mutation.SetOutput(m)
	return aeuo
}

// ClearOutput clears the value of the "output" field.
func (aeuo *AgentEventUpdateOne) ClearOutput() *AgentEventUpdateOne {
	aeuo.mutation.ClearOutput()
	return aeuo
}

// SetStatus sets the "status" field.
func (aeuo *AgentEventUpdateOne) SetStatus(a agentevent.Status) *AgentEventUpdateOne {
	aeuo.mutation.SetStatus(a)
	return aeuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (aeuo *AgentEventUpdateOne) SetNillableStatus(a *agentevent.Status) *AgentEventUpdateOne {
	if a != nil {
		aeuo.SetStatus(*a)
	}
	return aeuo
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (aeuo *AgentEventUpdateOne) SetWorkspace(w *Workspace) *AgentEventUpdateOne {
	return aeuo.SetWorkspaceID(w.ID)
}

// Mutation returns the AgentEventMutation object of the builder.
func (aeuo *AgentEventUpdateOne) Mutation() *AgentEventMutation {
	return aeuo.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (aeuo *AgentEventUpdateOne) ClearWorkspace() *AgentEventUpdateOne {
	aeuo.mutation.ClearWorkspace()
	return aeuo
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (aeuo *AgentEventUpdateOne) Where(ps ...predicate.AgentEvent) *AgentEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AgentEventUpdateOne) Select(field string, fields ...string) *AgentEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AgentEvent entity.
func (aeuo *AgentEventUpdateOne) Save(ctx context.Context) (*AgentEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AgentEventUpdateOne) SaveX(ctx context.Context) *AgentEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AgentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AgentEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AgentEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.Agent(); ok {
		if err := agentevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.agent": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Action(); ok {
		if err := agentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.action": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _, ok := aeuo.mutation.WorkspaceID(); aeuo.mutation.WorkspaceCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "AgentEvent.workspace"`)
	}
	return nil
}

func (aeuo *AgentEventUpdateOne) sqlSave(ctx context.Context) (_node *AgentEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "AgentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentevent.FieldID)
		for _, f := range fields {
			if !agentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != agentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.Agent(); ok {
		_spec.SetField(agentevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Action(); ok {
		_spec.SetField(agentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Input(); ok {
		_spec.SetField(agentevent.FieldInput, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.Output(); ok {
		_spec.SetField(agentevent.FieldOutput, field.TypeJSON, value)
	}
	if aeuo.mutation.OutputCleared() {
		_spec.ClearField(agentevent.FieldOutput, field.TypeJSON)
	}
	if value, ok := aeuo.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
	}
	if aeuo.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentevent.WorkspaceTable,
			Columns: []string{agentevent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aeuo.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentevent.WorkspaceTable,
			Columns: []string{agentevent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
