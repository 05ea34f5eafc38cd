// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

// AgentEventCreate is the builder for creating a AgentEvent entity.
type AgentEventCreate struct {
	config
	mutation *AgentEventMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (aec *AgentEventCreate) SetWorkspaceID(i int) *AgentEventCreate {
	aec.mutation.SetWorkspaceID(i)
	return aec
}

// SetAgent sets the "agent" field.
func (aec *AgentEventCreate) SetAgent(s string) *AgentEventCreate {
	aec.mutation.SetAgent(s)
	return aec
}

// SetAction sets the "action" field.
func (aec *AgentEventCreate) SetAction(s string) *AgentEventCreate {
	aec.mutation.SetAction(s)
	return aec
}

// SetInput sets the "input" field.
func (aec *AgentEventCreate) SetInput(m map[string]interface{}) *AgentEventCreate {
	aec.mutation.SetInput(m)
	return aec
}

// SetOutput sets the "output" field.
func (aec *AgentEventCreate) SetOutput(m map[string]interface{}) *AgentEventCreate {
	aec.mutation.SetOutput(m)
	return aec
}

// SetStatus sets the "status" field.
func (aec *AgentEventCreate) SetStatus(a agentevent.Status) *AgentEventCreate {
	aec.mutation.SetStatus(a)
	return aec
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (aec *AgentEventCreate) SetNillableStatus(a *agentevent.Status) *AgentEventCreate {
	if a != nil {
		aec.SetStatus(*a)
	}
	return aec
}

// SetCreatedAt sets the "created_at" field.
func (aec *AgentEventCreate) SetCreatedAt(t time.Time) *AgentEventCreate {
	aec.mutation.SetCreatedAt(t)
	return aec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aec *AgentEventCreate) SetNillableCreatedAt(t *time.Time) *AgentEventCreate {
	if t != nil {
		aec.SetCreatedAt(*t)
	}
	return aec
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (aec *AgentEventCreate) SetWorkspace(w *Workspace) *AgentEventCreate {
	return aec.SetWorkspaceID(w.ID)
}

// Mutation returns the AgentEventMutation object of the builder.
func (aec *AgentEventCreate) Mutation() *AgentEventMutation {
	return aec.mutation
}

// Save creates the AgentEvent in the database.
func (aec *AgentEventCreate) Save(ctx context.Context) (*AgentEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AgentEventCreate) SaveX(ctx context.Context) *AgentEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AgentEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AgentEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AgentEventCreate) defaults() {
	if _, ok := aec.mutation.Status(); !ok {
		v := agentevent.DefaultStatus
		aec.mutation.SetStatus(v)
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		v := agentevent.DefaultCreatedAt()
		aec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AgentEventCreate) check() error {
	if _, ok := aec.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`generated: missing required field "AgentEvent.workspace_id"`)}
	}
	if _, ok := aec.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`generated: missing required field "AgentEvent.agent"`)}
	}
	if v, ok := aec.mutation.Agent(); ok {
		if err := agentevent.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.agent": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`generated: missing required field "AgentEvent.action"`)}
	}
	if v, ok := aec.mutation.Action(); ok {
		if err := agentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.action": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`generated: missing required field "AgentEvent.input"`)}
	}
	if _, ok := aec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "AgentEvent.status"`)}
	}
	if v, ok := aec.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "AgentEvent.created_at"`)}
	}
	if _, ok := aec.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace", err: errors.New(`generated: missing required edge "AgentEvent.workspace"`)}
	}
	return nil
}

func (aec *AgentEventCreate) sqlSave(ctx context.Context) (*AgentEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AgentEventCreate) createSpec() (*AgentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(agentevent.Table, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Agent(); ok {
		_spec.SetField(agentevent.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := aec.mutation.Action(); ok {
		_spec.SetField(agentevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := aec.mutation.Input(); ok {
		_spec.SetField(agentevent.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := aec.mutation.Output(); ok {
		_spec.SetField(agentevent.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := aec.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := aec.mutation.CreatedAt(); ok {
		_spec.SetField(agentevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := aec.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentEventCreateBulk is the builder for creating many AgentEvent entities in bulk.
type AgentEventCreateBulk struct {
	config
	err      error
	builders []*AgentEventCreate
}

// Save creates the AgentEvent entities in the database.
func (aecb *AgentEventCreateBulk) Save(ctx context.Context) ([]*AgentEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AgentEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AgentEventCreateBulk) SaveX(ctx context.Context) []*AgentEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AgentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AgentEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
