// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/workbenchlabs/workbench/ent/generated/reminder"
	"github.com/workbenchlabs/workbench/ent/generated/task"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (rc *ReminderCreate) SetTaskID(i int) *ReminderCreate {
	rc.mutation.SetTaskID(i)
	return rc
}

// SetRemindAt sets the "remind_at" field.
func (rc *ReminderCreate) SetRemindAt(t time.Time) *ReminderCreate {
	rc.mutation.SetRemindAt(t)
	return rc
}

// SetMethod sets the "method" field.
func (rc *ReminderCreate) SetMethod(r reminder.Method) *ReminderCreate {
	rc.mutation.SetMethod(r)
	return rc
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableMethod(r *reminder.Method) *ReminderCreate {
	if r != nil {
		rc.SetMethod(*r)
	}
	return rc
}

// SetStatus sets the "status" field.
func (rc *ReminderCreate) SetStatus(r reminder.Status) *ReminderCreate {
	rc.mutation.SetStatus(r)
	return rc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableStatus(r *reminder.Status) *ReminderCreate {
	if r != nil {
		rc.SetStatus(*r)
	}
	return rc
}

// SetCreatedAt sets the "created_at" field.
func (rc *ReminderCreate) SetCreatedAt(t time.Time) *ReminderCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rc *ReminderCreate) SetNillableCreatedAt(t *time.Time) *ReminderCreate {
	if t != nil {
		rc.SetCreatedAt(*t)
	}
	return rc
}

// SetTask sets the "task" edge to the Task entity.
func (rc *ReminderCreate) SetTask(t *Task) *ReminderCreate {
	return rc.SetTaskID(t.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (rc *ReminderCreate) Mutation() *ReminderMutation {
	return rc.mutation
}

// Save creates the Reminder in the database.
func (rc *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *ReminderCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *ReminderCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *ReminderCreate) defaults() {
	if _, ok := rc.mutation.Method(); !ok {
		v := reminder.DefaultMethod
		rc.mutation.SetMethod(v)
	}
	if _, ok := rc.mutation.Status(); !ok {
		v := reminder.DefaultStatus
		rc.mutation.SetStatus(v)
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		rc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *ReminderCreate) check() error {
	if _, ok := rc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`generated: missing required field "Reminder.task_id"`)}
	}
	if _, ok := rc.mutation.RemindAt(); !ok {
		return &ValidationError{Name: "remind_at", err: errors.New(`generated: missing required field "Reminder.remind_at"`)}
	}
	if _, ok := rc.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`generated: missing required field "Reminder.method"`)}
	}
	if v, ok := rc.mutation.Method(); ok {
		if err := reminder.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`generated: validator failed for field "Reminder.method": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Reminder.status"`)}
	}
	if v, ok := rc.mutation.Status(); ok {
		if err := reminder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Reminder.status": %w`, err)}
		}
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Reminder.created_at"`)}
	}
	if _, ok := rc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`generated: missing required edge "Reminder.task"`)}
	}
	return nil
}

func (rc *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	)
	if value, ok := rc.mutation.RemindAt(); ok {
		_spec.SetField(reminder.FieldRemindAt, field.TypeTime, value)
		_node.RemindAt = value
	}
	if value, ok := rc.mutation.Method(); ok {
		_spec.SetField(reminder.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := rc.mutation.Status(); ok {
		_spec.SetField(reminder.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := rc.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reminder.TaskTable,
			Columns: []string{reminder.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (rcb *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Reminder, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
