// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
	"github.com/workbenchlabs/workbench/ent/generated/reminder"
	"github.com/workbenchlabs/workbench/ent/generated/task"
)

// ReminderUpdate is the builder for updating Reminder entities.
type ReminderUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderMutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (ru *ReminderUpdate) Where(ps ...predicate.Reminder) *ReminderUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetTaskID sets the "task_id" field.
func (ru *ReminderUpdate) SetTaskID(i int) *ReminderUpdate {
	ru.mutation.SetTaskID(i)
	return ru
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableTaskID(i *int) *ReminderUpdate {
	if i != nil {
		ru.SetTaskID(*i)
	}
	return ru
}

// SetRemindAt sets the "remind_at" field.
func (ru *ReminderUpdate) SetRemindAt(t time.Time) *ReminderUpdate {
	ru.mutation.SetRemindAt(t)
	return ru
}

// SetNillableRemindAt sets the "remind_at" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableRemindAt(t *time.Time) *ReminderUpdate {
	if t != nil {
		ru.SetRemindAt(*t)
	}
	return ru
}

// SetMethod sets the "method" field.
func (ru *ReminderUpdate) SetMethod(r reminder.Method) *ReminderUpdate {
	ru.mutation.SetMethod(r)
	return ru
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableMethod(r *reminder.Method) *ReminderUpdate {
	if r != nil {
		ru.SetMethod(*r)
	}
	return ru
}

// SetStatus sets the "status" field.
func (ru *ReminderUpdate) SetStatus(r reminder.Status) *ReminderUpdate {
	ru.mutation.SetStatus(r)
	return ru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ru *ReminderUpdate) SetNillableStatus(r *reminder.Status) *ReminderUpdate {
	if r != nil {
		ru.SetStatus(*r)
	}
	return ru
}

// SetTask sets the "task" edge to the Task entity.
func (ru *ReminderUpdate) SetTask(t *Task) *ReminderUpdate {
	return ru.SetTaskID(t.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (ru *ReminderUpdate) Mutation() *ReminderMutation {
	return ru.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (ru *ReminderUpdate) ClearTask() *ReminderUpdate {
	ru.mutation.ClearTask()
	return ru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *ReminderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *ReminderUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *ReminderUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *ReminderUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *ReminderUpdate) check() error {
	if v, ok := ru.mutation.Method(); ok {
		if err := reminder.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`generated: validator failed for field "Reminder.method": %w`, err)}
		}
	}
	if v, ok := ru.mutation.Status(); ok {
		if err := reminder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Reminder.status": %w`, err)}
		}
	}
	if _, ok := ru.mutation.TaskID(); ru.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Reminder.task"`)
	}
	return nil
}

func (ru *ReminderUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.RemindAt(); ok {
		_spec.SetField(reminder.FieldRemindAt, field.TypeTime, value)
	}
	if value, ok := ru.mutation.Method(); ok {
		_spec.SetField(reminder.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := ru.mutation.Status(); ok {
		_spec.SetField(reminder.FieldStatus, field.TypeEnum, value)
	}
	if ru.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// ReminderUpdateOne is the builder for updating a single Reminder entity.
type ReminderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderMutation
}

// SetTaskID sets the "task_id" field.
func (ruo *ReminderUpdateOne) SetTaskID(i int) *ReminderUpdateOne {
	ruo.mutation.SetTaskID(i)
	return ruo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableTaskID(i *int) *ReminderUpdateOne {
	if i != nil {
		ruo.SetTaskID(*i)
	}
	return ruo
}

// SetRemindAt sets the "remind_at" field.
func (ruo *ReminderUpdateOne) SetRemindAt(t time.Time) *ReminderUpdateOne {
	ruo.mutation.SetRemindAt(t)
	return ruo
}

// SetNillableRemindAt sets the "remind_at" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableRemindAt(t *time.Time) *ReminderUpdateOne {
	if t != nil {
		ruo.SetRemindAt(*t)
	}
	return ruo
}

// SetMethod sets the "method" field.
func (ruo *ReminderUpdateOne) SetMethod(r reminder.Method) *ReminderUpdateOne {
	ruo.mutation.SetMethod(r)
	return ruo
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableMethod(r *reminder.Method) *ReminderUpdateOne {
	if r != nil {
		ruo.SetMethod(*r)
	}
	return ruo
}

// SetStatus sets the "status" field.
func (ruo *ReminderUpdateOne) SetStatus(r reminder.Status) *ReminderUpdateOne {
	ruo.mutation.SetStatus(r)
	return ruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ruo *ReminderUpdateOne) SetNillableStatus(r *reminder.Status) *ReminderUpdateOne {
	if r != nil {
		ruo.SetStatus(*r)
	}
	return ruo
}

// SetTask sets the "task" edge to the Task entity.
func (ruo *ReminderUpdateOne) SetTask(t *Task) *ReminderUpdateOne {
	return ruo.SetTaskID(t.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (ruo *ReminderUpdateOne) Mutation() *ReminderMutation {
	return ruo.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (ruo *ReminderUpdateOne) ClearTask() *ReminderUpdateOne {
	ruo.mutation.ClearTask()
	return ruo
}

// Where appends a list predicates to the ReminderUpdate builder.
func (ruo *ReminderUpdateOne) Where(ps ...predicate.Reminder) *ReminderUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *ReminderUpdateOne) Select(field string, fields ...string) *ReminderUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Reminder entity.
func (ruo *ReminderUpdateOne) Save(ctx context.Context) (*Reminder, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *ReminderUpdateOne) SaveX(ctx context.Context) *Reminder {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *ReminderUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *ReminderUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *ReminderUpdateOne) check() error {
	if v, ok := ruo.mutation.Method(); ok {
		if err := reminder.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`generated: validator failed for field "Reminder.method": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.Status(); ok {
		if err := reminder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Reminder.status": %w`, err)}
		}
	}
	if _, ok := ruo.mutation.TaskID(); ruo.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Reminder.task"`)
	}
	return nil
}

func (ruo *ReminderUpdateOne) sqlSave(ctx context.Context) (_node *Reminder, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Reminder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminder.FieldID)
		for _, f := range fields {
			if !reminder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != reminder.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.RemindAt(); ok {
		_spec.SetField(reminder.FieldRemindAt, field.TypeTime, value)
	}
	if value, ok := ruo.mutation.Method(); ok {
		_spec.SetField(reminder.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := ruo.mutation.Status(); ok {
		_spec.SetField(reminder.FieldStatus, field.TypeEnum, value)
	}
	if ruo.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reminder{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
