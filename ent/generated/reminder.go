// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/workbenchlabs/workbench/ent/generated/reminder"
	"github.com/workbenchlabs/workbench/ent/generated/task"
)

// Reminder is the model entity for the Reminder schema.
type Reminder struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Task this reminder belongs to
	TaskID int `json:"task_id,omitempty"`
	// When the reminder should fire
	RemindAt time.Time `json:"remind_at,omitempty"`
	// Delivery channel for the reminder
	Method reminder.Method `json:"method,omitempty"`
	// Delivery state of the reminder
	Status reminder.Status `json:"status,omitempty"`
	// When the reminder was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReminderQuery when eager-loading is set.
	Edges        ReminderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReminderEdges holds the relations/edges for other nodes in the graph.
type ReminderEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReminderEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Reminder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reminder.FieldID, reminder.FieldTaskID:
			values[i] = new(sql.NullInt64)
		case reminder.FieldMethod, reminder.FieldStatus:
			values[i] = new(sql.NullString)
		case reminder.FieldRemindAt, reminder.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Reminder fields.
func (r *Reminder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reminder.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			r.ID = int(value.Int64)
		case reminder.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				r.TaskID = int(value.Int64)
			}
		case reminder.FieldRemindAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field remind_at", values[i])
			} else if value.Valid {
				r.RemindAt = value.Time
			}
		case reminder.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				r.Method = reminder.Method(value.String)
			}
		case reminder.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				r.Status = reminder.Status(value.String)
			}
		case reminder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				r.CreatedAt = value.Time
			}
		default:
			r.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Reminder.
// This includes values selected through modifiers, order, etc.
func (r *Reminder) Value(name string) (ent.Value, error) {
	return r.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Reminder entity.
func (r *Reminder) QueryTask() *TaskQuery {
	return NewReminderClient(r.config).QueryTask(r)
}

// Update returns a builder for updating this Reminder.
// Note that you need to call Reminder.Unwrap() before calling this method if this Reminder
// was returned from a transaction, and the transaction was committed or rolled back.
func (r *Reminder) Update() *ReminderUpdateOne {
	return NewReminderClient(r.config).UpdateOne(r)
}

// Unwrap unwraps the Reminder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (r *Reminder) Unwrap() *Reminder {
	_tx, ok := r.config.driver.(*txDriver)
	if !ok {
		panic("generated: Reminder is not a transactional entity")
	}
	r.config.driver = _tx.drv
	return r
}

// String implements the fmt.Stringer.
func (r *Reminder) String() string {
	var builder strings.Builder
	builder.WriteString("Reminder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", r.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", r.TaskID))
	builder.WriteString(", ")
	builder.WriteString("remind_at=")
	builder.WriteString(r.RemindAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(fmt.Sprintf("%v", r.Method))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", r.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(r.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reminders is a parsable slice of Reminder.
type Reminders []*Reminder
