// Code generated by ent, DO NOT EDIT.

package generated

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

// AgentEvent is the model entity for the AgentEvent schema.
type AgentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Workspace the proposal targets
	WorkspaceID int `json:"workspace_id,omitempty"`
	// Identifier of the agent that made the proposal
	Agent string `json:"agent,omitempty"`
	// Action the agent wants to perform
	Action string `json:"action,omitempty"`
	// Proposed action parameters, stored verbatim
	Input map[string]interface{} `json:"input,omitempty"`
	// Outcome of the proposal, null until a transition writes it
	Output map[string]interface{} `json:"output,omitempty"`
	// Lifecycle state of the proposal
	Status agentevent.Status `json:"status,omitempty"`
	// When the proposal was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentEventQuery when eager-loading is set.
	Edges        AgentEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEventEdges holds the relations/edges for other nodes in the graph.
type AgentEventEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEventEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentevent.FieldInput, agentevent.FieldOutput:
			values[i] = new([]byte)
		case agentevent.FieldID, agentevent.FieldWorkspaceID:
			values[i] = new(sql.NullInt64)
		case agentevent.FieldAgent, agentevent.FieldAction, agentevent.FieldStatus:
			values[i] = new(sql.NullString)
		case agentevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentEvent fields.
func (ae *AgentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case agentevent.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				ae.WorkspaceID = int(value.Int64)
			}
		case agentevent.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				ae.Agent = value.String
			}
		case agentevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				ae.Action = value.String
			}
		case agentevent.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case agentevent.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case agentevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ae.Status = agentevent.Status(value.String)
			}
		case agentevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ae.CreatedAt = value.Time
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AgentEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the AgentEvent entity.
func (ae *AgentEvent) QueryWorkspace() *WorkspaceQuery {
	return NewAgentEventClient(ae.config).QueryWorkspace(ae)
}

// Update returns a builder for updating this AgentEvent.
// Note that you need to call AgentEvent.Unwrap() before calling this method if this AgentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AgentEvent) Update() *AgentEventUpdateOne {
	return NewAgentEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AgentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AgentEvent) Unwrap() *AgentEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("generated: AgentEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AgentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AgentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", ae.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("agent=")
	builder.WriteString(ae.Agent)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(ae.Action)
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", ae.Input))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", ae.Output))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ae.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ae.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentEvents is a parsable slice of AgentEvent.
type AgentEvents []*AgentEvent
