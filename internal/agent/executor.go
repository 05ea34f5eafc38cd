// internal/agent/executor.go
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

// ActionCreateTask is the one action with a concrete side effect today.
const ActionCreateTask = "create_task"

// ExecutionResult reports the outcome of an approved action to the
// caller. It is never persisted; the event's output map is.
type ExecutionResult struct {
	Success       bool
	Message       string
	Error         string
	CreatedTaskID int
}

// Outcome pairs the output map written onto the event with the
// synchronous execution result. Failed denotes an execution failure
// that was absorbed: the event lands in the error state but the
// confirm call itself succeeds.
type Outcome struct {
	Output map[string]interface{}
	Result ExecutionResult
	Failed bool
}

// Handler performs the side effect for one action type. approvedAt is
// the transition instant, already rendered to its textual JSON form.
type Handler func(ctx context.Context, input map[string]interface{}, approvedAt string) Outcome

// Executor dispatches approved proposals to registered handlers.
// Unregistered actions fall through to a generic no-op success, so
// adding an action type means registering one handler.
type Executor struct {
	handlers map[string]Handler
	clock    clock.Clock
}

func NewExecutor(clk clock.Clock) *Executor {
	return &Executor{
		handlers: make(map[string]Handler),
		clock:    clk,
	}
}

// Register installs the handler for an action name, replacing any
// previous registration.
func (e *Executor) Register(action string, h Handler) {
	e.handlers[action] = h
}

// Execute runs the handler for the action, or the generic fallback.
func (e *Executor) Execute(ctx context.Context, action string, input map[string]interface{}) Outcome {
	approvedAt := e.clock.Now().UTC().Format(time.RFC3339)

	if h, ok := e.handlers[action]; ok {
		return h(ctx, input, approvedAt)
	}

	return Outcome{
		Output: map[string]interface{}{
			"approved":        true,
			"approved_at":     approvedAt,
			"executed_action": action,
		},
		Result: ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("Action %s executed successfully", action),
		},
	}
}

// NewCreateTaskHandler builds the handler for create_task proposals.
// Task fields are drawn from the proposal's stored input; a failing
// insert (bad workspace reference, missing title) is captured into the
// outcome rather than returned as an error.
func NewCreateTaskHandler(tasks *repository.EntTaskRepository) Handler {
	return func(ctx context.Context, input map[string]interface{}, approvedAt string) Outcome {
		taskInput := &repository.TaskInput{
			WorkspaceID: intField(input, "workspace_id"),
			Title:       stringField(input, "title"),
			Description: stringField(input, "description"),
			Priority:    stringField(input, "priority"),
		}

		if raw := stringField(input, "due_at"); raw != "" {
			if due, err := time.Parse(time.RFC3339, raw); err == nil {
				taskInput.DueAt = &due
			}
		}

		created, err := tasks.Create(ctx, taskInput)
		if err != nil {
			return Outcome{
				Output: map[string]interface{}{
					"approved":        true,
					"approved_at":     approvedAt,
					"execution_error": err.Error(),
				},
				Result: ExecutionResult{
					Success: false,
					Error:   err.Error(),
				},
				Failed: true,
			}
		}

		return Outcome{
			Output: map[string]interface{}{
				"approved":        true,
				"approved_at":     approvedAt,
				"executed_action": "task_created",
				"task_id":         created.ID,
			},
			Result: ExecutionResult{
				Success:       true,
				Message:       "Task created successfully",
				CreatedTaskID: created.ID,
			},
		}
	}
}

// JSON round-tripped numbers arrive as float64; direct proposals may
// carry native ints.
func intField(input map[string]interface{}, key string) int {
	switch v := input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func stringField(input map[string]interface{}, key string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return ""
}
