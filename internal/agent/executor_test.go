// internal/agent/executor_test.go
package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workbenchlabs/workbench/pkg/clock"
)

func TestExecutor_GenericFallback(t *testing.T) {
	clk := clock.NewFixed(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	executor := NewExecutor(clk)

	outcome := executor.Execute(context.Background(), "create_calendar_event", map[string]interface{}{
		"title": "Planning",
	})

	assert.False(t, outcome.Failed)
	assert.True(t, outcome.Result.Success)
	assert.Equal(t, "Action create_calendar_event executed successfully", outcome.Result.Message)
	assert.Equal(t, map[string]interface{}{
		"approved":        true,
		"approved_at":     "2024-03-15T10:30:00Z",
		"executed_action": "create_calendar_event",
	}, outcome.Output)
}

func TestExecutor_RegisteredHandlerWins(t *testing.T) {
	clk := clock.NewFixed(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	executor := NewExecutor(clk)

	var gotApprovedAt string
	executor.Register("send_digest", func(ctx context.Context, input map[string]interface{}, approvedAt string) Outcome {
		gotApprovedAt = approvedAt
		return Outcome{
			Output: map[string]interface{}{"approved": true},
			Result: ExecutionResult{Success: true, Message: "digest sent"},
		}
	})

	outcome := executor.Execute(context.Background(), "send_digest", nil)

	assert.Equal(t, "2024-03-15T10:30:00Z", gotApprovedAt)
	assert.Equal(t, "digest sent", outcome.Result.Message)
}

func TestIntField(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]interface{}
		want  int
	}{
		{"float64 from json", map[string]interface{}{"workspace_id": float64(7)}, 7},
		{"native int", map[string]interface{}{"workspace_id": 7}, 7},
		{"int64", map[string]interface{}{"workspace_id": int64(7)}, 7},
		{"missing", map[string]interface{}{}, 0},
		{"wrong type", map[string]interface{}{"workspace_id": "7"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intField(tt.input, "workspace_id"))
		})
	}
}

func TestStringField(t *testing.T) {
	input := map[string]interface{}{"title": "Update docs", "count": float64(2)}
	assert.Equal(t, "Update docs", stringField(input, "title"))
	assert.Equal(t, "", stringField(input, "count"))
	assert.Equal(t, "", stringField(input, "missing"))
}
