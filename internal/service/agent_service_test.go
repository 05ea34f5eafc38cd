// internal/service/agent_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	agentv1 "github.com/workbenchlabs/workbench/api/proto/agent/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/task"
	"github.com/workbenchlabs/workbench/internal/agent"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

var (
	fixedInstant = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	fixedRFC3339 = "2024-03-15T10:30:00Z"
)

func newTestAgentService(client *ent.Client) *AgentService {
	clk := clock.NewFixed(fixedInstant)
	taskRepo := repository.NewEntTaskRepository(client)

	executor := agent.NewExecutor(clk)
	executor.Register(agent.ActionCreateTask, agent.NewCreateTaskHandler(taskRepo))

	return NewAgentService(
		repository.NewEntAgentEventRepository(client),
		repository.NewEntWorkspaceRepository(client),
		executor,
		clk,
	)
}

func mustStruct(t *testing.T, m map[string]interface{}) *structpb.Struct {
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func proposeTestEvent(t *testing.T, svc *AgentService, workspaceID int64, action string, input map[string]interface{}) *agentv1.AgentEvent {
	resp, err := svc.ProposeAction(context.Background(), &agentv1.ProposeActionRequest{
		WorkspaceId: workspaceID,
		Agent:       "meeting-assistant",
		Action:      action,
		Input:       mustStruct(t, input),
	})
	require.NoError(t, err)
	return resp.AgentEvent
}

func TestAgentService_ProposeAction(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	t.Run("creates event awaiting confirmation", func(t *testing.T) {
		input := map[string]interface{}{
			"title":    "Update the docs",
			"priority": "high",
			"nested": map[string]interface{}{
				"count":  2,
				"urgent": true,
				"labels": []interface{}{"docs", "followup"},
			},
			// Date values travel as their textual representation.
			"due_at": "2024-03-20T00:00:00Z",
		}

		resp, err := svc.ProposeAction(ctx, &agentv1.ProposeActionRequest{
			WorkspaceId: int64(workspace.ID),
			Agent:       "meeting-assistant",
			Action:      "create_task",
			Input:       mustStruct(t, input),
			Rationale:   "Docs were mentioned in the meeting.",
		})
		require.NoError(t, err)

		event := resp.AgentEvent
		assert.Equal(t, agentv1.AgentEventStatus_AGENT_EVENT_STATUS_AWAITING_CONFIRMATION, event.Status)
		assert.Equal(t, "meeting-assistant", event.Agent)
		assert.Equal(t, "create_task", event.Action)
		assert.Nil(t, event.Output)
		assert.Equal(t, "Docs were mentioned in the meeting.", resp.Rationale)

		// Input survives the round trip deep-equal.
		want := mustStruct(t, input).AsMap()
		assert.Equal(t, want, event.Input.AsMap())

		// The rationale is not persisted; the stored row carries
		// input verbatim and a null output.
		stored := client.AgentEvent.GetX(ctx, int(event.Id))
		assert.Equal(t, agentevent.StatusAwaitingConfirmation, stored.Status)
		assert.Equal(t, want, stored.Input)
		assert.Nil(t, stored.Output)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		_, err := svc.ProposeAction(ctx, &agentv1.ProposeActionRequest{
			WorkspaceId: 99999,
			Agent:       "meeting-assistant",
			Action:      "create_task",
		})
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Contains(t, st.Message(), "not found")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.ProposeAction(ctx, &agentv1.ProposeActionRequest{
			WorkspaceId: int64(workspace.ID),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestAgentService_ConfirmAction_Reject(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	event := proposeTestEvent(t, svc, int64(workspace.ID), "create_task", map[string]interface{}{
		"title": "Review PR",
	})

	resp, err := svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: false,
	})
	require.NoError(t, err)

	assert.Equal(t, agentv1.AgentEventStatus_AGENT_EVENT_STATUS_ERROR, resp.AgentEvent.Status)
	assert.Nil(t, resp.ExecutionResult)

	stored := client.AgentEvent.GetX(ctx, int(event.Id))
	assert.Equal(t, agentevent.StatusError, stored.Status)
	assert.Equal(t, true, stored.Output["rejected"])
	assert.Equal(t, fixedRFC3339, stored.Output["rejected_at"])
	assert.Equal(t, "User rejected proposal", stored.Output["reason"])

	// No task may appear from a rejected proposal.
	count := client.Task.Query().CountX(ctx)
	assert.Zero(t, count)
}

func TestAgentService_ConfirmAction_CreateTask(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	event := proposeTestEvent(t, svc, int64(workspace.ID), "create_task", map[string]interface{}{
		"workspace_id": workspace.ID,
		"title":        "Update the docs",
		"description":  "Mentioned during standup",
		"priority":     "high",
		"due_at":       "2024-03-20T00:00:00Z",
	})

	resp, err := svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: true,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ExecutionResult)
	assert.True(t, resp.ExecutionResult.Success)
	assert.Equal(t, "Task created successfully", resp.ExecutionResult.Message)
	assert.Equal(t, agentv1.AgentEventStatus_AGENT_EVENT_STATUS_EXECUTED, resp.AgentEvent.Status)

	created := client.Task.Query().Where(task.TitleEQ("Update the docs")).OnlyX(ctx)
	assert.Equal(t, int64(created.ID), resp.ExecutionResult.CreatedTaskId)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, task.PriorityHigh, created.Priority)
	assert.Equal(t, workspace.ID, created.WorkspaceID)
	require.NotNil(t, created.DueAt)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), created.DueAt.UTC())

	stored := client.AgentEvent.GetX(ctx, int(event.Id))
	assert.Equal(t, agentevent.StatusExecuted, stored.Status)
	assert.Equal(t, true, stored.Output["approved"])
	assert.Equal(t, fixedRFC3339, stored.Output["approved_at"])
	assert.Equal(t, "task_created", stored.Output["executed_action"])
	assert.EqualValues(t, created.ID, stored.Output["task_id"])
}

func TestAgentService_ConfirmAction_CreateTaskFailure(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	// The proposal's stored input points at a workspace that does not
	// exist; execution fails but the confirm call must not.
	event := proposeTestEvent(t, svc, int64(workspace.ID), "create_task", map[string]interface{}{
		"workspace_id": 99999,
		"title":        "Orphan task",
	})

	resp, err := svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: true,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ExecutionResult)
	assert.False(t, resp.ExecutionResult.Success)
	assert.NotEmpty(t, resp.ExecutionResult.Error)
	assert.Equal(t, agentv1.AgentEventStatus_AGENT_EVENT_STATUS_ERROR, resp.AgentEvent.Status)

	stored := client.AgentEvent.GetX(ctx, int(event.Id))
	assert.Equal(t, agentevent.StatusError, stored.Status)
	assert.Equal(t, true, stored.Output["approved"])
	assert.Equal(t, fixedRFC3339, stored.Output["approved_at"])
	assert.NotEmpty(t, stored.Output["execution_error"])

	// The failed insert leaves no partial task behind.
	count := client.Task.Query().CountX(ctx)
	assert.Zero(t, count)
}

func TestAgentService_ConfirmAction_GenericAction(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	event := proposeTestEvent(t, svc, int64(workspace.ID), "create_calendar_event", map[string]interface{}{
		"title": "Planning",
	})

	resp, err := svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: true,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ExecutionResult)
	assert.True(t, resp.ExecutionResult.Success)
	assert.Equal(t, "Action create_calendar_event executed successfully", resp.ExecutionResult.Message)
	assert.Equal(t, agentv1.AgentEventStatus_AGENT_EVENT_STATUS_EXECUTED, resp.AgentEvent.Status)

	stored := client.AgentEvent.GetX(ctx, int(event.Id))
	assert.Equal(t, agentevent.StatusExecuted, stored.Status)
	assert.Equal(t, "create_calendar_event", stored.Output["executed_action"])
	assert.Equal(t, fixedRFC3339, stored.Output["approved_at"])
}

func TestAgentService_ConfirmAction_InvalidState(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	event := proposeTestEvent(t, svc, int64(workspace.ID), "noop", map[string]interface{}{})

	_, err := svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: true,
	})
	require.NoError(t, err)

	// Second confirmation finds the event already resolved; the error
	// names the actual status.
	_, err = svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: true,
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Contains(t, st.Message(), "not awaiting confirmation")
	assert.Contains(t, st.Message(), "executed")
}

func TestAgentService_ConfirmAction_NotFound(t *testing.T) {
	client := setupTestDB(t)
	svc := newTestAgentService(client)

	_, err := svc.ConfirmAction(context.Background(), &agentv1.ConfirmActionRequest{
		EventId:  12345,
		Approved: true,
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Contains(t, st.Message(), "not found")
}

func TestAgentEventRepository_ConditionalTransition(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	repo := repository.NewEntAgentEventRepository(client)
	event, err := repo.Create(ctx, &repository.AgentEventInput{
		WorkspaceID: workspace.ID,
		Agent:       "meeting-assistant",
		Action:      "noop",
		Input:       map[string]interface{}{},
	})
	require.NoError(t, err)

	output := map[string]interface{}{"approved": true}

	affected, err := repo.TransitionFromAwaiting(ctx, event.ID, "executed", output)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	// The guard fails for anyone who lost the race.
	affected, err = repo.TransitionFromAwaiting(ctx, event.ID, "error", output)
	require.NoError(t, err)
	assert.Zero(t, affected)

	stored := client.AgentEvent.GetX(ctx, event.ID)
	assert.Equal(t, agentevent.StatusExecuted, stored.Status)
}

func TestAgentService_ListAgentEvents(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestAgentService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	first := proposeTestEvent(t, svc, int64(workspace.ID), "noop", map[string]interface{}{})
	proposeTestEvent(t, svc, int64(workspace.ID), "create_task", map[string]interface{}{})

	_, err := svc.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{EventId: first.Id, Approved: false})
	require.NoError(t, err)

	resp, err := svc.ListAgentEvents(ctx, &agentv1.ListAgentEventsRequest{
		WorkspaceId: int64(workspace.ID),
		Status:      agentv1.AgentEventStatus_AGENT_EVENT_STATUS_AWAITING_CONFIRMATION,
	})
	require.NoError(t, err)
	require.Len(t, resp.AgentEvents, 1)
	assert.Equal(t, "create_task", resp.AgentEvents[0].Action)
	assert.Equal(t, int32(1), resp.TotalCount)
}
