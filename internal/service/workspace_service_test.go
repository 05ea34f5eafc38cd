// internal/service/workspace_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	workspacev1 "github.com/workbenchlabs/workbench/api/proto/workspace/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/ent/generated/task"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

func newTestWorkspaceService(t *testing.T, client *ent.Client) *WorkspaceService {
	statsDB := setupStatsDB(t)
	return NewWorkspaceService(
		repository.NewEntWorkspaceRepository(client),
		repository.NewStatsRepository(statsDB),
		clock.NewFixed(fixedInstant),
	)
}

func TestWorkspaceService_CreateAndList(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestWorkspaceService(t, client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")

	created, err := svc.CreateWorkspace(ctx, &workspacev1.CreateWorkspaceRequest{
		OwnerId: int64(owner.ID),
		Name:    "Personal",
	})
	require.NoError(t, err)
	assert.Equal(t, "Personal", created.Workspace.Name)
	assert.Equal(t, int64(owner.ID), created.Workspace.OwnerId)

	_, err = svc.CreateWorkspace(ctx, &workspacev1.CreateWorkspaceRequest{
		OwnerId: int64(owner.ID),
		Name:    "Work",
	})
	require.NoError(t, err)

	list, err := svc.ListWorkspaces(ctx, &workspacev1.ListWorkspacesRequest{
		OwnerId: int64(owner.ID),
	})
	require.NoError(t, err)
	assert.Len(t, list.Workspaces, 2)

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.CreateWorkspace(ctx, &workspacev1.CreateWorkspaceRequest{
			OwnerId: 99999,
			Name:    "Orphan",
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})
}

func TestWorkspaceService_GetWorkspace(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestWorkspaceService(t, client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	resp, err := svc.GetWorkspace(ctx, &workspacev1.GetWorkspaceRequest{Id: int64(workspace.ID)})
	require.NoError(t, err)
	assert.Equal(t, "Inbox", resp.Workspace.Name)

	_, err = svc.GetWorkspace(ctx, &workspacev1.GetWorkspaceRequest{Id: 99999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWorkspaceService_GetWorkspaceStats(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestWorkspaceService(t, client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	helpers.CreateTestTask(workspace.ID, "First")
	helpers.CreateTestTask(workspace.ID, "Second")
	doing := helpers.CreateTestTask(workspace.ID, "Third")
	_, err := doing.Update().SetStatus(task.StatusDoing).Save(ctx)
	require.NoError(t, err)

	client.Note.Create().
		SetWorkspaceID(workspace.ID).
		SetCreatedBy(owner.ID).
		SetTitle("Kickoff").
		SetSource(note.SourceManual).
		SaveX(ctx)

	helpers.CreateTestReminder(doing.ID, fixedInstant.Add(time.Hour))
	helpers.CreateTestReminder(doing.ID, fixedInstant.Add(-time.Hour))

	client.AgentEvent.Create().
		SetWorkspaceID(workspace.ID).
		SetAgent("meeting-assistant").
		SetAction("create_task").
		SetInput(map[string]interface{}{}).
		SetStatus(agentevent.StatusAwaitingConfirmation).
		SaveX(ctx)

	resp, err := svc.GetWorkspaceStats(ctx, &workspacev1.GetWorkspaceStatsRequest{
		WorkspaceId: int64(workspace.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.TasksTodo)
	assert.Equal(t, int64(1), resp.TasksDoing)
	assert.Equal(t, int64(0), resp.TasksDone)
	assert.Equal(t, int64(1), resp.NoteCount)
	assert.Equal(t, int64(1), resp.UpcomingReminders)
	assert.Equal(t, int64(1), resp.PendingProposals)

	t.Run("unknown workspace", func(t *testing.T) {
		_, err := svc.GetWorkspaceStats(ctx, &workspacev1.GetWorkspaceStatsRequest{
			WorkspaceId: 99999,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
