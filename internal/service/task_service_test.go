// internal/service/task_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taskv1 "github.com/workbenchlabs/workbench/api/proto/task/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/task"
	"github.com/workbenchlabs/workbench/internal/repository"
)

func newTestTaskService(client *ent.Client) *TaskService {
	return NewTaskService(repository.NewEntTaskRepository(client))
}

func TestTaskService_CreateTask(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestTaskService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	t.Run("defaults", func(t *testing.T) {
		resp, err := svc.CreateTask(ctx, &taskv1.CreateTaskRequest{
			WorkspaceId: int64(workspace.ID),
			Title:       "Write release notes",
		})
		require.NoError(t, err)
		assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_TODO, resp.Task.Status)
		assert.Equal(t, taskv1.Priority_PRIORITY_MED, resp.Task.Priority)
		assert.Equal(t, int64(workspace.ID), resp.Task.WorkspaceId)
	})

	t.Run("explicit fields", func(t *testing.T) {
		resp, err := svc.CreateTask(ctx, &taskv1.CreateTaskRequest{
			WorkspaceId: int64(workspace.ID),
			Title:       "Fix flaky deploy",
			Description: "Fails on the second retry",
			Status:      taskv1.TaskStatus_TASK_STATUS_DOING,
			Priority:    taskv1.Priority_PRIORITY_HIGH,
			AssigneeId:  int64(owner.ID),
		})
		require.NoError(t, err)
		assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_DOING, resp.Task.Status)
		assert.Equal(t, taskv1.Priority_PRIORITY_HIGH, resp.Task.Priority)
		assert.Equal(t, int64(owner.ID), resp.Task.AssigneeId)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, &taskv1.CreateTaskRequest{
			WorkspaceId: int64(workspace.ID),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestTaskService_GetTask(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestTaskService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	created := helpers.CreateTestTask(workspace.ID, "Triage inbox")

	resp, err := svc.GetTask(ctx, &taskv1.GetTaskRequest{Id: int64(created.ID)})
	require.NoError(t, err)
	assert.Equal(t, "Triage inbox", resp.Task.Title)

	_, err = svc.GetTask(ctx, &taskv1.GetTaskRequest{Id: 99999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTaskService_UpdateTask(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestTaskService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	created := helpers.CreateTestTask(workspace.ID, "Draft proposal")

	resp, err := svc.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:       int64(created.ID),
		Title:    "Draft and circulate proposal",
		Status:   taskv1.TaskStatus_TASK_STATUS_DONE,
		Priority: taskv1.Priority_PRIORITY_LOW,
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft and circulate proposal", resp.Task.Title)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_DONE, resp.Task.Status)
	assert.Equal(t, taskv1.Priority_PRIORITY_LOW, resp.Task.Priority)

	_, err = svc.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:    99999,
		Title: "Ghost",
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTaskService_ListTasks(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestTaskService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	helpers.CreateTestTask(workspace.ID, "First")
	second := helpers.CreateTestTask(workspace.ID, "Second")
	_, err := second.Update().SetStatus(task.StatusDoing).Save(ctx)
	require.NoError(t, err)

	all, err := svc.ListTasks(ctx, &taskv1.ListTasksRequest{
		WorkspaceId: int64(workspace.ID),
	})
	require.NoError(t, err)
	assert.Len(t, all.Tasks, 2)
	assert.Equal(t, int32(2), all.TotalCount)

	doing, err := svc.ListTasks(ctx, &taskv1.ListTasksRequest{
		WorkspaceId: int64(workspace.ID),
		Status:      taskv1.TaskStatus_TASK_STATUS_DOING,
	})
	require.NoError(t, err)
	require.Len(t, doing.Tasks, 1)
	assert.Equal(t, "Second", doing.Tasks[0].Title)
}

func TestTaskService_BatchUpdateTaskStatus(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestTaskService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	first := helpers.CreateTestTask(workspace.ID, "First")
	second := helpers.CreateTestTask(workspace.ID, "Second")

	resp, err := svc.BatchUpdateTaskStatus(ctx, &taskv1.BatchUpdateTaskStatusRequest{
		Ids:    []int64{int64(first.ID), int64(second.ID)},
		Status: taskv1.TaskStatus_TASK_STATUS_DONE,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.UpdatedCount)

	done := client.Task.Query().Where(task.StatusEQ(task.StatusDone)).CountX(ctx)
	assert.Equal(t, 2, done)

	t.Run("unknown id rolls back the batch", func(t *testing.T) {
		third := helpers.CreateTestTask(workspace.ID, "Third")

		_, err := svc.BatchUpdateTaskStatus(ctx, &taskv1.BatchUpdateTaskStatusRequest{
			Ids:    []int64{int64(third.ID), 99999},
			Status: taskv1.TaskStatus_TASK_STATUS_DOING,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))

		reloaded := client.Task.GetX(ctx, third.ID)
		assert.Equal(t, task.StatusTodo, reloaded.Status)
	})

	t.Run("empty ids", func(t *testing.T) {
		_, err := svc.BatchUpdateTaskStatus(ctx, &taskv1.BatchUpdateTaskStatusRequest{
			Status: taskv1.TaskStatus_TASK_STATUS_DONE,
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unspecified status", func(t *testing.T) {
		_, err := svc.BatchUpdateTaskStatus(ctx, &taskv1.BatchUpdateTaskStatusRequest{
			Ids: []int64{int64(first.ID)},
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestTaskService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	created := helpers.CreateTestTask(workspace.ID, "Disposable")

	_, err := svc.DeleteTask(ctx, &taskv1.DeleteTaskRequest{Id: int64(created.ID)})
	require.NoError(t, err)

	_, err = svc.GetTask(ctx, &taskv1.GetTaskRequest{Id: int64(created.ID)})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
