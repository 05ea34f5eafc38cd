// internal/service/task_service.go
package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	taskv1 "github.com/workbenchlabs/workbench/api/proto/task/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/internal/repository"
)

type TaskService struct {
	taskv1.UnimplementedTaskServiceServer
	repo *repository.EntTaskRepository
}

func NewTaskService(repo *repository.EntTaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// CreateTask creates a new task
func (s *TaskService) CreateTask(ctx context.Context, req *taskv1.CreateTaskRequest) (*taskv1.CreateTaskResponse, error) {
	if req.WorkspaceId == 0 {
		return nil, status.Error(codes.InvalidArgument, "workspace_id is required")
	}
	if req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}

	input := &repository.TaskInput{
		WorkspaceID: int(req.WorkspaceId),
		Title:       req.Title,
		Description: req.Description,
		Status:      convertTaskStatusToString(req.Status),
		Priority:    convertPriorityToString(req.Priority),
	}

	if req.DueAt != nil {
		dueAt := req.DueAt.AsTime()
		input.DueAt = &dueAt
	}
	if req.AssigneeId != 0 {
		assigneeID := int(req.AssigneeId)
		input.AssigneeID = &assigneeID
	}
	if req.LinkedNoteId != 0 {
		linkedNoteID := int(req.LinkedNoteId)
		input.LinkedNoteID = &linkedNoteID
	}

	task, err := s.repo.Create(ctx, input)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create task: %v", err)
	}

	return &taskv1.CreateTaskResponse{
		Task: convertEntTaskToProto(task),
	}, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, req *taskv1.GetTaskRequest) (*taskv1.GetTaskResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	task, err := s.repo.GetByID(ctx, int(req.Id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	return &taskv1.GetTaskResponse{
		Task: convertEntTaskToProto(task),
	}, nil
}

// ListTasks retrieves a list of tasks
func (s *TaskService) ListTasks(ctx context.Context, req *taskv1.ListTasksRequest) (*taskv1.ListTasksResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := repository.TaskListFilter{
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Limit:     int(pageSize),
		Offset:    int(req.Offset),
	}

	if req.WorkspaceId != 0 {
		workspaceID := int(req.WorkspaceId)
		filter.WorkspaceID = &workspaceID
	}

	if req.Status != taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		statusStr := convertTaskStatusToString(req.Status)
		filter.Status = &statusStr
	}

	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		priority := convertPriorityToString(req.Priority)
		filter.Priority = &priority
	}

	tasks, totalCount, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list tasks: %v", err)
	}

	protoTasks := make([]*taskv1.Task, len(tasks))
	for i, task := range tasks {
		protoTasks[i] = convertEntTaskToProto(task)
	}

	return &taskv1.ListTasksResponse{
		Tasks:      protoTasks,
		TotalCount: int32(totalCount),
	}, nil
}

// UpdateTask updates an existing task
func (s *TaskService) UpdateTask(ctx context.Context, req *taskv1.UpdateTaskRequest) (*taskv1.UpdateTaskResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	input := &repository.TaskUpdateInput{}

	if req.Title != "" {
		input.Title = &req.Title
	}
	if req.Description != "" {
		input.Description = &req.Description
	}
	if req.Status != taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		statusStr := convertTaskStatusToString(req.Status)
		input.Status = &statusStr
	}
	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		priority := convertPriorityToString(req.Priority)
		input.Priority = &priority
	}
	if req.DueAt != nil {
		dueAt := req.DueAt.AsTime()
		input.DueAt = &dueAt
	}
	if req.AssigneeId != 0 {
		assigneeID := int(req.AssigneeId)
		input.AssigneeID = &assigneeID
	}
	if req.LinkedNoteId != 0 {
		linkedNoteID := int(req.LinkedNoteId)
		input.LinkedNoteID = &linkedNoteID
	}

	task, err := s.repo.Update(ctx, int(req.Id), input)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to update task: %v", err)
	}

	return &taskv1.UpdateTaskResponse{
		Task: convertEntTaskToProto(task),
	}, nil
}

// DeleteTask deletes a task
// BatchUpdateTaskStatus moves several tasks to one status in a single
// transaction; an unknown id rolls the whole batch back.
func (s *TaskService) BatchUpdateTaskStatus(ctx context.Context, req *taskv1.BatchUpdateTaskStatusRequest) (*taskv1.BatchUpdateTaskStatusResponse, error) {
	if len(req.Ids) == 0 {
		return nil, status.Error(codes.InvalidArgument, "ids is required")
	}
	if req.Status == taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	ids := make([]int, len(req.Ids))
	for i, id := range req.Ids {
		ids[i] = int(id)
	}

	if err := s.repo.UpdateStatusBatch(ctx, ids, convertTaskStatusToString(req.Status)); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update tasks: %v", err)
	}

	return &taskv1.BatchUpdateTaskStatusResponse{
		UpdatedCount: int32(len(ids)),
	}, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, req *taskv1.DeleteTaskRequest) (*emptypb.Empty, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.repo.Delete(ctx, int(req.Id)); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete task: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// Helper functions

func convertEntTaskToProto(task *ent.Task) *taskv1.Task {
	proto := &taskv1.Task{
		Id:          int64(task.ID),
		WorkspaceId: int64(task.WorkspaceID),
		Title:       task.Title,
		Description: task.Description,
		Status:      convertStringToTaskStatus(string(task.Status)),
		Priority:    convertStringToPriority(string(task.Priority)),
		CreatedAt:   timestamppb.New(task.CreatedAt),
		UpdatedAt:   timestamppb.New(task.UpdatedAt),
	}

	if task.DueAt != nil {
		proto.DueAt = timestamppb.New(*task.DueAt)
	}
	if task.AssigneeID != nil {
		proto.AssigneeId = int64(*task.AssigneeID)
	}
	if task.LinkedNoteID != nil {
		proto.LinkedNoteId = int64(*task.LinkedNoteID)
	}

	return proto
}

func convertTaskStatusToString(status taskv1.TaskStatus) string {
	switch status {
	case taskv1.TaskStatus_TASK_STATUS_TODO:
		return "todo"
	case taskv1.TaskStatus_TASK_STATUS_DOING:
		return "doing"
	case taskv1.TaskStatus_TASK_STATUS_DONE:
		return "done"
	default:
		return ""
	}
}

func convertStringToTaskStatus(status string) taskv1.TaskStatus {
	switch status {
	case "todo":
		return taskv1.TaskStatus_TASK_STATUS_TODO
	case "doing":
		return taskv1.TaskStatus_TASK_STATUS_DOING
	case "done":
		return taskv1.TaskStatus_TASK_STATUS_DONE
	default:
		return taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func convertPriorityToString(priority taskv1.Priority) string {
	switch priority {
	case taskv1.Priority_PRIORITY_LOW:
		return "low"
	case taskv1.Priority_PRIORITY_MED:
		return "med"
	case taskv1.Priority_PRIORITY_HIGH:
		return "high"
	default:
		return ""
	}
}

func convertStringToPriority(priority string) taskv1.Priority {
	switch priority {
	case "low":
		return taskv1.Priority_PRIORITY_LOW
	case "med":
		return taskv1.Priority_PRIORITY_MED
	case "high":
		return taskv1.Priority_PRIORITY_HIGH
	default:
		return taskv1.Priority_PRIORITY_UNSPECIFIED
	}
}
