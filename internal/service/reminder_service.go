// internal/service/reminder_service.go
package service

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	reminderv1 "github.com/workbenchlabs/workbench/api/proto/reminder/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/reminder"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

type ReminderService struct {
	reminderv1.UnimplementedReminderServiceServer
	repo  *repository.EntReminderRepository
	clock clock.Clock
}

func NewReminderService(repo *repository.EntReminderRepository, clk clock.Clock) *ReminderService {
	return &ReminderService{
		repo:  repo,
		clock: clk,
	}
}

// CreateReminder schedules a reminder for a task
func (s *ReminderService) CreateReminder(ctx context.Context, req *reminderv1.CreateReminderRequest) (*reminderv1.CreateReminderResponse, error) {
	if req.TaskId == 0 {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	if req.RemindAt == nil {
		return nil, status.Error(codes.InvalidArgument, "remind_at is required")
	}

	created, err := s.repo.Create(ctx, &repository.ReminderInput{
		TaskID:   int(req.TaskId),
		RemindAt: req.RemindAt.AsTime(),
		Method:   convertReminderMethodToString(req.Method),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create reminder: %v", err)
	}

	return &reminderv1.CreateReminderResponse{
		Reminder: convertEntReminderToProto(created),
	}, nil
}

// ListUpcomingReminders returns scheduled reminders that have not
// fired yet, soonest first.
func (s *ReminderService) ListUpcomingReminders(ctx context.Context, req *reminderv1.ListUpcomingRemindersRequest) (*reminderv1.ListUpcomingRemindersResponse, error) {
	filter := repository.UpcomingFilter{
		Now:   s.clock.Now(),
		Limit: int(req.Limit),
	}

	if req.WorkspaceId != 0 {
		workspaceID := int(req.WorkspaceId)
		filter.WorkspaceID = &workspaceID
	}
	if req.TaskId != 0 {
		taskID := int(req.TaskId)
		filter.TaskID = &taskID
	}

	reminders, err := s.repo.ListUpcoming(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list reminders: %v", err)
	}

	protoReminders := make([]*reminderv1.Reminder, len(reminders))
	for i, r := range reminders {
		protoReminders[i] = convertEntReminderToProto(r)
	}

	return &reminderv1.ListUpcomingRemindersResponse{
		Reminders: protoReminders,
	}, nil
}

// CancelReminder cancels a scheduled reminder; sent or already
// cancelled reminders are left alone.
func (s *ReminderService) CancelReminder(ctx context.Context, req *reminderv1.CancelReminderRequest) (*reminderv1.CancelReminderResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	current, err := s.repo.GetByID(ctx, int(req.Id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "reminder not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get reminder: %v", err)
	}

	if current.Status != reminder.StatusScheduled {
		return nil, status.Error(codes.FailedPrecondition,
			fmt.Sprintf("reminder is not scheduled (current status: %s)", current.Status))
	}

	updated, err := s.repo.UpdateStatus(ctx, int(req.Id), "cancelled")
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to cancel reminder: %v", err)
	}

	return &reminderv1.CancelReminderResponse{
		Reminder: convertEntReminderToProto(updated),
	}, nil
}

// Helper functions

func convertEntReminderToProto(r *ent.Reminder) *reminderv1.Reminder {
	return &reminderv1.Reminder{
		Id:        int64(r.ID),
		TaskId:    int64(r.TaskID),
		RemindAt:  timestamppb.New(r.RemindAt),
		Method:    convertStringToReminderMethod(string(r.Method)),
		Status:    convertStringToReminderStatus(string(r.Status)),
		CreatedAt: timestamppb.New(r.CreatedAt),
	}
}

func convertReminderMethodToString(method reminderv1.ReminderMethod) string {
	switch method {
	case reminderv1.ReminderMethod_REMINDER_METHOD_APP_PUSH:
		return "app_push"
	case reminderv1.ReminderMethod_REMINDER_METHOD_EMAIL:
		return "email"
	case reminderv1.ReminderMethod_REMINDER_METHOD_CALENDAR:
		return "calendar"
	default:
		return ""
	}
}

func convertStringToReminderMethod(method string) reminderv1.ReminderMethod {
	switch method {
	case "app_push":
		return reminderv1.ReminderMethod_REMINDER_METHOD_APP_PUSH
	case "email":
		return reminderv1.ReminderMethod_REMINDER_METHOD_EMAIL
	case "calendar":
		return reminderv1.ReminderMethod_REMINDER_METHOD_CALENDAR
	default:
		return reminderv1.ReminderMethod_REMINDER_METHOD_UNSPECIFIED
	}
}

func convertStringToReminderStatus(status string) reminderv1.ReminderStatus {
	switch status {
	case "scheduled":
		return reminderv1.ReminderStatus_REMINDER_STATUS_SCHEDULED
	case "sent":
		return reminderv1.ReminderStatus_REMINDER_STATUS_SENT
	case "cancelled":
		return reminderv1.ReminderStatus_REMINDER_STATUS_CANCELLED
	default:
		return reminderv1.ReminderStatus_REMINDER_STATUS_UNSPECIFIED
	}
}
