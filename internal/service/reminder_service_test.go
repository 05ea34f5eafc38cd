// internal/service/reminder_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	reminderv1 "github.com/workbenchlabs/workbench/api/proto/reminder/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

func newTestReminderService(client *ent.Client) *ReminderService {
	return NewReminderService(
		repository.NewEntReminderRepository(client),
		clock.NewFixed(fixedInstant),
	)
}

func TestReminderService_CreateReminder(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestReminderService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	task := helpers.CreateTestTask(workspace.ID, "Prep demo")

	resp, err := svc.CreateReminder(ctx, &reminderv1.CreateReminderRequest{
		TaskId:   int64(task.ID),
		RemindAt: timestamppb.New(fixedInstant.Add(24 * time.Hour)),
	})
	require.NoError(t, err)

	// Method and status fall back to the schema defaults.
	assert.Equal(t, reminderv1.ReminderMethod_REMINDER_METHOD_APP_PUSH, resp.Reminder.Method)
	assert.Equal(t, reminderv1.ReminderStatus_REMINDER_STATUS_SCHEDULED, resp.Reminder.Status)
	assert.Equal(t, int64(task.ID), resp.Reminder.TaskId)

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.CreateReminder(ctx, &reminderv1.CreateReminderRequest{
			TaskId:   99999,
			RemindAt: timestamppb.New(fixedInstant.Add(time.Hour)),
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("missing remind_at", func(t *testing.T) {
		_, err := svc.CreateReminder(ctx, &reminderv1.CreateReminderRequest{
			TaskId: int64(task.ID),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestReminderService_ListUpcomingReminders(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestReminderService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	otherWorkspace := helpers.CreateTestWorkspace(owner.ID, "Archive")
	task := helpers.CreateTestTask(workspace.ID, "Prep demo")
	otherTask := helpers.CreateTestTask(otherWorkspace.ID, "Old work")

	later := helpers.CreateTestReminder(task.ID, fixedInstant.Add(48*time.Hour))
	sooner := helpers.CreateTestReminder(task.ID, fixedInstant.Add(2*time.Hour))
	past := helpers.CreateTestReminder(task.ID, fixedInstant.Add(-time.Hour))
	helpers.CreateTestReminder(otherTask.ID, fixedInstant.Add(time.Hour))

	cancelled := helpers.CreateTestReminder(task.ID, fixedInstant.Add(3*time.Hour))
	_, err := svc.CancelReminder(ctx, &reminderv1.CancelReminderRequest{Id: int64(cancelled.ID)})
	require.NoError(t, err)

	resp, err := svc.ListUpcomingReminders(ctx, &reminderv1.ListUpcomingRemindersRequest{
		WorkspaceId: int64(workspace.ID),
	})
	require.NoError(t, err)

	// Past and cancelled reminders are excluded; the rest come back
	// soonest first.
	require.Len(t, resp.Reminders, 2)
	assert.Equal(t, int64(sooner.ID), resp.Reminders[0].Id)
	assert.Equal(t, int64(later.ID), resp.Reminders[1].Id)
	for _, r := range resp.Reminders {
		assert.NotEqual(t, int64(past.ID), r.Id)
		assert.NotEqual(t, int64(cancelled.ID), r.Id)
	}
}

func TestReminderService_CancelReminder(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestReminderService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	task := helpers.CreateTestTask(workspace.ID, "Prep demo")
	created := helpers.CreateTestReminder(task.ID, fixedInstant.Add(time.Hour))

	resp, err := svc.CancelReminder(ctx, &reminderv1.CancelReminderRequest{Id: int64(created.ID)})
	require.NoError(t, err)
	assert.Equal(t, reminderv1.ReminderStatus_REMINDER_STATUS_CANCELLED, resp.Reminder.Status)

	// Cancelling twice trips the status guard.
	_, err = svc.CancelReminder(ctx, &reminderv1.CancelReminderRequest{Id: int64(created.ID)})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Contains(t, st.Message(), "not scheduled")
	assert.Contains(t, st.Message(), "cancelled")

	_, err = svc.CancelReminder(ctx, &reminderv1.CancelReminderRequest{Id: 99999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
