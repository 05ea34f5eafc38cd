// internal/repository/ent_reminder_repository.go
package repository

import (
	"context"
	"time"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/reminder"
	"github.com/workbenchlabs/workbench/ent/generated/task"
)

type EntReminderRepository struct {
	client *ent.Client
}

func NewEntReminderRepository(client *ent.Client) *EntReminderRepository {
	return &EntReminderRepository{
		client: client,
	}
}

func (r *EntReminderRepository) Create(ctx context.Context, input *ReminderInput) (*ent.Reminder, error) {
	create := r.client.Reminder.
		Create().
		SetTaskID(input.TaskID).
		SetRemindAt(input.RemindAt)

	if input.Method != "" {
		create = create.SetMethod(reminder.Method(input.Method))
	}

	return create.Save(ctx)
}

func (r *EntReminderRepository) GetByID(ctx context.Context, id int) (*ent.Reminder, error) {
	return r.client.Reminder.
		Query().
		Where(reminder.ID(id)).
		Only(ctx)
}

// ListUpcoming returns scheduled reminders with remind_at strictly
// after now, soonest first.
func (r *EntReminderRepository) ListUpcoming(ctx context.Context, filter UpcomingFilter) ([]*ent.Reminder, error) {
	query := r.client.Reminder.
		Query().
		Where(
			reminder.StatusEQ(reminder.StatusScheduled),
			reminder.RemindAtGT(filter.Now),
		)

	if filter.WorkspaceID != nil {
		query = query.Where(reminder.HasTaskWith(task.WorkspaceID(*filter.WorkspaceID)))
	}
	if filter.TaskID != nil {
		query = query.Where(reminder.TaskID(*filter.TaskID))
	}

	query = query.Order(ent.Asc(reminder.FieldRemindAt))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.All(ctx)
}

// UpdateStatus moves a reminder to the given status.
func (r *EntReminderRepository) UpdateStatus(ctx context.Context, id int, status string) (*ent.Reminder, error) {
	return r.client.Reminder.
		UpdateOneID(id).
		SetStatus(reminder.Status(status)).
		Save(ctx)
}

// Types for repository input
type ReminderInput struct {
	TaskID   int
	RemindAt time.Time
	Method   string
}

type UpcomingFilter struct {
	Now         time.Time
	WorkspaceID *int
	TaskID      *int
	Limit       int
}
