// internal/repository/ent_task_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
	"github.com/workbenchlabs/workbench/ent/generated/task"
)

type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

func (r *EntTaskRepository) Create(ctx context.Context, t *TaskInput) (*ent.Task, error) {
	create := r.client.Task.
		Create().
		SetWorkspaceID(t.WorkspaceID).
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetNillableDueAt(t.DueAt).
		SetNillableAssigneeID(t.AssigneeID).
		SetNillableLinkedNoteID(t.LinkedNoteID)

	// Defaults for status/priority are applied by the schema when absent
	if t.Status != "" {
		create = create.SetStatus(task.Status(t.Status))
	}
	if t.Priority != "" {
		create = create.SetPriority(task.Priority(t.Priority))
	}

	return create.Save(ctx)
}

func (r *EntTaskRepository) GetByID(ctx context.Context, id int) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ID(id)).
		Only(ctx)
}

func (r *EntTaskRepository) List(ctx context.Context, filter TaskListFilter) ([]*ent.Task, int, error) {
	query := r.client.Task.Query()

	var predicates []predicate.Task

	if filter.WorkspaceID != nil {
		predicates = append(predicates, task.WorkspaceID(*filter.WorkspaceID))
	}

	if filter.Status != nil {
		predicates = append(predicates, task.StatusEQ(task.Status(*filter.Status)))
	}

	if filter.Priority != nil {
		predicates = append(predicates, task.PriorityEQ(task.Priority(*filter.Priority)))
	}

	if filter.AssigneeID != nil {
		predicates = append(predicates, task.AssigneeID(*filter.AssigneeID))
	}

	if filter.Search != "" {
		// Search in title and description
		predicates = append(predicates, task.Or(
			task.TitleContainsFold(filter.Search),
			task.DescriptionContainsFold(filter.Search),
		))
	}

	if len(predicates) > 0 {
		query = query.Where(predicates...)
	}

	// Get total count before pagination
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	// Apply sorting
	switch filter.SortBy {
	case "created_at":
		if filter.SortOrder == "asc" {
			query = query.Order(ent.Asc(task.FieldCreatedAt))
		} else {
			query = query.Order(ent.Desc(task.FieldCreatedAt))
		}
	case "due_at":
		if filter.SortOrder == "desc" {
			query = query.Order(ent.Desc(task.FieldDueAt))
		} else {
			query = query.Order(ent.Asc(task.FieldDueAt))
		}
	case "priority":
		// Custom order for priority
		query = query.Order(func(s *sql.Selector) {
			s.OrderExpr(sql.ExprP(
				"CASE priority WHEN 'high' THEN 1 WHEN 'med' THEN 2 WHEN 'low' THEN 3 END",
			))
		})
	default:
		query = query.Order(ent.Desc(task.FieldCreatedAt))
	}

	// Apply pagination
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	tasks, err := query.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, totalCount, nil
}

func (r *EntTaskRepository) Update(ctx context.Context, id int, input *TaskUpdateInput) (*ent.Task, error) {
	update := r.client.Task.UpdateOneID(id)

	if input.Title != nil {
		update = update.SetTitle(*input.Title)
	}
	if input.Description != nil {
		update = update.SetDescription(*input.Description)
	}
	if input.Status != nil {
		update = update.SetStatus(task.Status(*input.Status))
	}
	if input.Priority != nil {
		update = update.SetPriority(task.Priority(*input.Priority))
	}
	if input.DueAt != nil {
		update = update.SetDueAt(*input.DueAt)
	}
	if input.AssigneeID != nil {
		if *input.AssigneeID == 0 {
			update = update.ClearAssignee()
		} else {
			update = update.SetAssigneeID(*input.AssigneeID)
		}
	}
	if input.LinkedNoteID != nil {
		if *input.LinkedNoteID == 0 {
			update = update.ClearLinkedNote()
		} else {
			update = update.SetLinkedNoteID(*input.LinkedNoteID)
		}
	}

	return update.Save(ctx)
}

func (r *EntTaskRepository) Delete(ctx context.Context, id int) error {
	return r.client.Task.
		DeleteOneID(id).
		Exec(ctx)
}

// UpdateStatusBatch moves a set of tasks to a status inside one transaction.
func (r *EntTaskRepository) UpdateStatusBatch(ctx context.Context, ids []int, status string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	for _, id := range ids {
		if err := tx.Task.UpdateOneID(id).SetStatus(task.Status(status)).Exec(ctx); err != nil {
			return rollback(tx, fmt.Errorf("update task %d: %w", id, err))
		}
	}

	return tx.Commit()
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

// Types for repository input
type TaskInput struct {
	WorkspaceID  int
	Title        string
	Description  string
	Status       string
	Priority     string
	DueAt        *time.Time
	AssigneeID   *int
	LinkedNoteID *int
}

type TaskUpdateInput struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	DueAt        *time.Time
	AssigneeID   *int
	LinkedNoteID *int
}

type TaskListFilter struct {
	WorkspaceID *int
	Status      *string
	Priority    *string
	AssigneeID  *int
	Search      string
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}
