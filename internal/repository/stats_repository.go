// internal/repository/stats_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// WorkspaceStats is the aggregate read model behind GetWorkspaceStats.
type WorkspaceStats struct {
	TasksTodo        int `db:"tasks_todo"`
	TasksDoing       int `db:"tasks_doing"`
	TasksDone        int `db:"tasks_done"`
	NoteCount        int `db:"note_count"`
	UpcomingReminder int `db:"upcoming_reminders"`
	PendingProposals int `db:"pending_proposals"`
}

// StatsRepository answers aggregate queries with raw SQL; a single
// round trip instead of one count query per metric.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

const workspaceStatsQuery = `
SELECT
    (SELECT COUNT(*) FROM tasks WHERE workspace_id = ? AND status = 'todo')  AS tasks_todo,
    (SELECT COUNT(*) FROM tasks WHERE workspace_id = ? AND status = 'doing') AS tasks_doing,
    (SELECT COUNT(*) FROM tasks WHERE workspace_id = ? AND status = 'done')  AS tasks_done,
    (SELECT COUNT(*) FROM notes WHERE workspace_id = ?)                      AS note_count,
    (SELECT COUNT(*)
       FROM reminders r
       JOIN tasks t ON r.task_id = t.id
      WHERE t.workspace_id = ?
        AND r.status = 'scheduled'
        AND r.remind_at > ?)                                                 AS upcoming_reminders,
    (SELECT COUNT(*)
       FROM agent_events
      WHERE workspace_id = ?
        AND status = 'awaiting_confirmation')                                AS pending_proposals`

// GetWorkspaceStats collects counters for a single workspace.
func (r *StatsRepository) GetWorkspaceStats(ctx context.Context, workspaceID int, now time.Time) (*WorkspaceStats, error) {
	var stats WorkspaceStats
	query := r.db.Rebind(workspaceStatsQuery)
	err := r.db.GetContext(ctx, &stats, query,
		workspaceID, workspaceID, workspaceID, workspaceID, workspaceID, now, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("workspace stats: %w", err)
	}
	return &stats, nil
}
