// internal/service/test_helpers.go
package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/enttest"

	_ "github.com/mattn/go-sqlite3"
)

// testDSN builds a per-test shared-cache DSN so the ent client and a
// raw sqlx handle can see the same in-memory database.
func testDSN(t *testing.T) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
}

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", testDSN(t))
	t.Cleanup(func() { client.Close() })
	return client
}

// setupStatsDB opens a sqlx handle onto the same in-memory database
// as setupTestDB. Call after setupTestDB so the schema exists.
func setupStatsDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", testDSN(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// TestHelpers provides common test fixtures
type TestHelpers struct {
	t      *testing.T
	client *ent.Client
}

// NewTestHelpers creates a new test helper instance
func NewTestHelpers(t *testing.T, client *ent.Client) *TestHelpers {
	return &TestHelpers{
		t:      t,
		client: client,
	}
}

// CreateTestUser creates a user with sane defaults
func (h *TestHelpers) CreateTestUser(email string) *ent.User {
	user, err := h.client.User.Create().
		SetEmail(email).
		SetDisplayName("Test User").
		Save(context.Background())
	require.NoError(h.t, err)

	return user
}

// CreateTestWorkspace creates a workspace owned by the given user
func (h *TestHelpers) CreateTestWorkspace(ownerID int, name string) *ent.Workspace {
	workspace, err := h.client.Workspace.Create().
		SetOwnerID(ownerID).
		SetName(name).
		Save(context.Background())
	require.NoError(h.t, err)

	return workspace
}

// CreateTestTask creates a task in the given workspace
func (h *TestHelpers) CreateTestTask(workspaceID int, title string) *ent.Task {
	task, err := h.client.Task.Create().
		SetWorkspaceID(workspaceID).
		SetTitle(title).
		Save(context.Background())
	require.NoError(h.t, err)

	return task
}

// CreateTestReminder creates a reminder for the given task
func (h *TestHelpers) CreateTestReminder(taskID int, remindAt time.Time) *ent.Reminder {
	reminder, err := h.client.Reminder.Create().
		SetTaskID(taskID).
		SetRemindAt(remindAt).
		Save(context.Background())
	require.NoError(h.t, err)

	return reminder
}
