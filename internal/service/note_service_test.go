// internal/service/note_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notev1 "github.com/workbenchlabs/workbench/api/proto/note/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/internal/meeting"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/internal/transcript"
)

func newTestNoteService(client *ent.Client) *NoteService {
	notes := repository.NewEntNoteRepository(client)
	return NewNoteService(notes, meeting.NewFinalizer(notes))
}

func TestNoteService_CreateAndGet(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestNoteService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	created, err := svc.CreateNote(ctx, &notev1.CreateNoteRequest{
		WorkspaceId: int64(workspace.ID),
		CreatedBy:   int64(owner.ID),
		Title:       "Weekly sync",
		ContentMd:   "# Weekly sync\n\nNothing to report.",
	})
	require.NoError(t, err)
	assert.Equal(t, notev1.NoteSource_NOTE_SOURCE_MANUAL, created.Note.Source)

	got, err := svc.GetNote(ctx, &notev1.GetNoteRequest{Id: created.Note.Id})
	require.NoError(t, err)
	assert.Equal(t, "Weekly sync", got.Note.Title)
	assert.Equal(t, "# Weekly sync\n\nNothing to report.", got.Note.ContentMd)

	_, err = svc.GetNote(ctx, &notev1.GetNoteRequest{Id: 99999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestNoteService_FinalizeMeeting(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestNoteService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	transcriptText := "John said we decided to ship on March 15th, 2024. We need to update the docs."

	resp, err := svc.FinalizeMeeting(ctx, &notev1.FinalizeMeetingRequest{
		WorkspaceId: int64(workspace.ID),
		Transcript:  transcriptText,
		Title:       "Release planning",
		CreatedBy:   int64(owner.ID),
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Summary, "John said we decided to ship on March 15th, 2024")

	entities := resp.Entities.AsMap()
	people, ok := entities["people"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, people, "John")

	dates, ok := entities["dates"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, dates, "March 15th, 2024")

	decisions, ok := entities["decisions"].([]interface{})
	require.True(t, ok)
	require.Len(t, decisions, 1)
	assert.Contains(t, decisions[0], "decided")

	risks, ok := entities["risks"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, risks)

	require.Len(t, resp.ExtractedActions, 1)
	assert.Contains(t, resp.ExtractedActions[0].Title, "need to update the docs")
	assert.Equal(t, "high", resp.ExtractedActions[0].Priority)

	// The persisted note carries the raw transcript, the summary and
	// the entity map alongside the rendered markdown.
	stored := client.Note.GetX(ctx, int(resp.Note.Id))
	assert.Equal(t, note.SourceMeeting, stored.Source)
	require.NotNil(t, stored.TranscriptText)
	assert.Equal(t, transcriptText, *stored.TranscriptText)
	require.NotNil(t, stored.SummaryText)
	assert.Equal(t, resp.Summary, *stored.SummaryText)
	assert.NotNil(t, stored.Entities)

	for _, header := range []string{
		"# Release planning",
		"## Summary",
		"## Transcript",
		"## Key People",
		"## Decisions Made",
		"## Action Items",
	} {
		assert.True(t, strings.Contains(stored.ContentMd, header), "missing %q", header)
	}
	assert.Contains(t, stored.ContentMd, "- We need to update the docs (Priority: high)")
}

func TestNoteService_FinalizeMeeting_EmptyTranscript(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestNoteService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")

	resp, err := svc.FinalizeMeeting(ctx, &notev1.FinalizeMeetingRequest{
		WorkspaceId: int64(workspace.ID),
		Transcript:  "   ",
		Title:       "Empty call",
		CreatedBy:   int64(owner.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, transcript.FallbackSummary, resp.Summary)
	assert.Empty(t, resp.ExtractedActions)

	stored := client.Note.GetX(ctx, int(resp.Note.Id))
	assert.Contains(t, stored.ContentMd, "None identified")
}

func TestNoteService_FinalizeMeeting_UnknownWorkspace(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestNoteService(client)

	owner := helpers.CreateTestUser("owner@example.com")

	_, err := svc.FinalizeMeeting(context.Background(), &notev1.FinalizeMeetingRequest{
		WorkspaceId: 99999,
		Transcript:  "Short call.",
		Title:       "Ghost meeting",
		CreatedBy:   int64(owner.ID),
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestNoteService_ListNotes(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := newTestNoteService(client)
	ctx := context.Background()

	owner := helpers.CreateTestUser("owner@example.com")
	workspace := helpers.CreateTestWorkspace(owner.ID, "Inbox")
	other := helpers.CreateTestWorkspace(owner.ID, "Archive")

	for _, title := range []string{"First", "Second"} {
		_, err := svc.CreateNote(ctx, &notev1.CreateNoteRequest{
			WorkspaceId: int64(workspace.ID),
			CreatedBy:   int64(owner.ID),
			Title:       title,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateNote(ctx, &notev1.CreateNoteRequest{
		WorkspaceId: int64(other.ID),
		CreatedBy:   int64(owner.ID),
		Title:       "Elsewhere",
	})
	require.NoError(t, err)

	resp, err := svc.ListNotes(ctx, &notev1.ListNotesRequest{
		WorkspaceId: int64(workspace.ID),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Notes, 2)
}
