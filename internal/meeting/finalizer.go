// internal/meeting/finalizer.go
package meeting

import (
	"context"
	"fmt"
	"strings"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/internal/transcript"
)

const noneIdentified = "None identified"

// FinalizeInput carries everything needed to turn a raw transcript
// into a persisted meeting note.
type FinalizeInput struct {
	WorkspaceID int
	Transcript  string
	Title       string
	CreatedBy   int
}

// FinalizeResult returns the persisted note plus the ephemeral
// extraction outputs. Actions are advisory only; the caller may turn
// them into tasks with separate calls.
type FinalizeResult struct {
	Note     *ent.Note
	Summary  string
	Entities transcript.Entities
	Actions  []transcript.ActionItem
}

// Finalizer runs the transcript pipeline and persists the result.
type Finalizer struct {
	notes *repository.EntNoteRepository
}

func NewFinalizer(notes *repository.EntNoteRepository) *Finalizer {
	return &Finalizer{
		notes: notes,
	}
}

// Finalize processes the transcript and persists a meeting note. A
// missing workspace or creator surfaces as the store's foreign-key
// violation, untranslated.
func (f *Finalizer) Finalize(ctx context.Context, input FinalizeInput) (*FinalizeResult, error) {
	summary := transcript.Summarize(input.Transcript)
	entities := transcript.ExtractEntities(input.Transcript)
	actions := transcript.ExtractActions(input.Transcript)

	contentMD := renderMarkdown(input.Title, summary, input.Transcript, entities, actions)

	rawTranscript := input.Transcript
	note, err := f.notes.Create(ctx, &repository.NoteInput{
		WorkspaceID:    input.WorkspaceID,
		Title:          input.Title,
		Source:         "meeting",
		ContentMD:      contentMD,
		TranscriptText: &rawTranscript,
		SummaryText:    &summary,
		Entities:       entities.Map(),
		CreatedBy:      input.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	return &FinalizeResult{
		Note:     note,
		Summary:  summary,
		Entities: entities,
		Actions:  actions,
	}, nil
}

// renderMarkdown builds the note body. The six section headers are
// always present; empty sections fall back to "None identified".
func renderMarkdown(title, summary, raw string, entities transcript.Entities, actions []transcript.ActionItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Summary\n")
	b.WriteString(summary)
	b.WriteString("\n\n")

	b.WriteString("## Transcript\n")
	b.WriteString(raw)
	b.WriteString("\n\n")

	b.WriteString("## Key People\n")
	if len(entities.People) == 0 {
		b.WriteString(noneIdentified)
	} else {
		b.WriteString(strings.Join(entities.People, ", "))
	}
	b.WriteString("\n\n")

	b.WriteString("## Decisions Made\n")
	if len(entities.Decisions) == 0 {
		b.WriteString(noneIdentified)
		b.WriteString("\n")
	} else {
		for _, decision := range entities.Decisions {
			fmt.Fprintf(&b, "- %s\n", decision)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Action Items\n")
	if len(actions) == 0 {
		b.WriteString(noneIdentified)
		b.WriteString("\n")
	} else {
		for _, action := range actions {
			fmt.Fprintf(&b, "- %s (Priority: %s)\n", action.Title, action.Priority)
		}
	}

	return b.String()
}
