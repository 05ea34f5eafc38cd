// internal/repository/ent_note_repository.go
package repository

import (
	"context"
	"fmt"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/note"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
)

type EntNoteRepository struct {
	client *ent.Client
}

func NewEntNoteRepository(client *ent.Client) *EntNoteRepository {
	return &EntNoteRepository{
		client: client,
	}
}

func (r *EntNoteRepository) Create(ctx context.Context, input *NoteInput) (*ent.Note, error) {
	create := r.client.Note.
		Create().
		SetWorkspaceID(input.WorkspaceID).
		SetTitle(input.Title).
		SetContentMd(input.ContentMD).
		SetCreatedBy(input.CreatedBy).
		SetNillableTranscriptText(input.TranscriptText).
		SetNillableSummaryText(input.SummaryText)

	if input.Source != "" {
		create = create.SetSource(note.Source(input.Source))
	}

	// Handle entities - ensure it's not nil
	if input.Entities != nil {
		create = create.SetEntities(input.Entities)
	} else {
		create = create.SetEntities(map[string]interface{}{})
	}

	return create.Save(ctx)
}

func (r *EntNoteRepository) GetByID(ctx context.Context, id int) (*ent.Note, error) {
	return r.client.Note.
		Query().
		Where(note.ID(id)).
		Only(ctx)
}

func (r *EntNoteRepository) List(ctx context.Context, filter NoteListFilter) ([]*ent.Note, int, error) {
	query := r.client.Note.Query()

	var predicates []predicate.Note

	if filter.WorkspaceID != nil {
		predicates = append(predicates, note.WorkspaceID(*filter.WorkspaceID))
	}

	if filter.Source != nil {
		predicates = append(predicates, note.SourceEQ(note.Source(*filter.Source)))
	}

	if filter.Search != "" {
		predicates = append(predicates, note.Or(
			note.TitleContainsFold(filter.Search),
			note.ContentMdContainsFold(filter.Search),
		))
	}

	if len(predicates) > 0 {
		query = query.Where(predicates...)
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count notes: %w", err)
	}

	query = query.Order(ent.Desc(note.FieldCreatedAt))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	notes, err := query.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query notes: %w", err)
	}

	return notes, totalCount, nil
}

// Types for repository input
type NoteInput struct {
	WorkspaceID    int
	Title          string
	Source         string
	ContentMD      string
	TranscriptText *string
	SummaryText    *string
	Entities       map[string]interface{}
	CreatedBy      int
}

type NoteListFilter struct {
	WorkspaceID *int
	Source      *string
	Search      string
	Limit       int
	Offset      int
}
