// internal/service/note_service.go
package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	notev1 "github.com/workbenchlabs/workbench/api/proto/note/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/internal/meeting"
	"github.com/workbenchlabs/workbench/internal/repository"
)

type NoteService struct {
	notev1.UnimplementedNoteServiceServer
	repo      *repository.EntNoteRepository
	finalizer *meeting.Finalizer
}

func NewNoteService(repo *repository.EntNoteRepository, finalizer *meeting.Finalizer) *NoteService {
	return &NoteService{
		repo:      repo,
		finalizer: finalizer,
	}
}

// CreateNote creates a new note
func (s *NoteService) CreateNote(ctx context.Context, req *notev1.CreateNoteRequest) (*notev1.CreateNoteResponse, error) {
	if req.WorkspaceId == 0 {
		return nil, status.Error(codes.InvalidArgument, "workspace_id is required")
	}
	if req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	if req.CreatedBy == 0 {
		return nil, status.Error(codes.InvalidArgument, "created_by is required")
	}

	note, err := s.repo.Create(ctx, &repository.NoteInput{
		WorkspaceID: int(req.WorkspaceId),
		Title:       req.Title,
		Source:      convertNoteSourceToString(req.Source),
		ContentMD:   req.ContentMd,
		CreatedBy:   int(req.CreatedBy),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create note: %v", err)
	}

	proto, err := convertEntNoteToProto(note)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert note: %v", err)
	}

	return &notev1.CreateNoteResponse{
		Note: proto,
	}, nil
}

// GetNote retrieves a note by ID
func (s *NoteService) GetNote(ctx context.Context, req *notev1.GetNoteRequest) (*notev1.GetNoteResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	note, err := s.repo.GetByID(ctx, int(req.Id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "note not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get note: %v", err)
	}

	proto, err := convertEntNoteToProto(note)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert note: %v", err)
	}

	return &notev1.GetNoteResponse{
		Note: proto,
	}, nil
}

// ListNotes retrieves notes, newest first
func (s *NoteService) ListNotes(ctx context.Context, req *notev1.ListNotesRequest) (*notev1.ListNotesResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := repository.NoteListFilter{
		Search: req.Search,
		Limit:  int(pageSize),
		Offset: int(req.Offset),
	}

	if req.WorkspaceId != 0 {
		workspaceID := int(req.WorkspaceId)
		filter.WorkspaceID = &workspaceID
	}

	if req.Source != notev1.NoteSource_NOTE_SOURCE_UNSPECIFIED {
		source := convertNoteSourceToString(req.Source)
		filter.Source = &source
	}

	notes, totalCount, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list notes: %v", err)
	}

	protoNotes := make([]*notev1.Note, len(notes))
	for i, note := range notes {
		proto, err := convertEntNoteToProto(note)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to convert note: %v", err)
		}
		protoNotes[i] = proto
	}

	return &notev1.ListNotesResponse{
		Notes:      protoNotes,
		TotalCount: int32(totalCount),
	}, nil
}

// FinalizeMeeting runs the transcript pipeline and persists the
// resulting meeting note. Extracted action items are advisory output;
// they are not persisted.
func (s *NoteService) FinalizeMeeting(ctx context.Context, req *notev1.FinalizeMeetingRequest) (*notev1.FinalizeMeetingResponse, error) {
	if req.WorkspaceId == 0 {
		return nil, status.Error(codes.InvalidArgument, "workspace_id is required")
	}
	if req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	if req.CreatedBy == 0 {
		return nil, status.Error(codes.InvalidArgument, "created_by is required")
	}

	result, err := s.finalizer.Finalize(ctx, meeting.FinalizeInput{
		WorkspaceID: int(req.WorkspaceId),
		Transcript:  req.Transcript,
		Title:       req.Title,
		CreatedBy:   int(req.CreatedBy),
	})
	if err != nil {
		// Foreign-key violations surface with the store's own message.
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to finalize meeting: %v", err)
	}

	noteProto, err := convertEntNoteToProto(result.Note)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert note: %v", err)
	}

	entities, err := mapToStruct(result.Entities.Map())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert entities: %v", err)
	}

	actions := make([]*notev1.ExtractedAction, len(result.Actions))
	for i, action := range result.Actions {
		actions[i] = &notev1.ExtractedAction{
			Title:    action.Title,
			Priority: action.Priority,
		}
		if action.DueAt != nil {
			actions[i].DueAt = timestamppb.New(*action.DueAt)
		}
	}

	return &notev1.FinalizeMeetingResponse{
		Note:             noteProto,
		Summary:          result.Summary,
		Entities:         entities,
		ExtractedActions: actions,
	}, nil
}

// Helper functions

func convertEntNoteToProto(note *ent.Note) (*notev1.Note, error) {
	entities, err := mapToStruct(note.Entities)
	if err != nil {
		return nil, err
	}

	proto := &notev1.Note{
		Id:          int64(note.ID),
		WorkspaceId: int64(note.WorkspaceID),
		Title:       note.Title,
		Source:      convertStringToNoteSource(string(note.Source)),
		ContentMd:   note.ContentMd,
		Entities:    entities,
		CreatedBy:   int64(note.CreatedBy),
		CreatedAt:   timestamppb.New(note.CreatedAt),
		UpdatedAt:   timestamppb.New(note.UpdatedAt),
	}

	if note.TranscriptText != nil {
		proto.TranscriptText = *note.TranscriptText
	}
	if note.SummaryText != nil {
		proto.SummaryText = *note.SummaryText
	}

	return proto, nil
}

func convertNoteSourceToString(source notev1.NoteSource) string {
	switch source {
	case notev1.NoteSource_NOTE_SOURCE_MANUAL:
		return "manual"
	case notev1.NoteSource_NOTE_SOURCE_MEETING:
		return "meeting"
	case notev1.NoteSource_NOTE_SOURCE_IMPORT:
		return "import"
	default:
		return ""
	}
}

func convertStringToNoteSource(source string) notev1.NoteSource {
	switch source {
	case "manual":
		return notev1.NoteSource_NOTE_SOURCE_MANUAL
	case "meeting":
		return notev1.NoteSource_NOTE_SOURCE_MEETING
	case "import":
		return notev1.NoteSource_NOTE_SOURCE_IMPORT
	default:
		return notev1.NoteSource_NOTE_SOURCE_UNSPECIFIED
	}
}
