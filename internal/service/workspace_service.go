// internal/service/workspace_service.go
package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	workspacev1 "github.com/workbenchlabs/workbench/api/proto/workspace/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

type WorkspaceService struct {
	workspacev1.UnimplementedWorkspaceServiceServer
	repo  *repository.EntWorkspaceRepository
	stats *repository.StatsRepository
	clock clock.Clock
}

func NewWorkspaceService(
	repo *repository.EntWorkspaceRepository,
	stats *repository.StatsRepository,
	clk clock.Clock,
) *WorkspaceService {
	return &WorkspaceService{
		repo:  repo,
		stats: stats,
		clock: clk,
	}
}

// CreateWorkspace creates a new workspace
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, req *workspacev1.CreateWorkspaceRequest) (*workspacev1.CreateWorkspaceResponse, error) {
	if req.OwnerId == 0 {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	workspace, err := s.repo.Create(ctx, &repository.WorkspaceInput{
		OwnerID:  int(req.OwnerId),
		Name:     req.Name,
		Settings: structToMap(req.Settings),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create workspace: %v", err)
	}

	proto, err := convertEntWorkspaceToProto(workspace)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert workspace: %v", err)
	}

	return &workspacev1.CreateWorkspaceResponse{
		Workspace: proto,
	}, nil
}

// GetWorkspace retrieves a workspace by ID
func (s *WorkspaceService) GetWorkspace(ctx context.Context, req *workspacev1.GetWorkspaceRequest) (*workspacev1.GetWorkspaceResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	workspace, err := s.repo.GetByID(ctx, int(req.Id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "workspace not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get workspace: %v", err)
	}

	proto, err := convertEntWorkspaceToProto(workspace)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert workspace: %v", err)
	}

	return &workspacev1.GetWorkspaceResponse{
		Workspace: proto,
	}, nil
}

// ListWorkspaces retrieves all workspaces owned by a user
func (s *WorkspaceService) ListWorkspaces(ctx context.Context, req *workspacev1.ListWorkspacesRequest) (*workspacev1.ListWorkspacesResponse, error) {
	if req.OwnerId == 0 {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	workspaces, err := s.repo.ListByOwner(ctx, int(req.OwnerId))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list workspaces: %v", err)
	}

	protoWorkspaces := make([]*workspacev1.Workspace, len(workspaces))
	for i, workspace := range workspaces {
		proto, err := convertEntWorkspaceToProto(workspace)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to convert workspace: %v", err)
		}
		protoWorkspaces[i] = proto
	}

	return &workspacev1.ListWorkspacesResponse{
		Workspaces: protoWorkspaces,
	}, nil
}

// GetWorkspaceStats returns aggregate counters for a workspace.
func (s *WorkspaceService) GetWorkspaceStats(ctx context.Context, req *workspacev1.GetWorkspaceStatsRequest) (*workspacev1.GetWorkspaceStatsResponse, error) {
	if req.WorkspaceId == 0 {
		return nil, status.Error(codes.InvalidArgument, "workspace_id is required")
	}

	exists, err := s.repo.Exists(ctx, int(req.WorkspaceId))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to check workspace: %v", err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "workspace not found")
	}

	stats, err := s.stats.GetWorkspaceStats(ctx, int(req.WorkspaceId), s.clock.Now())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get workspace stats: %v", err)
	}

	return &workspacev1.GetWorkspaceStatsResponse{
		TasksTodo:         int64(stats.TasksTodo),
		TasksDoing:        int64(stats.TasksDoing),
		TasksDone:         int64(stats.TasksDone),
		NoteCount:         int64(stats.NoteCount),
		UpcomingReminders: int64(stats.UpcomingReminder),
		PendingProposals:  int64(stats.PendingProposals),
	}, nil
}

// Helper functions

func convertEntWorkspaceToProto(workspace *ent.Workspace) (*workspacev1.Workspace, error) {
	settings, err := mapToStruct(workspace.Settings)
	if err != nil {
		return nil, err
	}

	return &workspacev1.Workspace{
		Id:        int64(workspace.ID),
		OwnerId:   int64(workspace.OwnerID),
		Name:      workspace.Name,
		Settings:  settings,
		CreatedAt: timestamppb.New(workspace.CreatedAt),
	}, nil
}
