// internal/service/agent_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	agentv1 "github.com/workbenchlabs/workbench/api/proto/agent/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/internal/agent"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

type AgentService struct {
	agentv1.UnimplementedAgentServiceServer
	events     *repository.EntAgentEventRepository
	workspaces *repository.EntWorkspaceRepository
	executor   *agent.Executor
	clock      clock.Clock
}

func NewAgentService(
	events *repository.EntAgentEventRepository,
	workspaces *repository.EntWorkspaceRepository,
	executor *agent.Executor,
	clk clock.Clock,
) *AgentService {
	return &AgentService{
		events:     events,
		workspaces: workspaces,
		executor:   executor,
		clock:      clk,
	}
}

// ProposeAction records an agent proposal as awaiting_confirmation.
// The rationale is echoed to the caller but never persisted.
func (s *AgentService) ProposeAction(ctx context.Context, req *agentv1.ProposeActionRequest) (*agentv1.ProposeActionResponse, error) {
	if req.WorkspaceId == 0 {
		return nil, status.Error(codes.InvalidArgument, "workspace_id is required")
	}
	if req.Agent == "" {
		return nil, status.Error(codes.InvalidArgument, "agent is required")
	}
	if req.Action == "" {
		return nil, status.Error(codes.InvalidArgument, "action is required")
	}

	exists, err := s.workspaces.Exists(ctx, int(req.WorkspaceId))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to check workspace: %v", err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "workspace not found")
	}

	event, err := s.events.Create(ctx, &repository.AgentEventInput{
		WorkspaceID: int(req.WorkspaceId),
		Agent:       req.Agent,
		Action:      req.Action,
		Input:       structToMap(req.Input),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create agent event: %v", err)
	}

	proto, err := convertAgentEventToProto(event)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert agent event: %v", err)
	}

	return &agentv1.ProposeActionResponse{
		AgentEvent: proto,
		Rationale:  req.Rationale,
	}, nil
}

// ConfirmAction resolves a pending proposal. Rejection and execution
// both leave the decision on the event's output; an execution failure
// is absorbed into the error state rather than failing the call.
func (s *AgentService) ConfirmAction(ctx context.Context, req *agentv1.ConfirmActionRequest) (*agentv1.ConfirmActionResponse, error) {
	if req.EventId == 0 {
		return nil, status.Error(codes.InvalidArgument, "event_id is required")
	}

	event, err := s.events.GetByID(ctx, int(req.EventId))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "agent event not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get agent event: %v", err)
	}

	if event.Status != agentevent.StatusAwaitingConfirmation {
		return nil, statusNotAwaiting(event.Status)
	}

	if !req.Approved {
		output := map[string]interface{}{
			"rejected":    true,
			"rejected_at": s.clock.Now().UTC().Format(time.RFC3339),
			"reason":      "User rejected proposal",
		}

		updated, err := s.transition(ctx, event.ID, "error", output)
		if err != nil {
			return nil, err
		}

		proto, err := convertAgentEventToProto(updated)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to convert agent event: %v", err)
		}

		// No execution result on rejection.
		return &agentv1.ConfirmActionResponse{
			AgentEvent: proto,
		}, nil
	}

	outcome := s.executor.Execute(ctx, event.Action, event.Input)

	newStatus := "executed"
	if outcome.Failed {
		newStatus = "error"
	}

	updated, err := s.transition(ctx, event.ID, newStatus, outcome.Output)
	if err != nil {
		return nil, err
	}

	proto, err := convertAgentEventToProto(updated)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert agent event: %v", err)
	}

	return &agentv1.ConfirmActionResponse{
		AgentEvent: proto,
		ExecutionResult: &agentv1.ExecutionResult{
			Success:       outcome.Result.Success,
			Message:       outcome.Result.Message,
			Error:         outcome.Result.Error,
			CreatedTaskId: int64(outcome.Result.CreatedTaskID),
		},
	}, nil
}

// GetAgentEvent retrieves a single proposal.
func (s *AgentService) GetAgentEvent(ctx context.Context, req *agentv1.GetAgentEventRequest) (*agentv1.GetAgentEventResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	event, err := s.events.GetByID(ctx, int(req.Id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "agent event not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get agent event: %v", err)
	}

	proto, err := convertAgentEventToProto(event)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert agent event: %v", err)
	}

	return &agentv1.GetAgentEventResponse{
		AgentEvent: proto,
	}, nil
}

// ListAgentEvents retrieves proposals for a workspace, newest first.
func (s *AgentService) ListAgentEvents(ctx context.Context, req *agentv1.ListAgentEventsRequest) (*agentv1.ListAgentEventsResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := repository.AgentEventListFilter{
		Limit:  int(pageSize),
		Offset: int(req.Offset),
	}

	if req.WorkspaceId != 0 {
		workspaceID := int(req.WorkspaceId)
		filter.WorkspaceID = &workspaceID
	}

	if req.Status != agentv1.AgentEventStatus_AGENT_EVENT_STATUS_UNSPECIFIED {
		statusStr := convertAgentStatusToString(req.Status)
		filter.Status = &statusStr
	}

	events, totalCount, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list agent events: %v", err)
	}

	protoEvents := make([]*agentv1.AgentEvent, len(events))
	for i, event := range events {
		proto, err := convertAgentEventToProto(event)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to convert agent event: %v", err)
		}
		protoEvents[i] = proto
	}

	return &agentv1.ListAgentEventsResponse{
		AgentEvents: protoEvents,
		TotalCount:  int32(totalCount),
	}, nil
}

// transition performs the guarded status update and re-reads the
// event. Zero affected rows means another confirmation won the race;
// the caller gets InvalidState with the fresh status.
func (s *AgentService) transition(ctx context.Context, id int, to string, output map[string]interface{}) (*ent.AgentEvent, error) {
	affected, err := s.events.TransitionFromAwaiting(ctx, id, to, output)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to update agent event: %v", err)
	}

	current, getErr := s.events.GetByID(ctx, id)
	if getErr != nil {
		return nil, status.Errorf(codes.Internal, "failed to reload agent event: %v", getErr)
	}

	if affected == 0 {
		return nil, statusNotAwaiting(current.Status)
	}

	return current, nil
}

func statusNotAwaiting(current agentevent.Status) error {
	return status.Error(codes.FailedPrecondition,
		fmt.Sprintf("agent event is not awaiting confirmation (current status: %s)", current))
}

// Helper functions

func convertAgentEventToProto(event *ent.AgentEvent) (*agentv1.AgentEvent, error) {
	input, err := mapToStruct(event.Input)
	if err != nil {
		return nil, err
	}

	output, err := mapToStruct(event.Output)
	if err != nil {
		return nil, err
	}

	return &agentv1.AgentEvent{
		Id:          int64(event.ID),
		WorkspaceId: int64(event.WorkspaceID),
		Agent:       event.Agent,
		Action:      event.Action,
		Input:       input,
		Output:      output,
		Status:      convertStringToAgentStatus(string(event.Status)),
		CreatedAt:   timestamppb.New(event.CreatedAt),
	}, nil
}

func convertAgentStatusToString(s agentv1.AgentEventStatus) string {
	switch s {
	case agentv1.AgentEventStatus_AGENT_EVENT_STATUS_DRAFT:
		return "draft"
	case agentv1.AgentEventStatus_AGENT_EVENT_STATUS_AWAITING_CONFIRMATION:
		return "awaiting_confirmation"
	case agentv1.AgentEventStatus_AGENT_EVENT_STATUS_EXECUTED:
		return "executed"
	case agentv1.AgentEventStatus_AGENT_EVENT_STATUS_ERROR:
		return "error"
	default:
		return "draft"
	}
}

func convertStringToAgentStatus(s string) agentv1.AgentEventStatus {
	switch s {
	case "draft":
		return agentv1.AgentEventStatus_AGENT_EVENT_STATUS_DRAFT
	case "awaiting_confirmation":
		return agentv1.AgentEventStatus_AGENT_EVENT_STATUS_AWAITING_CONFIRMATION
	case "executed":
		return agentv1.AgentEventStatus_AGENT_EVENT_STATUS_EXECUTED
	case "error":
		return agentv1.AgentEventStatus_AGENT_EVENT_STATUS_ERROR
	default:
		return agentv1.AgentEventStatus_AGENT_EVENT_STATUS_UNSPECIFIED
	}
}
