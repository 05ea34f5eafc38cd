// internal/repository/ent_agent_event_repository.go
package repository

import (
	"context"
	"fmt"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/agentevent"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
)

type EntAgentEventRepository struct {
	client *ent.Client
}

func NewEntAgentEventRepository(client *ent.Client) *EntAgentEventRepository {
	return &EntAgentEventRepository{
		client: client,
	}
}

// Create persists a newly proposed event. Input is stored verbatim;
// output stays null until a transition writes it.
func (r *EntAgentEventRepository) Create(ctx context.Context, input *AgentEventInput) (*ent.AgentEvent, error) {
	return r.client.AgentEvent.
		Create().
		SetWorkspaceID(input.WorkspaceID).
		SetAgent(input.Agent).
		SetAction(input.Action).
		SetInput(input.Input).
		SetStatus(agentevent.StatusAwaitingConfirmation).
		Save(ctx)
}

func (r *EntAgentEventRepository) GetByID(ctx context.Context, id int) (*ent.AgentEvent, error) {
	return r.client.AgentEvent.
		Query().
		Where(agentevent.ID(id)).
		Only(ctx)
}

func (r *EntAgentEventRepository) List(ctx context.Context, filter AgentEventListFilter) ([]*ent.AgentEvent, int, error) {
	query := r.client.AgentEvent.Query()

	var predicates []predicate.AgentEvent

	if filter.WorkspaceID != nil {
		predicates = append(predicates, agentevent.WorkspaceID(*filter.WorkspaceID))
	}

	if filter.Status != nil {
		predicates = append(predicates, agentevent.StatusEQ(agentevent.Status(*filter.Status)))
	}

	if len(predicates) > 0 {
		query = query.Where(predicates...)
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count agent events: %w", err)
	}

	query = query.Order(ent.Desc(agentevent.FieldCreatedAt))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query agent events: %w", err)
	}

	return events, totalCount, nil
}

// TransitionFromAwaiting moves an event out of awaiting_confirmation
// with a single conditional update. The affected-row count tells the
// caller whether it won the transition; two concurrent confirmations
// cannot both pass this guard.
func (r *EntAgentEventRepository) TransitionFromAwaiting(
	ctx context.Context,
	id int,
	to string,
	output map[string]interface{},
) (int, error) {
	return r.client.AgentEvent.
		Update().
		Where(
			agentevent.ID(id),
			agentevent.StatusEQ(agentevent.StatusAwaitingConfirmation),
		).
		SetStatus(agentevent.Status(to)).
		SetOutput(output).
		Save(ctx)
}

// Types for repository input
type AgentEventInput struct {
	WorkspaceID int
	Agent       string
	Action      string
	Input       map[string]interface{}
}

type AgentEventListFilter struct {
	WorkspaceID *int
	Status      *string
	Limit       int
	Offset      int
}
