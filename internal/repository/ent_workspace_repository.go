// internal/repository/ent_workspace_repository.go
package repository

import (
	"context"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/workspace"
)

type EntWorkspaceRepository struct {
	client *ent.Client
}

func NewEntWorkspaceRepository(client *ent.Client) *EntWorkspaceRepository {
	return &EntWorkspaceRepository{
		client: client,
	}
}

func (r *EntWorkspaceRepository) Create(ctx context.Context, input *WorkspaceInput) (*ent.Workspace, error) {
	create := r.client.Workspace.
		Create().
		SetOwnerID(input.OwnerID).
		SetName(input.Name)

	// Handle settings - ensure it's not nil
	if input.Settings != nil {
		create = create.SetSettings(input.Settings)
	} else {
		create = create.SetSettings(map[string]interface{}{})
	}

	return create.Save(ctx)
}

func (r *EntWorkspaceRepository) GetByID(ctx context.Context, id int) (*ent.Workspace, error) {
	return r.client.Workspace.
		Query().
		Where(workspace.ID(id)).
		Only(ctx)
}

func (r *EntWorkspaceRepository) ListByOwner(ctx context.Context, ownerID int) ([]*ent.Workspace, error) {
	return r.client.Workspace.
		Query().
		Where(workspace.OwnerID(ownerID)).
		Order(ent.Asc(workspace.FieldCreatedAt)).
		All(ctx)
}

func (r *EntWorkspaceRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.client.Workspace.
		Query().
		Where(workspace.ID(id)).
		Exist(ctx)
}

// Types for repository input
type WorkspaceInput struct {
	OwnerID  int
	Name     string
	Settings map[string]interface{}
}
