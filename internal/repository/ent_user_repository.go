// internal/repository/ent_user_repository.go
package repository

import (
	"context"

	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/user"
)

type EntUserRepository struct {
	client *ent.Client
}

func NewEntUserRepository(client *ent.Client) *EntUserRepository {
	return &EntUserRepository{
		client: client,
	}
}

func (r *EntUserRepository) Create(ctx context.Context, input *UserInput) (*ent.User, error) {
	create := r.client.User.
		Create().
		SetEmail(input.Email).
		SetDisplayName(input.DisplayName)

	if input.Timezone != "" {
		create = create.SetTimezone(input.Timezone)
	}
	if input.LLMProvider != "" {
		create = create.SetLlmProvider(user.LlmProvider(input.LLMProvider))
	}
	if input.LLMModel != "" {
		create = create.SetLlmModel(input.LLMModel)
	}

	return create.Save(ctx)
}

func (r *EntUserRepository) GetByID(ctx context.Context, id int) (*ent.User, error) {
	return r.client.User.
		Query().
		Where(user.ID(id)).
		Only(ctx)
}

func (r *EntUserRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	return r.client.User.
		Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
}

// Types for repository input
type UserInput struct {
	Email       string
	DisplayName string
	Timezone    string
	LLMProvider string
	LLMModel    string
}
