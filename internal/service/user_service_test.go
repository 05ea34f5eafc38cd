// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userv1 "github.com/workbenchlabs/workbench/api/proto/user/v1/generated"
	"github.com/workbenchlabs/workbench/internal/repository"
)

func TestUserService_CreateUser(t *testing.T) {
	client := setupTestDB(t)
	svc := NewUserService(repository.NewEntUserRepository(client))
	ctx := context.Background()

	t.Run("valid user", func(t *testing.T) {
		resp, err := svc.CreateUser(ctx, &userv1.CreateUserRequest{
			Email:       "ada@example.com",
			DisplayName: "Ada",
			Timezone:    "Europe/London",
			LlmProvider: userv1.LLMProvider_LLM_PROVIDER_ANTHROPIC,
			LlmModel:    "claude-sonnet",
		})
		require.NoError(t, err)
		assert.NotZero(t, resp.User.Id)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		assert.Equal(t, userv1.LLMProvider_LLM_PROVIDER_ANTHROPIC, resp.User.LlmProvider)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, &userv1.CreateUserRequest{
			Email:       "ada@example.com",
			DisplayName: "Ada again",
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	tests := []struct {
		name string
		req  *userv1.CreateUserRequest
	}{
		{"missing email", &userv1.CreateUserRequest{DisplayName: "No Email"}},
		{"invalid email", &userv1.CreateUserRequest{Email: "not-an-email", DisplayName: "Bad"}},
		{"missing display name", &userv1.CreateUserRequest{Email: "no-name@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	client := setupTestDB(t)
	helpers := NewTestHelpers(t, client)
	svc := NewUserService(repository.NewEntUserRepository(client))
	ctx := context.Background()

	created := helpers.CreateTestUser("grace@example.com")

	resp, err := svc.GetUser(ctx, &userv1.GetUserRequest{Id: int64(created.ID)})
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", resp.User.Email)

	_, err = svc.GetUser(ctx, &userv1.GetUserRequest{Id: 99999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
