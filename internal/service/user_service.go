// internal/service/user_service.go
package service

import (
	"context"
	"net/mail"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	userv1 "github.com/workbenchlabs/workbench/api/proto/user/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/internal/repository"
)

type UserService struct {
	userv1.UnimplementedUserServiceServer
	repo *repository.EntUserRepository
}

func NewUserService(repo *repository.EntUserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser creates a new user
func (s *UserService) CreateUser(ctx context.Context, req *userv1.CreateUserRequest) (*userv1.CreateUserResponse, error) {
	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid email format")
	}
	if req.DisplayName == "" {
		return nil, status.Error(codes.InvalidArgument, "display_name is required")
	}

	user, err := s.repo.Create(ctx, &repository.UserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Timezone:    req.Timezone,
		LLMProvider: convertLLMProviderToString(req.LlmProvider),
		LLMModel:    req.LlmModel,
	})
	if err != nil {
		// Duplicate email surfaces as the store's uniqueness violation.
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create user: %v", err)
	}

	return &userv1.CreateUserResponse{
		User: convertEntUserToProto(user),
	}, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, req *userv1.GetUserRequest) (*userv1.GetUserResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	user, err := s.repo.GetByID(ctx, int(req.Id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get user: %v", err)
	}

	return &userv1.GetUserResponse{
		User: convertEntUserToProto(user),
	}, nil
}

// Helper functions

func convertEntUserToProto(user *ent.User) *userv1.User {
	return &userv1.User{
		Id:          int64(user.ID),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Timezone:    user.Timezone,
		LlmProvider: convertStringToLLMProvider(string(user.LlmProvider)),
		LlmModel:    user.LlmModel,
		CreatedAt:   timestamppb.New(user.CreatedAt),
	}
}

func convertLLMProviderToString(provider userv1.LLMProvider) string {
	switch provider {
	case userv1.LLMProvider_LLM_PROVIDER_OPENAI:
		return "openai"
	case userv1.LLMProvider_LLM_PROVIDER_ANTHROPIC:
		return "anthropic"
	case userv1.LLMProvider_LLM_PROVIDER_GOOGLE:
		return "google"
	default:
		return ""
	}
}

func convertStringToLLMProvider(provider string) userv1.LLMProvider {
	switch provider {
	case "openai":
		return userv1.LLMProvider_LLM_PROVIDER_OPENAI
	case "anthropic":
		return userv1.LLMProvider_LLM_PROVIDER_ANTHROPIC
	case "google":
		return userv1.LLMProvider_LLM_PROVIDER_GOOGLE
	default:
		return userv1.LLMProvider_LLM_PROVIDER_UNSPECIFIED
	}
}
