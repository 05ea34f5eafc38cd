// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"net/mail"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agentv1 "github.com/workbenchlabs/workbench/api/proto/agent/v1/generated"
	notev1 "github.com/workbenchlabs/workbench/api/proto/note/v1/generated"
	taskv1 "github.com/workbenchlabs/workbench/api/proto/task/v1/generated"
	userv1 "github.com/workbenchlabs/workbench/api/proto/user/v1/generated"
	workspacev1 "github.com/workbenchlabs/workbench/api/proto/workspace/v1/generated"
)

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	MaxEmailLength       int
	MaxNameLength        int
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxTranscriptLength  int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxEmailLength:       255,
		MaxNameLength:        200,
		MaxTitleLength:       200,
		MaxDescriptionLength: 5000,
		MaxTranscriptLength:  200000,
	}
}

// ValidationInterceptor rejects malformed requests before they reach
// the services.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{config: config}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validate(req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func (v *ValidationInterceptor) validate(req interface{}) error {
	switch r := req.(type) {
	case *userv1.CreateUserRequest:
		return v.validateCreateUser(r)
	case *workspacev1.CreateWorkspaceRequest:
		return v.validateCreateWorkspace(r)
	case *taskv1.CreateTaskRequest:
		return v.validateTitled("title", r.Title)
	case *taskv1.UpdateTaskRequest:
		if r.Title == "" {
			return nil
		}
		return v.maxLen("title", r.Title, v.config.MaxTitleLength)
	case *notev1.CreateNoteRequest:
		return v.validateTitled("title", r.Title)
	case *notev1.FinalizeMeetingRequest:
		if err := v.validateTitled("title", r.Title); err != nil {
			return err
		}
		return v.maxLen("transcript", r.Transcript, v.config.MaxTranscriptLength)
	case *agentv1.ProposeActionRequest:
		if r.Agent == "" {
			return status.Error(codes.InvalidArgument, "agent is required")
		}
		if r.Action == "" {
			return status.Error(codes.InvalidArgument, "action is required")
		}
		return nil
	default:
		return nil
	}
}

func (v *ValidationInterceptor) validateCreateUser(r *userv1.CreateUserRequest) error {
	if r.Email == "" {
		return status.Error(codes.InvalidArgument, "email is required")
	}
	if len(r.Email) > v.config.MaxEmailLength {
		return status.Errorf(codes.InvalidArgument, "email exceeds %d characters", v.config.MaxEmailLength)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return status.Error(codes.InvalidArgument, "invalid email format")
	}
	if r.DisplayName == "" {
		return status.Error(codes.InvalidArgument, "display_name is required")
	}
	return v.maxLen("display_name", r.DisplayName, v.config.MaxNameLength)
}

func (v *ValidationInterceptor) validateCreateWorkspace(r *workspacev1.CreateWorkspaceRequest) error {
	if r.Name == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	return v.maxLen("name", r.Name, v.config.MaxNameLength)
}

func (v *ValidationInterceptor) validateTitled(field, value string) error {
	if value == "" {
		return status.Error(codes.InvalidArgument, fmt.Sprintf("%s is required", field))
	}
	return v.maxLen(field, value, v.config.MaxTitleLength)
}

func (v *ValidationInterceptor) maxLen(field, value string, max int) error {
	if len(value) > max {
		return status.Errorf(codes.InvalidArgument, "%s exceeds %d characters", field, max)
	}
	return nil
}
