// cmd/client/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	agentv1 "github.com/workbenchlabs/workbench/api/proto/agent/v1/generated"
	notev1 "github.com/workbenchlabs/workbench/api/proto/note/v1/generated"
	userv1 "github.com/workbenchlabs/workbench/api/proto/user/v1/generated"
	workspacev1 "github.com/workbenchlabs/workbench/api/proto/workspace/v1/generated"
)

func main() {
	fmt.Println("🚀 Workbench Demo Client")

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	userClient := userv1.NewUserServiceClient(conn)
	workspaceClient := workspacev1.NewWorkspaceServiceClient(conn)
	noteClient := notev1.NewNoteServiceClient(conn)
	agentClient := agentv1.NewAgentServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Create a user and a workspace to work in
	userResp, err := userClient.CreateUser(ctx, &userv1.CreateUserRequest{
		Email:       fmt.Sprintf("demo+%d@example.com", time.Now().Unix()),
		DisplayName: "Demo User",
		Timezone:    "Europe/Istanbul",
	})
	if err != nil {
		log.Fatalf("CreateUser failed: %v", err)
	}
	user := userResp.User
	fmt.Printf("Created user %d (%s)\n", user.Id, user.Email)

	wsResp, err := workspaceClient.CreateWorkspace(ctx, &workspacev1.CreateWorkspaceRequest{
		OwnerId: user.Id,
		Name:    "Demo Workspace",
	})
	if err != nil {
		log.Fatalf("CreateWorkspace failed: %v", err)
	}
	workspace := wsResp.Workspace
	fmt.Printf("Created workspace %d (%s)\n", workspace.Id, workspace.Name)

	// Finalize a meeting transcript into a note
	finalizeResp, err := noteClient.FinalizeMeeting(ctx, &notev1.FinalizeMeetingRequest{
		WorkspaceId: workspace.Id,
		Title:       "Standup",
		CreatedBy:   user.Id,
		Transcript: "John said we decided to ship on March 15th, 2024. " +
			"We need to update the docs.",
	})
	if err != nil {
		log.Fatalf("FinalizeMeeting failed: %v", err)
	}
	fmt.Printf("Finalized meeting note %d\n", finalizeResp.Note.Id)
	fmt.Printf("Summary: %s\n", finalizeResp.Summary)
	for _, action := range finalizeResp.ExtractedActions {
		fmt.Printf("Suggested action: %s (priority %s)\n", action.Title, action.Priority)
	}

	// Propose a create_task action and confirm it
	input, err := structpb.NewStruct(map[string]interface{}{
		"workspace_id": workspace.Id,
		"title":        "Update the docs",
		"priority":     "high",
	})
	if err != nil {
		log.Fatalf("Failed to build input: %v", err)
	}

	proposeResp, err := agentClient.ProposeAction(ctx, &agentv1.ProposeActionRequest{
		WorkspaceId: workspace.Id,
		Agent:       "meeting-assistant",
		Action:      "create_task",
		Input:       input,
		Rationale:   "The transcript mentions a documentation follow-up.",
	})
	if err != nil {
		log.Fatalf("ProposeAction failed: %v", err)
	}
	event := proposeResp.AgentEvent
	fmt.Printf("Proposed event %d (status %s): %s\n", event.Id, event.Status, proposeResp.Rationale)

	confirmResp, err := agentClient.ConfirmAction(ctx, &agentv1.ConfirmActionRequest{
		EventId:  event.Id,
		Approved: true,
	})
	if err != nil {
		log.Fatalf("ConfirmAction failed: %v", err)
	}
	fmt.Printf("Confirmed event %d (status %s)\n", confirmResp.AgentEvent.Id, confirmResp.AgentEvent.Status)
	if result := confirmResp.ExecutionResult; result != nil {
		fmt.Printf("Execution result: success=%v task=%d %s\n",
			result.Success, result.CreatedTaskId, result.Message)
	}
}
