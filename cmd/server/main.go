// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	agentv1 "github.com/workbenchlabs/workbench/api/proto/agent/v1/generated"
	notev1 "github.com/workbenchlabs/workbench/api/proto/note/v1/generated"
	reminderv1 "github.com/workbenchlabs/workbench/api/proto/reminder/v1/generated"
	taskv1 "github.com/workbenchlabs/workbench/api/proto/task/v1/generated"
	userv1 "github.com/workbenchlabs/workbench/api/proto/user/v1/generated"
	workspacev1 "github.com/workbenchlabs/workbench/api/proto/workspace/v1/generated"
	ent "github.com/workbenchlabs/workbench/ent/generated"
	"github.com/workbenchlabs/workbench/ent/generated/migrate"
	"github.com/workbenchlabs/workbench/internal/agent"
	"github.com/workbenchlabs/workbench/internal/config"
	"github.com/workbenchlabs/workbench/internal/database"
	"github.com/workbenchlabs/workbench/internal/meeting"
	"github.com/workbenchlabs/workbench/internal/middleware"
	"github.com/workbenchlabs/workbench/internal/repository"
	"github.com/workbenchlabs/workbench/internal/service"
	"github.com/workbenchlabs/workbench/pkg/clock"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Connecting to PostgreSQL...")
	conns, err := database.Connect(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := conns.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	// Run auto migration
	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), conns.Ent); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	systemClock := clock.System{}

	// Initialize repositories
	userRepo := repository.NewEntUserRepository(conns.Ent)
	workspaceRepo := repository.NewEntWorkspaceRepository(conns.Ent)
	taskRepo := repository.NewEntTaskRepository(conns.Ent)
	noteRepo := repository.NewEntNoteRepository(conns.Ent)
	reminderRepo := repository.NewEntReminderRepository(conns.Ent)
	agentEventRepo := repository.NewEntAgentEventRepository(conns.Ent)
	statsRepo := repository.NewStatsRepository(conns.DB)

	// The executor is the single extension point for agent actions:
	// register a handler here to support a new action type.
	executor := agent.NewExecutor(systemClock)
	executor.Register(agent.ActionCreateTask, agent.NewCreateTaskHandler(taskRepo))

	// Initialize services
	userService := service.NewUserService(userRepo)
	workspaceService := service.NewWorkspaceService(workspaceRepo, statsRepo, systemClock)
	taskService := service.NewTaskService(taskRepo)
	noteService := service.NewNoteService(noteRepo, meeting.NewFinalizer(noteRepo))
	reminderService := service.NewReminderService(reminderRepo, systemClock)
	agentService := service.NewAgentService(agentEventRepo, workspaceRepo, executor, systemClock)

	// Initialize middleware
	metadataExtractor := middleware.NewMetadataExtractorInterceptor()
	validationInterceptor := middleware.NewValidationInterceptor(middleware.DefaultValidationConfig())

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metadataExtractor.Unary(),
			validationInterceptor.Unary(),
			loggingInterceptor,
		),
		grpc.ChainStreamInterceptor(
			metadataExtractor.Stream(),
		),
	)

	// Register services
	userv1.RegisterUserServiceServer(grpcServer, userService)
	workspacev1.RegisterWorkspaceServiceServer(grpcServer, workspaceService)
	taskv1.RegisterTaskServiceServer(grpcServer, taskService)
	notev1.RegisterNoteServiceServer(grpcServer, noteService)
	reminderv1.RegisterReminderServiceServer(grpcServer, reminderService)
	agentv1.RegisterAgentServiceServer(grpcServer, agentService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("user.v1.UserService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("workspace.v1.WorkspaceService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("task.v1.TaskService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("note.v1.NoteService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("reminder.v1.ReminderService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("agent.v1.AgentService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Register reflection for development
	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Printf("🚀 Workbench gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("📴 Shutting down server...")
	grpcServer.GracefulStop()
	log.Println("✅ Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("🔄 Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("✅ Auto migration completed")
	return nil
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	clientInfo := middleware.GetClientInfoFromContext(ctx)
	resp, err := handler(ctx, req)
	duration := time.Since(start)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (request: %s, ip: %s)",
		logLevel, info.FullMethod, duration, clientInfo.RequestID, clientInfo.IPAddress)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
