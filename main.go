package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/resmarka59/project-manager/config"
	"github.com/resmarka59/project-manager/modules/api"
	"github.com/resmarka59/project-manager/modules/auth"
	"github.com/resmarka59/project-manager/modules/project"
	"github.com/resmarka59/project-manager/modules/task"
)

const shutdownTimeout = 30 * time.Second

// defaultConfigFile is looked up relative to the working directory; a
// missing file just means defaults plus environment variables.
const defaultConfigFile = "tasktracker.toml"

func main() {
	log.Println("=== Task Tracker ===")

	configPath := os.Getenv("TASKTRACKER_CONFIG")
	if configPath == "" {
		configPath = defaultConfigFile
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order matters: the project module migrates the projects table the
	// task module joins against, and the api module depends on all three.
	app.Register(auth.NewModule(cfg))
	app.Register(project.NewModule(cfg))
	app.Register(task.NewModule(cfg))
	app.Register(api.NewModule(cfg))

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg *config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost%s):", cfg.HTTPAddr)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/v1/auth/register            - Register a new account")
	log.Println("  POST   /api/v1/auth/login               - Login and get tokens")
	log.Println("  POST   /api/v1/auth/refresh             - Refresh access token")
	log.Println("  GET    /health                          - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/v1/projects                 - List projects with progress")
	log.Println("  POST   /api/v1/projects                 - Create a project")
	log.Println("  GET    /api/v1/projects/:id             - Get a project")
	log.Println("  PUT    /api/v1/projects/:id             - Update title/description")
	log.Println("  DELETE /api/v1/projects/:id             - Delete project and its tasks")
	log.Println("  GET    /api/v1/tasks/due-soon           - Tasks due within 7 days")
	log.Println("  GET    /api/v1/tasks/project/:projectId - List tasks of a project")
	log.Println("  POST   /api/v1/tasks/project/:projectId - Create a task (starts PENDING)")
	log.Println("  PATCH  /api/v1/tasks/:taskId/complete   - Toggle task status")
	log.Println("  DELETE /api/v1/tasks/:taskId            - Delete a task")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
