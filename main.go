package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/tareas-api/modules/api"
	"github.com/example/tareas-api/modules/notification"
	"github.com/example/tareas-api/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== API de Lista de Tareas ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (emits events)
	app.Register(api.NewModule())          // Driving adapter (depends on task)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

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

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (default http://localhost:3000):")
	log.Println("  GET    /            - Redirect to /docs")
	log.Println("  GET    /docs        - API reference")
	log.Println("  POST   /tareas/     - Create a task")
	log.Println("  GET    /tareas/     - List all tasks")
	log.Println("  GET    /tareas/:id  - Get a task by id")
	log.Println("  PUT    /tareas/:id  - Partially update a task")
	log.Println("  DELETE /tareas/:id  - Delete a task")
	log.Println("  GET    /health      - Health check")
	log.Println("")
	log.Println("Completion is derived: a task is completed once its")
	log.Println("fecha_finalizacion is present and not in the future.")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
