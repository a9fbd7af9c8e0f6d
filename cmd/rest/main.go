package main

import (
	"context"
	"log"

	"dental-assistant-be/internal/bootstrap"
	"dental-assistant-be/internal/config"
	"dental-assistant-be/internal/server"
	"dental-assistant-be/internal/tracer"
	"dental-assistant-be/pkg/database"
)

func main() {
	// 1. Initialize tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to database: %v", err)
	}

	// 4. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start audit consumer
	if err := container.AuditService.Consume(context.Background()); err != nil {
		log.Printf("Audit consumer error: %v", err)
	}

	// 6. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
