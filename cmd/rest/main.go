package main

import (
	"context"
	"log"

	"wisenotes-be/internal/bootstrap"
	"wisenotes-be/internal/config"
	"wisenotes-be/internal/server"
	"wisenotes-be/internal/tracer"
	"wisenotes-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Dependency container
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Background activity consumer
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background consumer error: %v", err)
	}

	// 5. HTTP server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
