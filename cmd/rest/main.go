package main

import (
	"context"
	"log"

	"mentorlink-be/internal/bootstrap"
	"mentorlink-be/internal/config"
	"mentorlink-be/internal/server"
	"mentorlink-be/internal/tracer"
	"mentorlink-be/pkg/database"
)

func main() {
	// 1. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Audit consumer
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background consumer error: %v", err)
	}

	// 6. HTTP server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
