package main

import (
	"context"
	"log"

	"twin-chat-be/internal/bootstrap"
	"twin-chat-be/internal/config"
	"twin-chat-be/internal/server"
	"twin-chat-be/internal/tracer"
	"twin-chat-be/pkg/database"
)

func main() {
	// 1. Load and validate configuration (missing LLM credentials stop the
	// process here rather than failing per-request)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Panicf("Invalid configuration: %v", err)
	}

	// 2. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Start Background Consumer
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
