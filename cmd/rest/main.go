package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-chat-be/internal/bootstrap"
	"ai-chat-be/internal/config"
	"ai-chat-be/internal/server"
	"ai-chat-be/internal/tracer"
	"ai-chat-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	dbManager := database.NewManager(cfg.DatabaseURL())
	handle, err := dbManager.Handle()
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	log.Printf("Database branch %q connected (session %s)", cfg.App.Environment, handle.SessionId)

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(handle.DB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container, dbManager)

	// 6. Run Server, stopping cleanly on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received, stopping server...")
		if err := srv.GetApp().Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
	if err := dbManager.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}
}
