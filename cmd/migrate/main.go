package main

import (
	"log"

	"ai-chat-be/internal/config"
	"ai-chat-be/internal/model"
	"ai-chat-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Configuration (reads .env when present)
	cfg := config.Load()

	dsn := cfg.DatabaseURL()
	if dsn == "" {
		log.Fatalf("Error: no connection string configured for branch %q", cfg.App.Environment)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration for branch %q...", cfg.App.Environment)

	// 3. Pre-Migration: extensions GORM AutoMigrate does not manage
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	models := []interface{}{
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.DocumentChunk{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
