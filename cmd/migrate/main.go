package main

import (
	"log"

	"twin-chat-be/internal/config"
	"twin-chat-be/internal/model"
	"twin-chat-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required")
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("✗ Unable to connect to database: %v", err)
		log.Fatal(err)
	}

	color.Cyan("Running migrations...")

	err = gormDB.AutoMigrate(
		&model.ChatSession{},
		&model.Message{},
		&model.SystemLog{},
	)
	if err != nil {
		color.Red("✗ Migration failed: %v", err)
		log.Fatal(err)
	}

	color.Green("✓ Migrations applied: chat_sessions, messages, system_logs")
}
