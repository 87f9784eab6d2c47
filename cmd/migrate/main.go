package main

import (
	"log"

	"chatbox-backend/config"
	"chatbox-backend/pkg/database"
)

// Standalone migration runner for environments where the API process does
// not own schema changes.
func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("Migrations applied")
}
