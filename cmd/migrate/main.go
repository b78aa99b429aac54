package main

import (
	"log"

	"mentorlink-be/internal/config"
	"mentorlink-be/internal/model"
	"mentorlink-be/pkg/database"
)

// Applies the schema, including the unique indexes on username and email that
// back the registration conflict handling.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
