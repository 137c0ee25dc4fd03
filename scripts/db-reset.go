// Standalone script that wipes every snapshot key and rewrites the seed
// defaults. Run with: go run scripts/db-reset.go
package main

import (
	"log"

	"github.com/tpms-simple/config"
	"github.com/tpms-simple/database"
	"github.com/tpms-simple/repositories"
)

func main() {
	config.LoadEnv()

	db, err := database.Connect(config.GetEnv("TPMS_DB_PATH", "tpms.db"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataset, err := repositories.Open(database.NewStore(db))
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	if err := dataset.Reset(); err != nil {
		log.Fatalf("Failed to reset data: %v", err)
	}

	log.Printf("✅ Reset complete: %d users, %d projects, %d tasks",
		len(dataset.Users), len(dataset.Projects), len(dataset.Tasks))
}
