package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/tpms-simple/api/v1"
	"github.com/tpms-simple/config"
	"github.com/tpms-simple/database"
	"github.com/tpms-simple/repositories"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Open the snapshot database and rehydrate the collections
	db, err := database.Connect(config.GetEnv("TPMS_DB_PATH", "tpms.db"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataset, err := repositories.Open(database.NewStore(db))
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	log.Printf("📦 Loaded %d users, %d projects, %d tasks",
		len(dataset.Users), len(dataset.Projects), len(dataset.Tasks))

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	v1.RegisterRoutes(router.Group("/api/v1"), dataset)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 TPMS starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
